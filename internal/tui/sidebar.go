package tui

import (
	"strings"

	"github.com/paynex/paynex/internal/prefs"
	"github.com/paynex/paynex/internal/router"
)

var logos = map[prefs.LogoVariant]string{
	prefs.LogoClassic:    "◆ PayNex\n  Merchant Portal",
	prefs.LogoSimple:     "PayNex",
	prefs.LogoMinimal:    "PN",
	prefs.LogoFuturistic: "▲ P A Y N E X ▲",
}

func logoText(v prefs.LogoVariant) string {
	if s, ok := logos[v]; ok {
		return s
	}
	return logos[prefs.DefaultLogo]
}

func (a *App) renderSidebar() string {
	var b strings.Builder
	b.WriteString(logoStyle.Render(logoText(a.logo)))
	b.WriteString("\n")
	for i, item := range a.router.NavItems() {
		marker := "  "
		if a.focus == focusSidebar && i == a.router.Cursor() {
			marker = navCursorStyle.Render("▶ ")
		}
		label := router.ShortLabel(item.Target)
		if item.Active {
			label = navActiveStyle.Render(label)
		} else {
			label = navStyle.Render(label)
		}
		b.WriteString(marker + label + "\n")
	}
	return sidebarStyle.Render(strings.TrimRight(b.String(), "\n"))
}
