package tui

import (
	"errors"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paynex/paynex/internal/payment"
	"github.com/paynex/paynex/internal/router"
)

func (a *App) channelColumns() int {
	w := channelStyle.GetWidth() + 2
	return max(min(a.mainWidth()/w, 5), 1)
}

func (a *App) updatePayment(m tea.KeyMsg) tea.Cmd {
	cols := a.channelColumns()
	switch {
	case key.Matches(m, keys.Left):
		a.selector.MoveCursor(-1)
	case key.Matches(m, keys.Right):
		a.selector.MoveCursor(1)
	case key.Matches(m, keys.Up):
		a.selector.MoveCursor(-cols)
	case key.Matches(m, keys.Down):
		a.selector.MoveCursor(cols)
	case key.Matches(m, keys.Enter, keys.Toggle):
		if !a.selector.SelectCursor() {
			a.status = "this channel is currently unavailable"
		}
	case key.Matches(m, keys.Proceed):
		advice, err := a.selector.Proceed()
		if err != nil {
			text := err.Error()
			if errors.Is(err, payment.ErrNoChannel) {
				text = "Please select a payment channel"
			}
			a.showMessage("Payment", text)
			return nil
		}
		ch, _ := a.selector.Selected()
		a.deps.Metrics.Proceeded(ch.Code)
		a.log.Info("payment proceed", "channel", ch.Code, "reference", a.selector.Details().Reference)
		a.showMessage("Payment", advice)
	case key.Matches(m, keys.Cancel):
		a.selector.Cancel()
		a.navigate(router.PageDashboard)
	}
	return nil
}

func (a *App) renderPayment() string {
	d := a.selector.Details()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Payment"))
	b.WriteString("\n")
	b.WriteString(cardLabelStyle.Render("Amount: ") + cardValueStyle.Render(a.amount(int64(math.Round(d.Amount*100)))))
	b.WriteString("\n")
	b.WriteString(cardLabelStyle.Render("Reference: ") + cardValueStyle.Render(d.Reference))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Select FPX bank"))
	b.WriteString("\n")

	cols := a.channelColumns()
	chans := a.selector.Channels()
	var rows []string
	for i := 0; i < len(chans); i += cols {
		var cells []string
		for j := i; j < min(i+cols, len(chans)); j++ {
			cells = append(cells, a.renderChannel(j, chans[j]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	if ch, ok := a.selector.Selected(); ok {
		b.WriteString(successStyle.Render("Selected: " + ch.Name))
		b.WriteString("\n")
	}
	b.WriteString(helpLine(keys.Left, keys.Right, keys.Enter, keys.Proceed, keys.Cancel))
	return b.String()
}

func (a *App) renderChannel(i int, ch payment.Channel) string {
	style := channelStyle
	switch {
	case !ch.Active():
		style = channelInactiveStyle
	case a.selector.IsSelected(ch.ID):
		style = channelSelectedStyle
	case i == a.selector.Cursor():
		style = channelCursorStyle
	}
	label := ch.Name + "\n" + mutedStyle.Render(ch.Code)
	if i == a.selector.Cursor() {
		label = "▸ " + label
	}
	return style.Render(label)
}
