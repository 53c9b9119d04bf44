package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/paynex/paynex/internal/config"
	"github.com/paynex/paynex/internal/logging"
	"github.com/paynex/paynex/internal/metrics"
	"github.com/paynex/paynex/internal/payment"
	"github.com/paynex/paynex/internal/prefs"
	"github.com/paynex/paynex/internal/router"
	"github.com/paynex/paynex/internal/sampledata"
	"github.com/paynex/paynex/internal/service"
	"github.com/paynex/paynex/internal/table"
	"github.com/paynex/paynex/internal/wizard"
)

// Deps are the collaborators the App needs. Only Provider is required.
type Deps struct {
	Provider     service.DataProvider
	Exporter     *service.Exporter
	Maintenance  *service.MaintenanceService
	NewGenerator func() *sampledata.Generator
	Prefs        *prefs.Store
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// App ties together the router, the page controllers and their views.
type App struct {
	ctx  context.Context
	deps Deps
	cfg  config.Config
	log  *slog.Logger

	router     *router.Router
	wizard     *wizard.Wizard
	selector   *payment.Selector
	onboarding onboardingView
	tables     map[router.PageID]*tablePage

	summary service.Summary
	series  []service.VolumePoint
	loaded  bool

	logo       prefs.LogoVariant
	focus      focusArea
	modal      modalState
	modalTitle string
	modalBody  string
	gotoInput  textinput.Model
	terms      string
	width      int
	height     int
	status     string
}

type focusArea int

const (
	focusPage focusArea = iota
	focusSidebar
)

type modalState string

const (
	modalNone    modalState = ""
	modalMessage modalState = "message"
	modalGoTo    modalState = "goto"
)

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	log := deps.Logger
	if log == nil {
		log = logging.Discard()
	}
	a := &App{
		ctx:      ctx,
		deps:     deps,
		cfg:      cfg,
		log:      log,
		router:   router.New(router.DefaultPages, router.WithCompactWidth(cfg.UI.CompactWidth)),
		wizard:   wizard.Onboarding(),
		selector: payment.NewSelector(payment.DefaultChannels(), deps.Provider),
		tables:   make(map[router.PageID]*tablePage, len(tablePages)),
		logo:     prefs.DefaultLogo,
		terms:    renderTerms(wizard.TermsMarkdown),
	}
	for page, feature := range tablePages {
		a.tables[page] = newTablePage(feature)
	}
	a.onboarding = newOnboardingView()
	a.gotoInput = textinput.New()
	a.gotoInput.Prompt = "Go to: "
	a.gotoInput.Placeholder = "page name"

	if deps.Prefs != nil {
		p, err := deps.Prefs.Load()
		if err != nil {
			log.Warn("load prefs", "err", err)
		}
		a.logo = p.LogoVariant
	}
	a.router.Subscribe(a.onActivate)
	return a
}

func renderTerms(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(72))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// onActivate runs whenever a page goes from hidden to visible.
func (a *App) onActivate(id router.PageID) {
	a.log.Debug("page activated", "page", id)
	switch id {
	case router.PageOnboarding:
		a.wizard.Activate()
		a.onboarding.reset()
	case router.PagePaymentForm:
		a.selector.Activate()
	}
}

func (a *App) navigate(id router.PageID) {
	trail := a.router.Navigate(id)
	a.recordNavigation(id, trail)
}

// selectNavItem navigates to the sidebar item under the cursor.
func (a *App) selectNavItem() {
	trail := a.router.Select()
	for _, n := range a.router.NavItems() {
		if n.Active {
			a.recordNavigation(n.Target, trail)
		}
	}
}

func (a *App) recordNavigation(id router.PageID, trail router.Breadcrumbs) {
	a.deps.Metrics.Navigated(string(id))
	a.log.Info("navigate", "page", id, "visible", a.router.CurrentID(), "trail", trail.String())
}

func (a *App) Init() tea.Cmd {
	return a.loadData()
}

func (a *App) loadData() tea.Cmd {
	return func() tea.Msg {
		return a.fetchData()
	}
}

func (a *App) fetchData() tea.Msg {
	tables, err := a.catalog().Tables(a.ctx)
	if err != nil {
		return errMsg{err}
	}
	summary, err := service.Summarize(a.ctx, a.deps.Provider)
	if err != nil {
		return errMsg{err}
	}
	series, err := service.VolumeSeries(a.ctx, a.deps.Provider)
	if err != nil {
		return errMsg{err}
	}
	return dataMsg{tables: tables, summary: summary, series: series}
}

func (a *App) catalog() service.Catalog {
	return service.Catalog{Provider: a.deps.Provider, Currency: a.cfg.UI.Currency}
}

func (a *App) amount(cents int64) string {
	return service.FormatAmount(a.cfg.UI.Currency, cents)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.router.SetViewport(m.Width)
	case dataMsg:
		for page, feature := range tablePages {
			a.tables[page].setTable(m.tables[feature])
		}
		a.summary = m.summary
		a.series = m.series
		a.loaded = true
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.log.Error("command failed", "err", m.error)
		a.status = "error: " + m.Error()
	case exportDoneMsg:
		if m.path == "" {
			a.status = "nothing to export"
			return a, nil
		}
		a.deps.Metrics.Exported(m.feature, m.format)
		a.log.Info("export", "feature", m.feature, "format", m.format, "path", m.path)
		a.status = "exported " + m.path
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	// an active text input gets every key
	if a.focus == focusPage && a.inputFocused() {
		return a.handlePageKey(m)
	}

	switch {
	case key.Matches(m, keys.Quit):
		return a, tea.Quit
	case key.Matches(m, keys.Focus):
		if !a.router.SidebarOpen() {
			a.router.ToggleSidebar()
		}
		if a.focus == focusSidebar {
			a.focus = focusPage
		} else {
			a.focus = focusSidebar
		}
		return a, nil
	case key.Matches(m, keys.Sidebar):
		a.router.ToggleSidebar()
		if !a.router.SidebarOpen() {
			a.focus = focusPage
		}
		return a, nil
	case key.Matches(m, keys.GoTo):
		a.modal = modalGoTo
		a.gotoInput.SetValue("")
		a.gotoInput.Focus()
		return a, textinput.Blink
	case key.Matches(m, keys.Logo):
		return a, a.cycleLogo()
	case key.Matches(m, keys.Reseed):
		return a, a.reseed()
	}

	if a.focus == focusSidebar && a.router.SidebarOpen() {
		return a.handleSidebarKey(m)
	}
	return a.handlePageKey(m)
}

func (a *App) handleSidebarKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, keys.Up):
		a.router.CursorUp()
	case key.Matches(m, keys.Down):
		a.router.CursorDown()
	case key.Matches(m, keys.Enter):
		a.selectNavItem()
		a.focus = focusPage
	case key.Matches(m, keys.Back):
		a.focus = focusPage
	}
	return a, nil
}

func (a *App) handlePageKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.router.CurrentID()
	if p, ok := a.tables[id]; ok {
		return a, a.updateTablePage(p, m)
	}
	switch id {
	case router.PagePaymentForm:
		return a, a.updatePayment(m)
	case router.PageOnboarding:
		return a, a.updateOnboarding(m)
	}
	return a, nil
}

func (a *App) inputFocused() bool {
	id := a.router.CurrentID()
	if p, ok := a.tables[id]; ok {
		return p.search.Focused()
	}
	return id == router.PageOnboarding && a.onboarding.editing
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalMessage:
		if key.Matches(m, keys.Enter, keys.Back) {
			a.closeModal()
		}
	case modalGoTo:
		switch m.Type {
		case tea.KeyEsc:
			a.closeModal()
		case tea.KeyEnter:
			query := a.gotoInput.Value()
			a.closeModal()
			id, ok := a.router.Resolve(query)
			if !ok {
				a.status = fmt.Sprintf("no page matches %q", strings.TrimSpace(query))
				return a, nil
			}
			a.navigate(id)
			a.focus = focusPage
		default:
			var cmd tea.Cmd
			a.gotoInput, cmd = a.gotoInput.Update(m)
			return a, cmd
		}
	}
	return a, nil
}

// showMessage opens the advisory modal.
func (a *App) showMessage(title, body string) {
	a.modal = modalMessage
	a.modalTitle = title
	a.modalBody = body
}

func (a *App) closeModal() {
	a.modal = modalNone
	a.modalTitle, a.modalBody = "", ""
	a.gotoInput.Blur()
}

func (a *App) cycleLogo() tea.Cmd {
	a.logo = a.logo.Next()
	store := a.deps.Prefs
	if store == nil {
		return nil
	}
	p := prefs.Prefs{LogoVariant: a.logo}
	return func() tea.Msg {
		if err := store.Save(p); err != nil {
			a.log.Warn("save prefs", "err", err)
			return statusMsg("logo preference not saved")
		}
		return nil
	}
}

func (a *App) reseed() tea.Cmd {
	if a.deps.Maintenance == nil || a.deps.NewGenerator == nil {
		a.status = "sample data is fixed in this session"
		return nil
	}
	a.status = "generating sample data..."
	maint, gen := a.deps.Maintenance, a.deps.NewGenerator()
	return func() tea.Msg {
		if err := maint.Regenerate(a.ctx, gen); err != nil {
			return errMsg{err}
		}
		return a.fetchData()
	}
}

func (a *App) View() string {
	main := a.renderMain()
	body := main
	if a.router.SidebarOpen() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), " ", main)
	}
	if a.modal != modalNone {
		body = a.composeModal(body)
	}
	return body
}

func (a *App) mainWidth() int {
	w := a.width
	if w <= 0 {
		w = 120
	}
	if a.router.SidebarOpen() {
		w -= sidebarStyle.GetWidth() + 2
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (a *App) renderMain() string {
	var b strings.Builder
	if trail := a.router.Trail(); len(trail) > 0 {
		b.WriteString(renderTrail(trail))
		b.WriteString("\n\n")
	}
	switch id := a.router.CurrentID(); {
	case id == router.PageDashboard:
		b.WriteString(a.renderDashboard())
	case id == router.PagePaymentForm:
		b.WriteString(a.renderPayment())
	case id == router.PageOnboarding:
		b.WriteString(a.renderOnboarding())
	default:
		if p, ok := a.tables[id]; ok {
			b.WriteString(a.renderTablePage(p))
		}
	}
	b.WriteString("\n\n")
	if a.status != "" {
		b.WriteString(infoStyle.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(helpLine(keys.Focus, keys.Sidebar, keys.GoTo, keys.Logo, keys.Reseed, keys.Quit))
	return b.String()
}

func renderTrail(trail router.Breadcrumbs) string {
	parts := make([]string, len(trail))
	for i, c := range trail {
		label := c.Label
		if i == 0 && label == router.HomeLabel {
			label = router.HomeIcon + " " + label
		}
		if c.Active {
			parts[i] = crumbActiveStyle.Render(label)
		} else {
			parts[i] = crumbStyle.Render(label)
		}
	}
	return strings.Join(parts, crumbStyle.Render(" › "))
}

func (a *App) composeModal(base string) string {
	var content string
	switch a.modal {
	case modalGoTo:
		content = titleStyle.Render("Go to page") + "\n\n" + a.gotoInput.View() + "\n\n" + helpLine(keys.Enter, keys.Back)
	default:
		content = titleStyle.Render(a.modalTitle) + "\n\n" + a.modalBody + "\n\n" + helpLine(keys.Enter)
	}
	width := a.width
	if width <= 0 {
		return base + "\n\n" + modalStyle.Render(content)
	}
	modal := modalStyle.Render(lipgloss.NewStyle().Width(min(56, width-10)).Render(content))
	lines := splitLines(modal)
	x := (width - maxLineWidth(lines)) / 2
	y := (lipgloss.Height(base) - len(lines)) / 2
	return overlayAt(base, modal, max(x, 0), max(y, 0), width)
}

// messages
type dataMsg struct {
	tables  map[string]*table.Table
	summary service.Summary
	series  []service.VolumePoint
}

type exportDoneMsg struct {
	feature string
	format  string
	path    string
}

type statusMsg string

type errMsg struct{ error }
