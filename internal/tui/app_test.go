package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/paynex/paynex/internal/config"
	"github.com/paynex/paynex/internal/database/repository"
	"github.com/paynex/paynex/internal/metrics"
	"github.com/paynex/paynex/internal/payment"
	"github.com/paynex/paynex/internal/prefs"
	"github.com/paynex/paynex/internal/router"
	"github.com/paynex/paynex/internal/service"
	"github.com/paynex/paynex/internal/wizard"
)

var testNow = time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

func fixtureProvider() *service.StaticProvider {
	return &service.StaticProvider{
		TransactionRows: []repository.Transaction{
			{DisplayID: "TXN-000001", Reference: "REF-000001", Customer: "Jane Smith", AmountCents: 10000, Method: "FPX - Maybank2u", Status: "Success", OccurredAt: testNow},
			{DisplayID: "TXN-000002", Reference: "REF-000002", Customer: "Bob Johnson", AmountCents: 20000, Method: "FPX - CIMB Clicks", Status: "Pending", OccurredAt: testNow},
			{DisplayID: "TXN-000003", Reference: "REF-000003", Customer: "Jane Smith", AmountCents: 30000, Method: "FPX - AmBank", Status: "Failed", OccurredAt: testNow},
		},
		PayoutRows: []repository.Payout{
			{DisplayID: "PO-20260315-001", AmountCents: 50000, BankAccount: "Maybank ****1234", Status: "Pending", OccurredAt: testNow},
		},
		ReportRows: []repository.DailyReport{
			{Date: testNow, TransactionCount: 10, SuccessCount: 9, TotalCents: 100000},
			{Date: testNow.AddDate(0, 0, -1), TransactionCount: 12, SuccessCount: 11, TotalCents: 80000},
		},
		Details: payment.Details{Amount: 250.5, Reference: "REF-424242"},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	a := New(context.Background(), config.Config{UI: config.UIConfig{CompactWidth: 100}}, Deps{
		Provider: fixtureProvider(),
		Exporter: &service.Exporter{Dir: filepath.Join(dir, "exports"), Now: func() time.Time { return testNow }},
		Prefs:    &prefs.Store{Dir: filepath.Join(dir, "prefs")},
		Metrics:  metrics.New(),
	})
	a.Update(a.Init()())
	if !a.loaded {
		t.Fatalf("expected data to load")
	}
	return a
}

func press(a *App, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(k)
	}
	return cmd
}

func runes(s string) []tea.KeyMsg {
	out := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestSidebarNavigation(t *testing.T) {
	a := newTestApp(t)
	press(a, tabKey, downKey, downKey, enterKey)

	if got := a.router.CurrentID(); got != router.PagePayout {
		t.Fatalf("expected payout page, got %s", got)
	}
	if a.focus != focusPage {
		t.Fatalf("selecting a nav item should hand focus to the page")
	}
	if got := a.router.Trail().Labels(); strings.Join(got, "/") != "Home/Payout" {
		t.Fatalf("unexpected breadcrumbs %v", got)
	}
	n, err := testutil.GatherAndCount(a.deps.Metrics.Registry(), "paynex_router_navigations_total")
	if err != nil || n != 1 {
		t.Fatalf("expected one navigation series, got %d (%v)", n, err)
	}
}

func TestGoToResolvesFuzzyName(t *testing.T) {
	a := newTestApp(t)
	press(a, runes("g")...)
	if a.modal != modalGoTo {
		t.Fatalf("expected go-to prompt")
	}
	press(a, runes("paymnt")...)
	press(a, enterKey)

	if got := a.router.CurrentID(); got != router.PagePaymentForm {
		t.Fatalf("expected payment form, got %s", got)
	}
	if got := a.selector.Details().Reference; got != "REF-424242" {
		t.Fatalf("payment details not regenerated on activation: %q", got)
	}
	if !strings.Contains(a.View(), "Collection") {
		t.Fatalf("breadcrumb trail missing from view")
	}
}

func TestGoToUnknownKeepsPage(t *testing.T) {
	a := newTestApp(t)
	press(a, runes("g")...)
	press(a, runes("zzzzzzzz")...)
	press(a, enterKey)
	if got := a.router.CurrentID(); got != router.PageDashboard {
		t.Fatalf("expected dashboard to stay visible, got %s", got)
	}
	if !strings.Contains(a.status, "no page matches") {
		t.Fatalf("expected status hint, got %q", a.status)
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageTransaction)
	p := a.tables[router.PageTransaction]

	press(a, runes("/")...)
	if !p.search.Focused() {
		t.Fatalf("expected search input focus")
	}
	press(a, runes("ja")...)
	if p.visible() != 2 {
		t.Fatalf("expected 2 rows after typing, got %d", p.visible())
	}
	// "q" goes to the input while it has focus
	press(a, runes("q")...)
	if p.visible() != 0 {
		t.Fatalf("expected no rows for 'jaq', got %d", p.visible())
	}
	press(a, tea.KeyMsg{Type: tea.KeyBackspace}, enterKey)
	if p.search.Focused() {
		t.Fatalf("enter should leave the search input")
	}

	press(a, runes("s")...) // All Status -> Success
	if p.visible() != 1 || p.statusLabel() != "Success" {
		t.Fatalf("expected 1 success row, got %d (%s)", p.visible(), p.statusLabel())
	}
	press(a, escKey)
	if p.visible() != 3 {
		t.Fatalf("esc should clear filters, got %d rows", p.visible())
	}
}

func TestExportWritesVisibleRows(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageTransaction)
	p := a.tables[router.PageTransaction]
	press(a, runes("/")...)
	press(a, runes("bob")...)
	press(a, enterKey)

	cmd := press(a, runes("e")...)
	if cmd == nil {
		t.Fatalf("expected export command")
	}
	a.Update(cmd())
	path := filepath.Join(a.deps.Exporter.Dir, "transactions-2026-03-15.csv")
	if a.status != "exported "+path {
		t.Fatalf("unexpected status %q", a.status)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], `"Bob Johnson"`) {
		t.Fatalf("unexpected csv %q", data)
	}
	if p.visible() != 1 {
		t.Fatalf("export must not change visibility")
	}
}

func TestCompactViewportCollapsesSidebar(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	press(a, tabKey, downKey, enterKey)
	if a.router.SidebarOpen() {
		t.Fatalf("sidebar should collapse after navigating on a narrow terminal")
	}
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 30})
	if !a.router.SidebarOpen() {
		t.Fatalf("sidebar should reopen on a wide terminal")
	}
}

func TestOnboardingBlocksIncompleteStep(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageOnboarding)
	press(a, runes("n")...)

	if a.modal != modalMessage || a.modalBody != "Please fill in all required fields" {
		t.Fatalf("expected validation advisory, got %q", a.modalBody)
	}
	if a.wizard.Current() != 1 {
		t.Fatalf("wizard should stay on step 1")
	}
	if !a.wizard.Flagged(wizard.FieldBusinessName) {
		t.Fatalf("empty required field should be flagged")
	}
	press(a, enterKey)
	if a.modal != modalNone {
		t.Fatalf("enter should dismiss the advisory")
	}
}

func TestOnboardingInlineEditing(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageOnboarding)

	press(a, enterKey)
	if !a.onboarding.editing {
		t.Fatalf("enter on a text field should start editing")
	}
	press(a, runes("Acme Sdn Bhd")...)
	press(a, enterKey)
	if got := a.wizard.Value(wizard.FieldBusinessName).Text; got != "Acme Sdn Bhd" {
		t.Fatalf("unexpected business name %q", got)
	}

	press(a, downKey)
	press(a, tea.KeyMsg{Type: tea.KeyRight})
	if a.wizard.OptionLabel(wizard.FieldBusinessType) == "" {
		t.Fatalf("right arrow should pick a business type")
	}
}

func TestOnboardingSubmitFlow(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageOnboarding)
	w := a.wizard
	w.SetText(wizard.FieldBusinessName, "Acme")
	w.CycleOption(wizard.FieldBusinessType, 1)
	w.SetText(wizard.FieldBusinessReg, "202401000001")
	w.SetText(wizard.FieldContactEmail, "ops@acme.test")
	w.SetText(wizard.FieldContactPhone, "+60123456789")
	press(a, runes("n")...)
	w.SetText(wizard.FieldAccountName, "Acme")
	w.CycleOption(wizard.FieldBankName, 1)
	w.SetText(wizard.FieldAccountNumber, "1234567890")
	w.SetFiles(wizard.FieldBankStatement, "statement.pdf")
	press(a, runes("n")...)
	w.SetFiles(wizard.FieldBusinessCert, "ssm.pdf")
	w.SetFiles(wizard.FieldICPassport, "ic.png")
	w.SetFiles(wizard.FieldProofAddress, "bill.pdf")
	press(a, runes("n")...)
	if w.Current() != 4 {
		t.Fatalf("expected review step, got %d", w.Current())
	}
	if !strings.Contains(a.View(), "****7890") {
		t.Fatalf("review should show the masked account number")
	}

	press(a, runes("s")...)
	if !strings.Contains(a.modalBody, "accept the terms") {
		t.Fatalf("expected terms advisory, got %q", a.modalBody)
	}
	press(a, enterKey)

	// terms is the only field on the last step
	press(a, tea.KeyMsg{Type: tea.KeySpace})
	press(a, runes("s")...)
	if !strings.Contains(a.modalBody, "Application submitted successfully") {
		t.Fatalf("expected success message, got %q", a.modalBody)
	}
	if w.Current() != 1 {
		t.Fatalf("wizard should reset after submit")
	}
	if w.Value(wizard.FieldBusinessName).Text != "Acme" {
		t.Fatalf("submit must keep field values")
	}
}

func TestPaymentProceedAndCancel(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PagePaymentForm)

	press(a, runes("p")...)
	if a.modalBody != "Please select a payment channel" {
		t.Fatalf("expected selection advisory, got %q", a.modalBody)
	}
	press(a, enterKey)

	press(a, enterKey) // select channel under cursor
	if _, ok := a.selector.Selected(); !ok {
		t.Fatalf("expected a selected channel")
	}
	press(a, runes("p")...)
	if !strings.HasPrefix(a.modalBody, "Redirecting to Maybank2u (MB2U)") {
		t.Fatalf("unexpected proceed message %q", a.modalBody)
	}
	press(a, enterKey)

	press(a, runes("c")...)
	if a.router.CurrentID() != router.PageDashboard {
		t.Fatalf("cancel should return to the dashboard")
	}
	if _, ok := a.selector.Selected(); ok {
		t.Fatalf("cancel should clear the selection")
	}
}

func TestLogoCyclePersists(t *testing.T) {
	a := newTestApp(t)
	cmd := press(a, runes("L")...)
	if a.logo != prefs.LogoSimple {
		t.Fatalf("expected simple logo, got %q", a.logo)
	}
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("unexpected save result %v", msg)
	}
	p, err := a.deps.Prefs.Load()
	if err != nil || p.LogoVariant != prefs.LogoSimple {
		t.Fatalf("preference not persisted: %v %q", err, p.LogoVariant)
	}
}

func TestReseedWithoutMaintenance(t *testing.T) {
	a := newTestApp(t)
	if cmd := press(a, runes("R")...); cmd != nil {
		t.Fatalf("expected no command without maintenance")
	}
	if a.status == "" {
		t.Fatalf("expected a status hint")
	}
}

func TestViewRendersEveryPage(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	for _, id := range router.DefaultPages {
		a.navigate(id)
		if v := a.View(); !strings.Contains(v, router.ShortLabel(id)) {
			t.Fatalf("view of %s missing its label", id)
		}
	}
}

func fillBusinessStep(w *wizard.Wizard) {
	w.SetText(wizard.FieldBusinessName, "Acme")
	w.CycleOption(wizard.FieldBusinessType, 1)
	w.SetText(wizard.FieldBusinessReg, "202401000001")
	w.SetText(wizard.FieldContactEmail, "ops@acme.test")
	w.SetText(wizard.FieldContactPhone, "+60123456789")
}

func TestOnboardingResetsOnReentry(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageOnboarding)
	fillBusinessStep(a.wizard)
	press(a, runes("n")...)
	if a.wizard.Current() != 2 {
		t.Fatalf("expected step 2, got %d", a.wizard.Current())
	}

	press(a, downKey)
	if a.onboarding.focus != 1 {
		t.Fatalf("expected focus on the second field, got %d", a.onboarding.focus)
	}

	// selecting the visible page again is not a re-entry
	press(a, tabKey, enterKey)
	if a.router.CurrentID() != router.PageOnboarding || a.wizard.Current() != 2 {
		t.Fatalf("re-selecting onboarding must keep step 2, got %s step %d", a.router.CurrentID(), a.wizard.Current())
	}
	if a.onboarding.focus != 1 {
		t.Fatalf("re-selecting onboarding must keep field focus")
	}

	press(a, tabKey, downKey, enterKey) // onboarding -> dashboard (wraps)
	if a.router.CurrentID() != router.PageDashboard {
		t.Fatalf("expected dashboard, got %s", a.router.CurrentID())
	}
	a.navigate(router.PageOnboarding)
	if a.wizard.Current() != 1 {
		t.Fatalf("wizard should restart at step 1 on re-entry, got %d", a.wizard.Current())
	}
	if a.wizard.Value(wizard.FieldBusinessName).Text != "Acme" {
		t.Fatalf("re-entry must keep entered values")
	}
	if a.onboarding.focus != 0 {
		t.Fatalf("field focus should reset on re-entry")
	}
}

func TestStatusCycleWrapsToAll(t *testing.T) {
	a := newTestApp(t)
	a.navigate(router.PageTransaction)
	p := a.tables[router.PageTransaction]
	for _, want := range []string{"Success", "Pending", "Failed"} {
		press(a, runes("s")...)
		if p.statusLabel() != want || p.visible() != 1 {
			t.Fatalf("expected %s with 1 row, got %s with %d", want, p.statusLabel(), p.visible())
		}
	}
	press(a, runes("s")...)
	if p.statusLabel() != "All Status" || p.visible() != 3 {
		t.Fatalf("expected the cycle to wrap to All Status, got %s with %d rows", p.statusLabel(), p.visible())
	}

	a.navigate(router.PageReports)
	r := a.tables[router.PageReports]
	press(a, runes("s")...)
	if r.statusLabel() != "" || r.visible() != 2 {
		t.Fatalf("reports has no status filter, got %q with %d rows", r.statusLabel(), r.visible())
	}
}
