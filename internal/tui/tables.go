package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paynex/paynex/internal/router"
	"github.com/paynex/paynex/internal/service"
	"github.com/paynex/paynex/internal/table"
)

// tablePages maps each data page to the feature table it shows.
var tablePages = map[router.PageID]string{
	router.PageTransaction: service.FeatureTransactions,
	router.PagePayout:      service.FeaturePayouts,
	router.PageSettlement:  service.FeatureSettlements,
	router.PageReports:     service.FeatureReports,
}

const maxColumnWidth = 26

type tablePage struct {
	feature   string
	table     *table.Table
	search    textinput.Model
	status    string
	cursor    int
}

func newTablePage(feature string) *tablePage {
	in := textinput.New()
	in.Prompt = "Search: "
	in.Placeholder = "type to filter"
	return &tablePage{feature: feature, search: in}
}

// setTable swaps in freshly loaded rows and re-applies the current filter.
func (p *tablePage) setTable(t *table.Table) {
	p.table = t
	if t == nil || !slices.Contains(t.StatusOptions, p.status) {
		p.status = ""
	}
	p.apply()
}

func (p *tablePage) filter() table.Filter {
	return table.Filter{Search: p.search.Value(), Status: p.status}
}

func (p *tablePage) apply() {
	n := p.table.Apply(p.filter())
	if p.cursor >= n {
		p.cursor = max(n-1, 0)
	}
}

func (p *tablePage) statusLabel() string {
	if p.table == nil || len(p.table.StatusOptions) == 0 {
		return ""
	}
	if p.status == "" {
		return table.AllStatus
	}
	return p.status
}

func (p *tablePage) visible() int {
	return p.table.VisibleCount()
}

// snapshot copies row visibility so an export command never races the
// next filter keystroke.
func (p *tablePage) snapshot() *table.Table {
	if p.table == nil {
		return nil
	}
	cp := *p.table
	cp.Rows = append([]table.Row(nil), p.table.Rows...)
	return &cp
}

func (a *App) updateTablePage(p *tablePage, m tea.KeyMsg) tea.Cmd {
	if p.search.Focused() {
		switch m.Type {
		case tea.KeyEnter, tea.KeyEsc:
			p.search.Blur()
			p.apply()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(m)
		p.apply()
		return cmd
	}

	switch {
	case key.Matches(m, keys.Search):
		return p.search.Focus()
	case key.Matches(m, keys.Status):
		if s := p.table.NextStatus(p.statusLabel()); s != "" {
			p.status = s
			p.apply()
		}
	case key.Matches(m, keys.Back):
		p.search.SetValue("")
		p.status = ""
		p.apply()
	case key.Matches(m, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(m, keys.Down):
		if p.cursor < p.visible()-1 {
			p.cursor++
		}
	case key.Matches(m, keys.ExportCSV):
		return a.exportCmd(p, service.FormatCSV)
	case key.Matches(m, keys.ExportXLS):
		return a.exportCmd(p, service.FormatXLSX)
	}
	return nil
}

func (a *App) exportCmd(p *tablePage, format string) tea.Cmd {
	if a.deps.Exporter == nil {
		a.status = "export is not configured"
		return nil
	}
	snap, exporter := p.snapshot(), a.deps.Exporter
	return func() tea.Msg {
		path, err := exporter.Export(snap, format)
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg{feature: p.feature, format: format, path: path}
	}
}

func (a *App) renderTablePage(p *tablePage) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(router.ShortLabel(a.router.CurrentID())))
	b.WriteString("\n")
	b.WriteString(p.search.View())
	if s := p.statusLabel(); s != "" {
		b.WriteString("   " + mutedStyle.Render("Status: ") + s)
	}
	b.WriteString("\n")
	if p.table == nil {
		b.WriteString(mutedStyle.Render("loading..."))
		return b.String()
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d", p.visible(), len(p.table.Rows))))
	b.WriteString("\n\n")
	b.WriteString(a.renderGrid(p))
	b.WriteString("\n\n")
	b.WriteString(helpLine(keys.Search, keys.Status, keys.ExportCSV, keys.ExportXLS, keys.Back))
	return b.String()
}

func (a *App) renderGrid(p *tablePage) string {
	t := p.table
	widths := columnWidths(t)
	statusCol := -1
	for i, h := range t.Headers {
		if h == "Status" {
			statusCol = i
		}
	}

	var lines []string
	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = fit(h, widths[i])
	}
	lines = append(lines, headerStyle.Render(strings.Join(header, " ")))

	rows := t.VisibleRows()
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("No matching records"))
		return strings.Join(lines, "\n")
	}
	limit := a.tableRowLimit()
	start := 0
	if p.cursor >= limit {
		start = p.cursor - limit + 1
	}
	end := min(start+limit, len(rows))
	for i := start; i < end; i++ {
		cells := make([]string, len(rows[i].Cells))
		for j, c := range rows[i].Cells {
			w := 0
			if j < len(widths) {
				w = widths[j]
			}
			cells[j] = fit(c, w)
			if j == statusCol {
				cells[j] = badge(rows[i].Status) + strings.Repeat(" ", max(w-len([]rune(rows[i].Status)), 0))
			}
		}
		line := strings.Join(cells, " ")
		if i == p.cursor {
			lines = append(lines, rowCursor.Render(line))
		} else {
			lines = append(lines, rowStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) tableRowLimit() int {
	if a.height <= 0 {
		return 15
	}
	return max(a.height-14, 3)
}

func columnWidths(t *table.Table) []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len([]rune(h))
	}
	for _, r := range t.Rows {
		for i, c := range r.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], len([]rune(c)))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}
