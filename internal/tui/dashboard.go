package tui

import (
	"fmt"
	"strings"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/paynex/paynex/internal/router"
	"github.com/paynex/paynex/internal/service"
)

const (
	chartHeight     = 10
	recentTxnsShown = 5
)

func (a *App) renderDashboard() string {
	if !a.loaded {
		return mutedStyle.Render("loading...")
	}
	s := a.summary
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Volume", a.amount(s.VolumeCents)),
		card("Transactions", fmt.Sprintf("%d", s.TransactionCount)),
		card("Success Rate", fmt.Sprintf("%.1f%%", s.SuccessRate)),
		card("Pending Payouts", fmt.Sprintf("%d · %s", s.PendingPayouts, a.amount(s.PendingPayoutCents))),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dashboard"))
	b.WriteString("\n")
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Daily volume"))
	b.WriteString("\n")
	b.WriteString(renderVolumeChart(a.series, a.mainWidth()-2))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("Recent transactions"))
	b.WriteString("\n")
	b.WriteString(a.renderRecent())
	return b.String()
}

func card(label, value string) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

func renderVolumeChart(points []service.VolumePoint, width int) string {
	if len(points) < 2 {
		return mutedStyle.Render("not enough report data")
	}
	maxVal := 0.0
	for _, p := range points {
		maxVal = max(maxVal, float64(p.VolumeCents)/100)
	}
	if maxVal == 0 {
		maxVal = 1
	}
	start, end := points[0].Day, points[len(points)-1].Day

	chart := tslc.New(max(width, 20), chartHeight)
	chart.SetStyle(lipgloss.NewStyle().Foreground(accent))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(colorSurface2)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)
	for _, p := range points {
		chart.Push(tslc.TimePoint{Time: p.Day, Value: float64(p.VolumeCents) / 100})
	}
	chart.DrawBraille()
	return chart.View()
}

func (a *App) renderRecent() string {
	p := a.tables[router.PageTransaction]
	if p == nil || p.table == nil || len(p.table.Rows) == 0 {
		return mutedStyle.Render("No transactions")
	}
	var lines []string
	for i, r := range p.table.Rows {
		if i == recentTxnsShown {
			break
		}
		// id, customer, amount, status
		if len(r.Cells) < 6 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			fit(r.Cells[0], 12), fit(r.Cells[2], 16), fit(r.Cells[3], 16), badge(r.Status)))
	}
	return strings.Join(lines, "\n")
}
