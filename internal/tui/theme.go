package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	logoStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBrand).MarginBottom(1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorSurface2).
			PaddingRight(1).
			Width(22)
	navStyle       = lipgloss.NewStyle().Foreground(colorSubtext0)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	navCursorStyle = lipgloss.NewStyle().Foreground(colorFocus)

	crumbStyle       = lipgloss.NewStyle().Foreground(colorOverlay1)
	crumbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1).
			Width(24)
	cardLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	rowStyle     = lipgloss.NewStyle().Foreground(colorText)
	rowCursor    = lipgloss.NewStyle().Background(colorSurface0).Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(1, 2)

	channelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface2).
			Width(18).
			Align(lipgloss.Center)
	channelCursorStyle   = channelStyle.BorderForeground(colorFocus)
	channelSelectedStyle = channelStyle.BorderForeground(colorSuccess).Bold(true)
	channelInactiveStyle = channelStyle.Foreground(colorOverlay1)

	stepPendingStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	stepActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	stepCompletedStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	fieldFocusStyle    = lipgloss.NewStyle().Foreground(colorFocus)
	fieldFlaggedStyle  = lipgloss.NewStyle().Foreground(colorError)
)

// statusColor maps a status badge to its color.
func statusColor(status string) lipgloss.Color {
	switch status {
	case "Success", "Completed", "Settled":
		return colorSuccess
	case "Pending":
		return colorWarning
	case "Processing":
		return colorBlue
	case "Failed":
		return colorError
	}
	return colorText
}

func badge(status string) string {
	return lipgloss.NewStyle().Foreground(statusColor(status)).Render(status)
}

// accent is used for the chart line.
var accent = colorPeach
