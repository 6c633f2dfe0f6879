package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")
)

// Status styles — bold foreground, used for health indicators.
var (
	StyleStatusGreen   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusYellow  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleStatusRed     = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleStatusUnknown = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleTab / StyleTabSelected render the resource tab bar entries.
var (
	StyleTab         = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	StyleTabSelected = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorWhite).Padding(0, 1)
)

// StylePanel is the bordered box every component renders into; the border
// color signals focus.
func StylePanel(focused bool) lipgloss.Style {
	border := colorGray
	if focused {
		border = colorBlue
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// StylePanelTitle renders a panel's title line.
var StylePanelTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

// StyleCursorRow highlights the row under a list or table cursor.
var StyleCursorRow = lipgloss.NewStyle().Bold(true).Background(colorDark).Foreground(colorWhite)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
	StyleKey   = lipgloss.NewStyle().Foreground(colorCyan)
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// StatusStyle returns the bold+foreground style for a health string.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "green":
		return StyleStatusGreen
	case "yellow":
		return StyleStatusYellow
	case "red":
		return StyleStatusRed
	default:
		return StyleStatusUnknown
	}
}
