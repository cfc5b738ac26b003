package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorPink
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Top bar (spans full width)
	topBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 1)

	topBarAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	topBarButtonStyle = lipgloss.NewStyle().
				Foreground(colorSubtext1).
				Background(colorMantle)

	topBarActiveButtonStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorAccent).
				Bold(true)

	searchStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0)

	// Side navigation
	navStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorSurface1).
			Padding(1, 1)

	navHeadingStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)

	filterStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Padding(0, 1)

	filterSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorFocus).
				Bold(true).
				Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	mainStyle = lipgloss.NewStyle().Padding(1, 2)

	hintStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	// Anchored contextual menu
	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorBase).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().Foreground(colorText)

	menuItemActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// Status bar (above footer)
	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusInfoStyle    = statusBarStyle.Foreground(colorInfo)
	statusSuccessStyle = statusBarStyle.Foreground(colorSuccess)
	statusWarningStyle = statusBarStyle.Foreground(colorWarning)
	statusErrorStyle   = statusBarStyle.Foreground(colorError)

	landingStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(1, 4)

	dividerStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	badgeStyle = lipgloss.NewStyle().Foreground(colorPeach)
)
