package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	// Base styles
	App lipgloss.Style

	// Tab bar
	TabBar       lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TabSeparator lipgloss.Style

	// Content area
	Content   lipgloss.Style
	ViewTitle lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style
	StatusHelp  lipgloss.Style

	// History rows
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowDate     lipgloss.Style
	RowVitals   lipgloss.Style
	RowMarker   lipgloss.Style

	// Check-in form
	FieldLabel   lipgloss.Style
	FieldValue   lipgloss.Style
	FieldCursor  lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Charts
	ChartLine  lipgloss.Style
	ChartLabel lipgloss.Style

	// Alerts
	Danger  lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// DefaultStyles returns the default TUI styles
func DefaultStyles() Styles {
	// Color palette
	primary := lipgloss.Color("99")   // Purple
	secondary := lipgloss.Color("39") // Cyan
	accent := lipgloss.Color("212")   // Pink
	muted := lipgloss.Color("240")    // Gray
	success := lipgloss.Color("82")   // Green
	warning := lipgloss.Color("214")  // Orange
	danger := lipgloss.Color("196")   // Red

	return buildStyles(primary, secondary, accent, muted, success, warning, danger,
		lipgloss.Color("252"), lipgloss.Color("236"))
}

// NewStylesFromRegistry creates a Styles struct using colors from a
// bubbletint registry. Theme colors map to semantic UI elements:
// - Primary: Purple (tabs, titles)
// - Secondary: Cyan (field values, keys)
// - Accent: BrightPurple (chart lines, selected date)
// - Muted: BrightBlack (inactive elements, labels)
// - Success/Warning/Danger: Green/Yellow/Red (alert severity)
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return buildStyles(
		r.Purple(),
		r.Cyan(),
		r.BrightPurple(),
		r.BrightBlack(),
		r.Green(),
		r.Yellow(),
		r.Red(),
		r.Fg(),
		r.Bg(),
	)
}

func buildStyles(primary, secondary, accent, muted, success, warning, danger, fg, bg lipgloss.TerminalColor) Styles {
	return Styles{
		// Base styles
		App: lipgloss.NewStyle().Padding(1, 2),

		// Tab bar
		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		TabActive: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),
		TabSeparator: lipgloss.NewStyle().
			Foreground(muted).
			SetString("|"),

		// Content area
		Content: lipgloss.NewStyle().
			Padding(0, 1),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		// Status bar
		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusValue: lipgloss.NewStyle().
			Foreground(fg),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		// History rows
		RowSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowDate: lipgloss.NewStyle().
			Foreground(secondary).
			Width(12),
		RowVitals: lipgloss.NewStyle().
			Foreground(fg),
		RowMarker: lipgloss.NewStyle().
			Bold(true).
			Width(3),

		// Check-in form
		FieldLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(20),
		FieldValue: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true),
		FieldCursor: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		// Charts
		ChartLine: lipgloss.NewStyle().
			Foreground(accent),
		ChartLabel: lipgloss.NewStyle().
			Foreground(muted).
			Width(12),

		// Alerts
		Danger: lipgloss.NewStyle().
			Foreground(danger).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
		Muted: lipgloss.NewStyle().
			Foreground(muted),

		// Dialog
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),
	}
}
