package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the task browser.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the task browser.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Done      lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Normal    lipgloss.Style
	Empty     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Tab: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1),
		Done: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Strikethrough(true),
		High: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Medium: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Normal: lipgloss.NewStyle(),
		Empty: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1),
	}
}
