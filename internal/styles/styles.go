package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/gerunddev/wordcraft/internal/goals"
)

// Monokai Pro color palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Errors, words cut
	Orange  = "#FC9867" // Over a goal
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Goal met, words added
	Cyan    = "#78DCE8" // Annotations
	Magenta = "#AB9DF2" // Titles

	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Magenta))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))

	PreviewStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border)).
			Padding(0, 1)
)

// GoalStyle picks the style for a goal status
func GoalStyle(status string) lipgloss.Style {
	switch status {
	case goals.StatusMet:
		return SuccessStyle
	case goals.StatusOver:
		return WarningStyle
	case goals.StatusUnder:
		return HighlightStyle
	default:
		return DimStyle
	}
}

// Delta renders a signed word delta, green when positive and red when negative
func Delta(n int) string {
	s := fmt.Sprintf("%+d", n)
	switch {
	case n > 0:
		return SuccessStyle.Render(s)
	case n < 0:
		return ErrorStyle.Render(s)
	default:
		return DimStyle.Render(s)
	}
}
