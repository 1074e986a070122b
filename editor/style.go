package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. Token colours come from the
// syntax.Theme in Config. The zero Style renders plain text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	StatusBar lipgloss.Style
	Message   lipgloss.Style
}

func DefaultStyle() Style {
	return DefaultStyleWith(lipgloss.DefaultRenderer())
}

// DefaultStyleWith is DefaultStyle bound to a specific renderer.
func DefaultStyleWith(r *lipgloss.Renderer) Style {
	gutter := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: r.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          r.NewStyle(),
		Cursor:        r.NewStyle().Reverse(true),
		StatusBar:     r.NewStyle().Foreground(lipgloss.Color("#3f3f3f")).Background(lipgloss.Color("#efefef")),
		Message:       r.NewStyle(),
	}
}
