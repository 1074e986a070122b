package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeName selects the built-in tag colours.
const DefaultThemeName = "default"

// Theme maps tags to lipgloss styles.
type Theme struct {
	Name   string
	styles [tagCount]lipgloss.Style
}

// DefaultTheme styles every tag with its Color.
func DefaultTheme() Theme {
	return DefaultThemeWith(lipgloss.DefaultRenderer())
}

// DefaultThemeWith is DefaultTheme bound to a specific renderer.
func DefaultThemeWith(r *lipgloss.Renderer) Theme {
	th := Theme{Name: DefaultThemeName}
	for _, t := range Tags() {
		st := r.NewStyle()
		if t != None {
			st = st.Foreground(lipgloss.Color(t.Color()))
		}
		th.styles[t] = st
	}
	return th
}

// ThemeFromChroma builds a Theme from a registered chroma style. Tags whose
// token type has no colour in the style keep their default colour. Match
// always keeps the default colour so search hits stay visible.
func ThemeFromChroma(r *lipgloss.Renderer, name string) (Theme, bool) {
	cs, ok := styles.Registry[name]
	if !ok || cs == nil {
		return DefaultThemeWith(r), false
	}

	th := DefaultThemeWith(r)
	th.Name = name
	base := cs.Get(chroma.Text).Colour
	for _, t := range Tags() {
		if t == Match {
			continue
		}
		entry := cs.Get(t.TokenType())
		st := r.NewStyle()
		switch {
		case entry.Colour.IsSet() && (t == None || entry.Colour != base):
			st = st.Foreground(lipgloss.Color(entry.Colour.String()))
		case t != None:
			st = st.Foreground(lipgloss.Color(t.Color()))
		}
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}
		if entry.Underline == chroma.Yes {
			st = st.Underline(true)
		}
		th.styles[t] = st
	}
	return th, true
}

// ThemeNamed resolves name to a Theme: DefaultThemeName (or empty) selects
// DefaultTheme, anything else is looked up as a chroma style. The boolean is
// false when name is unknown and the default theme was returned instead.
func ThemeNamed(r *lipgloss.Renderer, name string) (Theme, bool) {
	if name == "" || name == DefaultThemeName {
		return DefaultThemeWith(r), true
	}
	return ThemeFromChroma(r, name)
}

// IsTheme reports whether ThemeNamed would resolve name.
func IsTheme(name string) bool {
	if name == "" || name == DefaultThemeName {
		return true
	}
	_, ok := styles.Registry[name]
	return ok
}

// ThemeNames lists DefaultThemeName followed by every chroma style name.
func ThemeNames() []string {
	return append([]string{DefaultThemeName}, styles.Names()...)
}

// Style returns the style for t.
func (th Theme) Style(t Tag) lipgloss.Style {
	if t >= tagCount {
		t = None
	}
	return th.styles[t]
}
