package editor

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/syntax"
)

func testRenderer(profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return r
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, doc *buffer.Document, width, height int) (Model, *testClock) {
	t.Helper()
	return newTestModelWith(t, Config{Document: doc}, width, height)
}

// newTestModelWith fills in a colourless theme and a fixed clock unless cfg
// sets them.
func newTestModelWith(t *testing.T, cfg Config, width, height int) (Model, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	if cfg.Theme.Name == "" {
		cfg.Theme = syntax.DefaultThemeWith(testRenderer(termenv.Ascii))
	}
	if cfg.Now == nil {
		cfg.Now = clock.Now
	}
	m := New(cfg)
	return m.SetSize(width, height), clock
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(m Model, s string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func press(m Model, keys ...tea.KeyType) Model {
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	return m
}

// viewLines returns the rendered lines without ANSI sequences or trailing
// blanks.
func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(ansi.Strip(lines[i]), " ")
	}
	return lines
}

const (
	keyEnd  = tea.KeyEnd
	keyHome = tea.KeyHome
	keyDown = tea.KeyDown
)
