package editor

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/syntax"
)

func TestSearch_TypingMovesToMatch(t *testing.T) {
	m, _ := newTestModel(t, buffer.Open("", []string{"one two", "three", "two one"}), 30, 6)

	m = press(m, tea.KeyCtrlF)
	m = typeText(m, "two")
	if got, want := m.Cursor(), (buffer.Position{X: 4, Y: 0}); got != want {
		t.Fatalf("cursor after typing: got %v, want %v", got, want)
	}
	if got := m.SearchWord(); got != "two" {
		t.Fatalf("search word=%q", got)
	}

	m = press(m, tea.KeyDown)
	if got, want := m.Cursor(), (buffer.Position{X: 0, Y: 2}); got != want {
		t.Fatalf("cursor after next: got %v, want %v", got, want)
	}

	m = press(m, tea.KeyUp)
	if got, want := m.Cursor(), (buffer.Position{X: 4, Y: 0}); got != want {
		t.Fatalf("cursor after previous: got %v, want %v", got, want)
	}

	m = press(m, tea.KeyEsc)
	if got := m.Cursor(); got != (buffer.Position{}) {
		t.Fatalf("cancel must restore the cursor, got %v", got)
	}
	if m.SearchWord() != "" {
		t.Fatalf("cancel must clear the search word")
	}
}

func TestSearch_EnterKeepsCursor(t *testing.T) {
	m, _ := newTestModel(t, buffer.Open("", []string{"one two", "three"}), 30, 6)
	m = press(m, tea.KeyCtrlF)
	m = typeText(m, "three")
	m = press(m, tea.KeyEnter)
	if got, want := m.Cursor(), (buffer.Position{X: 0, Y: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if m.SearchWord() != "" {
		t.Fatalf("closing the prompt must clear the search word")
	}
	if m.Document().IsChanged() {
		t.Fatalf("searching must not edit the document")
	}
}

func TestSearch_NextWithoutFurtherMatchStays(t *testing.T) {
	m, _ := newTestModel(t, buffer.Open("", []string{"one two", "two one"}), 30, 6)
	m = press(m, tea.KeyCtrlF)
	m = typeText(m, "one")
	if got, want := m.Cursor(), (buffer.Position{X: 0, Y: 0}); got != want {
		t.Fatalf("first match: got %v, want %v", got, want)
	}
	m = press(m, tea.KeyRight)
	if got, want := m.Cursor(), (buffer.Position{X: 4, Y: 1}); got != want {
		t.Fatalf("second match: got %v, want %v", got, want)
	}
	m = press(m, tea.KeyRight)
	if got, want := m.Cursor(), (buffer.Position{X: 4, Y: 1}); got != want {
		t.Fatalf("no further match must leave the cursor, got %v", got)
	}
}

func TestSearch_BackspaceEditsQuery(t *testing.T) {
	m, _ := newTestModel(t, buffer.Open("", []string{"ab ac"}), 60, 6)
	m = press(m, tea.KeyCtrlF)
	m = typeText(m, "ac")
	if got := m.Cursor().X; got != 3 {
		t.Fatalf("cursor x=%d, want 3", got)
	}
	m = press(m, tea.KeyBackspace)
	if got := m.SearchWord(); got != "a" {
		t.Fatalf("search word after backspace=%q", got)
	}
	if lines := viewLines(m); lines[len(lines)-1] != "Search (ESC to cancel, Arrows to navigate): a" {
		t.Fatalf("prompt line=%q", lines[len(lines)-1])
	}
}

func TestSearch_OverlayTagsMatches(t *testing.T) {
	m, _ := newTestModel(t, buffer.Open("", []string{"one two"}), 30, 6)
	m = press(m, tea.KeyCtrlF)
	m = typeText(m, "two")
	_ = m.View()

	tags := m.Document().Row(0).Tags()
	for i, tag := range tags {
		want := syntax.None
		if i >= 4 {
			want = syntax.Match
		}
		if tag != want {
			t.Fatalf("tag %d=%v, want %v", i, tag, want)
		}
	}

	m = press(m, tea.KeyEsc)
	_ = m.View()
	for i, tag := range m.Document().Row(0).Tags() {
		if tag != syntax.None {
			t.Fatalf("tag %d=%v after cancel, want none", i, tag)
		}
	}
}

func TestSave_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	doc, err := buffer.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	m, _ := newTestModel(t, doc, 30, 6)
	m = typeText(m, "hi")
	m = press(m, tea.KeyCtrlS)

	if m.Document().IsChanged() {
		t.Fatalf("save must clear the changed flag")
	}
	if got := m.Message(); got != "File saved successfully." {
		t.Fatalf("message=%q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hi\n" {
		t.Fatalf("file content=%q err=%v", data, err)
	}
}

func TestSave_PromptsForName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.go")
	m, _ := newTestModel(t, nil, 60, 6)
	m = typeText(m, "func")
	m = press(m, tea.KeyCtrlS)
	m = typeText(m, path)
	m = press(m, tea.KeyEnter)

	if got := m.Document().Filename(); got != path {
		t.Fatalf("filename=%q, want %q", got, path)
	}
	if got := m.Document().FileType(); got != "Go" {
		t.Fatalf("file type=%q", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestSave_PromptCancelled(t *testing.T) {
	m, _ := newTestModel(t, nil, 60, 6)
	m = typeText(m, "x")
	m = press(m, tea.KeyCtrlS, tea.KeyEsc)
	if got := m.Message(); got != "Save aborted." {
		t.Fatalf("message=%q", got)
	}
	if !m.Document().IsChanged() {
		t.Fatalf("aborted save must leave the document changed")
	}
}
