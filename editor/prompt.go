package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/internal/grapheme"
	"github.com/iw2rmb/revise/internal/log"
)

// prompt is a one-line input shown in the message bar. onKey runs after every
// key that reaches the prompt, with the input as it stands after that key.
// onDone runs once, with ok false when the prompt was cancelled.
type prompt struct {
	label string
	input []string // grapheme clusters

	onKey  func(m *Model, msg tea.KeyMsg, input string)
	onDone func(m *Model, input string, ok bool)
}

func (p *prompt) text() string { return grapheme.Join(p.input) }

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.prompt
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Cancel):
		m.prompt = nil
		if p.onDone != nil {
			p.onDone(&m, p.text(), false)
		}
		m.scroll()
		return m, nil
	case key.Matches(msg, km.Enter):
		m.prompt = nil
		if p.onDone != nil {
			p.onDone(&m, p.text(), true)
		}
		m.scroll()
		return m, nil
	case key.Matches(msg, km.Backspace):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case isText(msg):
		p.input = grapheme.Split(p.text() + string(msg.Runes))
	}

	if p.onKey != nil {
		p.onKey(&m, msg, p.text())
	}
	m.clampCursor()
	m.scroll()
	return m, nil
}

func (m *Model) openSaveAs() {
	m.prompt = &prompt{
		label: "Save as: ",
		onDone: func(m *Model, input string, ok bool) {
			if !ok || input == "" {
				m.setMessage("Save aborted.")
				return
			}
			if err := m.doc.SaveAs(input); err != nil {
				m.setMessage("Error writing file: %v", err)
				return
			}
			m.setMessage("File saved successfully.")
		},
	}
}

// openSearch starts an incremental search. Every key re-runs the query from
// the cursor: typing searches forward from the cursor, Right/Down step past
// the current match first, Left/Up search backward. Cancel restores the
// cursor and scroll position.
func (m *Model) openSearch() {
	saved := m.cursor
	savedRow, savedCol := m.rowOffset, m.colOffset
	km := m.cfg.KeyMap
	log.Debug(log.CatSearch, "search opened", "row", saved.Y, "col", saved.X)

	m.prompt = &prompt{
		label: "Search (ESC to cancel, Arrows to navigate): ",
		onKey: func(m *Model, msg tea.KeyMsg, query string) {
			dir := buffer.Forward
			moved := false
			switch {
			case key.Matches(msg, km.Right), key.Matches(msg, km.Down):
				m.moveRight()
				moved = true
			case key.Matches(msg, km.Left), key.Matches(msg, km.Up):
				dir = buffer.Backward
			}

			if pos, ok := m.doc.Find(query, m.cursor, dir); ok {
				m.cursor = pos
			} else if moved {
				m.moveLeft()
			}
			m.word = query
		},
		onDone: func(m *Model, query string, ok bool) {
			m.word = ""
			if !ok {
				m.cursor = saved
				m.rowOffset, m.colOffset = savedRow, savedCol
				log.Debug(log.CatSearch, "search cancelled")
				return
			}
			log.Debug(log.CatSearch, "search done", "query", query, "row", m.cursor.Y, "col", m.cursor.X)
		},
	}
}
