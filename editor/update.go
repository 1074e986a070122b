package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/internal/grapheme"
	"github.com/iw2rmb/revise/internal/log"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		if m.doc.IsChanged() && m.quitTimes > 0 {
			m.setMessage("WARNING! File has unsaved changes. Press %s %d more times to quit.",
				km.Quit.Help().Key, m.quitTimes)
			m.quitTimes--
			return m, nil
		}
		log.Info(log.CatEditor, "quit", "changed", m.doc.IsChanged())
		return m, tea.Quit
	}
	m.quitTimes = m.cfg.QuitTimes

	switch {
	case key.Matches(msg, km.Save):
		m.save()
	case key.Matches(msg, km.Find):
		m.openSearch()

	case key.Matches(msg, km.Left):
		m.moveLeft()
	case key.Matches(msg, km.Right):
		m.moveRight()
	case key.Matches(msg, km.Up):
		m.moveUp(1)
	case key.Matches(msg, km.Down):
		m.moveDown(1)
	case key.Matches(msg, km.Home):
		m.cursor.X = 0
	case key.Matches(msg, km.End):
		m.cursor.X = m.doc.Width(m.cursor.Y)
	case key.Matches(msg, km.PageUp):
		m.moveUp(maxInt(m.textHeight(), 1))
	case key.Matches(msg, km.PageDown):
		m.moveDown(maxInt(m.textHeight(), 1))

	case key.Matches(msg, km.Backspace):
		if m.cursor.X > 0 || m.cursor.Y > 0 {
			m.moveLeft()
			m.doc.Delete(m.cursor)
		}
	case key.Matches(msg, km.Delete):
		m.doc.Delete(m.cursor)
	case key.Matches(msg, km.Enter):
		m.insertNewline()
	case key.Matches(msg, km.Tab):
		m.insert("\t")

	default:
		if isText(msg) {
			m.insertText(string(msg.Runes))
		}
	}

	m.clampCursor()
	m.scroll()
	return m, nil
}

// isText reports whether msg carries typed or pasted text.
func isText(msg tea.KeyMsg) bool {
	if msg.Alt || len(msg.Runes) == 0 {
		return false
	}
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// insertText inserts pasted or typed text cluster by cluster. Line breaks
// split the row.
func (m *Model) insertText(s string) {
	for _, c := range grapheme.Split(s) {
		switch c {
		case "\n", "\r", "\r\n":
			m.insertNewline()
		default:
			m.insert(c)
		}
	}
}

// insert inserts one cluster and moves the cursor past it.
func (m *Model) insert(c string) {
	m.doc.Insert(m.cursor, c)
	m.cursor.X++
}

func (m *Model) insertNewline() {
	m.doc.InsertNewline(m.cursor)
	m.cursor = buffer.Position{X: 0, Y: m.cursor.Y + 1}
}

func (m *Model) save() {
	err := m.doc.Save()
	if errors.Is(err, buffer.ErrNoFilename) {
		m.openSaveAs()
		return
	}
	if err != nil {
		m.setMessage("Error writing file: %v", err)
		return
	}
	m.setMessage("File saved successfully.")
}

func (m *Model) moveLeft() {
	switch {
	case m.cursor.X > 0:
		m.cursor.X--
	case m.cursor.Y > 0:
		m.cursor.Y--
		m.cursor.X = m.doc.Width(m.cursor.Y)
	}
}

func (m *Model) moveRight() {
	switch {
	case m.cursor.X < m.doc.Width(m.cursor.Y):
		m.cursor.X++
	case m.cursor.Y < m.doc.Len():
		m.cursor.Y++
		m.cursor.X = 0
	}
}

func (m *Model) moveUp(n int) {
	m.cursor.Y = maxInt(m.cursor.Y-n, 0)
	m.clampCursor()
}

func (m *Model) moveDown(n int) {
	m.cursor.Y = minInt(m.cursor.Y+n, m.doc.Len())
	m.clampCursor()
}

// clampCursor keeps the cursor on a row in [0, Len] and a column within that
// row.
func (m *Model) clampCursor() {
	m.cursor.Y = clampInt(m.cursor.Y, 0, m.doc.Len())
	m.cursor.X = clampInt(m.cursor.X, 0, m.doc.Width(m.cursor.Y))
}
