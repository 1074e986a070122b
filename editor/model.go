package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/revise/buffer"
)

// statusLines is the number of rows below the text area: the status bar and
// the message bar.
const statusLines = 2

// Model is a Bubble Tea component that renders and edits a buffer.Document.
//
// The cursor may sit one row past the last row; typing there appends a row.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor    buffer.Position
	rowOffset int
	colOffset int // in terminal cells

	width, height int
	focused       bool

	viewport viewport.Model

	prompt *prompt
	// word is the search term currently overlaid on the document.
	word string

	quitTimes int
	message   string
	messageAt time.Time
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:       cfg,
		doc:       cfg.Document,
		focused:   true,
		viewport:  viewport.New(0, 0),
		quitTimes: cfg.QuitTimes,
	}
	m.setMessage("HELP: %s = find | %s = save | %s = quit",
		cfg.KeyMap.Find.Help().Key, cfg.KeyMap.Save.Help().Key, cfg.KeyMap.Quit.Help().Key)
	return m
}

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Position { return m.cursor }

// SearchWord returns the term highlighted by an open search prompt.
func (m Model) SearchWord() string { return m.word }

// Message returns the status message, or "" once it has expired.
func (m Model) Message() string {
	if m.message == "" || m.cfg.Now().Sub(m.messageAt) >= m.cfg.MessageTTL {
		return ""
	}
	return m.message
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = maxInt(width, 0)
	m.height = maxInt(height, 0)
	m.viewport.Width = m.width
	m.viewport.Height = m.textHeight()
	m.scroll()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetCursor moves the cursor, clamping it to the document.
func (m Model) SetCursor(pos buffer.Position) Model {
	m.cursor = pos
	m.clampCursor()
	m.scroll()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveUp(1)
		case tea.MouseButtonWheelDown:
			m.moveDown(1)
		default:
			return m, nil
		}
		m.scroll()
	}
	return m, nil
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderContent())
	if m.height <= statusLines {
		return m.renderStatusBar() + "\n" + m.renderMessageBar()
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.renderMessageBar()
}

func (m *Model) setMessage(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageAt = m.cfg.Now()
}

func (m Model) textHeight() int {
	return maxInt(m.height-statusLines, 0)
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(m.doc.Len()) + 1
}

func (m Model) contentWidth() int {
	return maxInt(m.width-m.gutterWidth(), 0)
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.textHeight()
	if h > 0 {
		y := m.cursor.Y
		if y < m.rowOffset {
			m.rowOffset = y
		} else if y >= m.rowOffset+h {
			m.rowOffset = y - h + 1
		}
	}

	w := m.contentWidth()
	if w > 0 {
		cx := visualCol(m.doc.Row(m.cursor.Y), m.cursor.X, m.cfg.TabWidth)
		if cx < m.colOffset {
			m.colOffset = cx
		} else if cx >= m.colOffset+w {
			m.colOffset = cx - w + 1
		}
	}
}
