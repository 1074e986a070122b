package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const maxStatusName = 20

// renderStatusBar draws "name - N lines (modified)" on the left and
// "filetype | row/rows" on the right.
func (m Model) renderStatusBar() string {
	name := "[No Name]"
	if fn := m.doc.Filename(); fn != "" {
		name = ansi.Truncate(filepath.Base(fn), maxStatusName, "")
	}
	modified := ""
	if m.doc.IsChanged() {
		modified = " (modified)"
	}

	left := fmt.Sprintf("%s - %d lines%s", name, m.doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", m.doc.FileType(), m.cursor.Y+1, m.doc.Len())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", maxInt(gap, 0)) + right
	line = ansi.Truncate(line, m.width, "")
	return m.cfg.Style.StatusBar.Render(line)
}

// renderMessageBar shows the open prompt, or the status message until it
// expires.
func (m Model) renderMessageBar() string {
	msg := m.Message()
	if m.prompt != nil {
		msg = m.prompt.label + m.prompt.text()
	}
	return m.cfg.Style.Message.Render(ansi.Truncate(msg, m.width, ""))
}
