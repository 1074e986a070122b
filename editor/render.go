package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/revise"
	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/internal/log"
)

// renderContent renders the visible rows. Rows are highlighted only up to the
// last visible one; rows below keep whatever tags they had.
func (m *Model) renderContent() string {
	h := m.textHeight()
	if h <= 0 {
		return ""
	}

	last := m.rowOffset + h - 1
	m.doc.Highlight(m.word, last)

	digits := gutterDigits(m.doc.Len())
	out := make([]string, 0, h)
	for i := 0; i < h; i++ {
		y := m.rowOffset + i
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && y == m.cursor.Y {
				numStyle = m.cfg.Style.LineNumActive
			}
			num := fmt.Sprintf("%*s", digits, "")
			if y < m.doc.Len() {
				num = fmt.Sprintf("%*d", digits, y+1)
			}
			sb.WriteString(numStyle.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		if row := m.doc.Row(y); row != nil {
			sb.WriteString(m.renderRow(row, y))
		} else {
			sb.WriteString(m.renderFiller(y, h))
		}
		out = append(out, sb.String())
	}
	log.Debug(log.CatEditor, "rendered", "from", m.rowOffset, "to", last)
	return strings.Join(out, "\n")
}

// renderFiller draws a row past the end of the document: the cursor when it
// sits there, the welcome banner on an empty document, or a tilde.
func (m *Model) renderFiller(y, h int) string {
	if m.focused && y == m.cursor.Y && m.colOffset == 0 {
		return m.cfg.Style.Cursor.Render(" ")
	}
	if m.doc.IsEmpty() && y == h/3 {
		return m.welcome()
	}
	return m.cfg.Style.Gutter.Render("~")
}

func (m *Model) welcome() string {
	msg := revise.Banner()
	w := m.contentWidth()
	if lipgloss.Width(msg) > w {
		return m.cfg.Style.Gutter.Render("~")
	}
	pad := (w - lipgloss.Width(msg)) / 2
	if pad == 0 {
		return msg
	}
	return m.cfg.Style.Gutter.Render("~") + strings.Repeat(" ", pad-1) + msg
}

// renderRow draws the part of row that falls in the horizontal window
// [colOffset, colOffset+contentWidth). Wide clusters cut by the window edge
// are drawn as blanks to keep columns aligned.
func (m *Model) renderRow(row *buffer.Row, y int) string {
	left := m.colOffset
	right := left + m.contentWidth()
	hasCursor := m.focused && y == m.cursor.Y
	text := m.cfg.Style.Text

	var sb strings.Builder
	col := 0
	for i, c := range row.Render(0, row.Len()) {
		w := cellWidth(row.Cluster(i), col, m.cfg.TabWidth)
		segL, segR := col, col+w
		col = segR

		if segL >= right {
			break
		}
		spanL, spanR := maxInt(segL, left), minInt(segR, right)
		if spanL >= spanR {
			continue
		}

		glyph := c.Text
		if row.Cluster(i) == "\t" {
			glyph = strings.Repeat(" ", w)
		}
		style := m.cfg.Theme.Style(c.Tag).Inherit(text)
		if hasCursor && i == m.cursor.X {
			style = m.cfg.Style.Cursor.Inherit(style)
		}
		if spanL != segL || spanR != segR {
			sb.WriteString(style.Render(strings.Repeat(" ", spanR-spanL)))
			continue
		}
		sb.WriteString(style.Render(glyph))
	}

	if hasCursor && m.cursor.X >= row.Len() && col >= left && col < right {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}
	return sb.String()
}
