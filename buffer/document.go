package buffer

import (
	"github.com/iw2rmb/revise/internal/grapheme"
	"github.com/iw2rmb/revise/syntax"
)

// Document is the ordered list of rows of one file, with its name, dirty
// state and lexicon.
type Document struct {
	rows     []*Row
	filename string
	changed  bool
	lexicon  *syntax.Lexicon
}

// New returns an empty, unnamed document. The cursor row 0 is implicit: the
// first insert creates it.
func New() *Document {
	return &Document{lexicon: syntax.Default()}
}

// Open builds a document with one row per line. The lexicon is resolved from
// the extension of filename.
func Open(filename string, lines []string) *Document {
	rows := make([]*Row, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, NewRow(line))
	}
	return &Document{
		rows:     rows,
		filename: filename,
		lexicon:  syntax.ForFilename(filename),
	}
}

// Row returns row i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

func (d *Document) Len() int { return len(d.rows) }

func (d *Document) IsEmpty() bool { return len(d.rows) == 0 }

// IsChanged reports whether the document was edited since it was opened or
// last saved.
func (d *Document) IsChanged() bool { return d.changed }

func (d *Document) Filename() string { return d.filename }

func (d *Document) Lexicon() *syntax.Lexicon { return d.lexicon }

// FileType returns the display name of the lexicon.
func (d *Document) FileType() string { return d.lexicon.Name() }

// Insert inserts the grapheme cluster ch at at. A newline splits the row.
// Inserting on the row just past the end appends a new row; inserting
// further out is a no-op.
func (d *Document) Insert(at Position, ch string) {
	if ch == "\n" {
		d.InsertNewline(at)
		return
	}
	if ch == "" || at.Y < 0 || at.Y > len(d.rows) {
		return
	}

	if at.Y == len(d.rows) {
		d.rows = append(d.rows, NewRow(ch))
	} else {
		d.rows[at.Y].Insert(at.X, ch)
	}
	d.changed = true
	d.unfreshen(at.Y)
}

// InsertRune is Insert for a single rune.
func (d *Document) InsertRune(at Position, ch rune) {
	d.Insert(at, string(ch))
}

// InsertNewline splits row at.Y at cluster at.X, moving the tail to a new row
// right after it. At or past the last row it appends an empty row.
func (d *Document) InsertNewline(at Position) {
	if at.Y < 0 {
		return
	}
	d.changed = true
	if at.Y >= len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		d.unfreshen(len(d.rows) - 1)
		return
	}

	tail := d.rows[at.Y].Split(at.X)
	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = tail
	d.unfreshen(at.Y + 1)
}

// Delete removes the cluster at at. At the end of a row that is not the last
// one, the next row is merged into it. Any delete on an existing row marks
// the document changed, even when there is nothing to remove.
func (d *Document) Delete(at Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}
	d.changed = true
	d.unfreshen(at.Y)

	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		row.Append(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
		return
	}
	row.Delete(at.X)
}

// unfreshen marks row y and the row before it stale, so a block comment
// boundary that the edit may have opened or closed is rescanned.
func (d *Document) unfreshen(y int) {
	for i := y - 1; i <= y; i++ {
		if i >= 0 && i < len(d.rows) {
			d.rows[i].fresh = false
		}
	}
}

// Find scans rows from at in dir and returns the position of the first
// match. Moving to another row restarts at column 0 (Forward) or at the end
// of that row (Backward).
func (d *Document) Find(query string, at Position, dir SearchDirection) (Position, bool) {
	if query == "" || at.Y < 0 || at.Y >= len(d.rows) {
		return Position{}, false
	}

	pos := at
	for pos.Y >= 0 && pos.Y < len(d.rows) {
		if x, ok := d.rows[pos.Y].Find(query, pos.X, dir); ok {
			return Position{X: x, Y: pos.Y}, true
		}
		if dir == Forward {
			pos.Y++
			pos.X = 0
			continue
		}
		pos.Y--
		if pos.Y >= 0 {
			pos.X = d.rows[pos.Y].Len()
		}
	}
	return Position{}, false
}

// Highlight tokenizes rows 0 through untilRow (all rows when untilRow is
// negative), threading the block comment state from each row into the next.
// Rows must be processed in order: row N depends on how row N-1 ended.
func (d *Document) Highlight(word string, untilRow int) {
	end := len(d.rows)
	if untilRow >= 0 && untilRow+1 < end {
		end = untilRow + 1
	}
	continued := false
	for i := 0; i < end; i++ {
		continued = d.rows[i].Highlight(d.lexicon, word, continued)
	}
}

// Width returns the cluster length of row y, or 0 when y is out of range.
func (d *Document) Width(y int) int {
	if r := d.Row(y); r != nil {
		return r.Len()
	}
	return 0
}

// Lines returns the raw text of every row.
func (d *Document) Lines() []string {
	out := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		out = append(out, grapheme.Join(r.clusters))
	}
	return out
}
