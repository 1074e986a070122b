package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iw2rmb/revise/internal/log"
	"github.com/iw2rmb/revise/syntax"
)

// ErrNoFilename is returned when saving a document that has no file name.
var ErrNoFilename = errors.New("document has no file name")

// OpenFile reads path into a Document. A missing file yields an empty
// document that will be created on save.
func OpenFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(log.CatFile, "new file", "path", path)
		return &Document{filename: path, lexicon: syntax.ForFilename(path)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc := Open(path, SplitLines(string(data)))
	log.Info(log.CatFile, "opened", "path", path, "rows", doc.Len(), "filetype", doc.FileType())
	return doc, nil
}

// SplitLines splits text into lines. A trailing line break does not start a
// new line and CRLF endings are accepted.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// WriteTo writes every row's raw content followed by a line break.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, r := range d.rows {
		c, err := bw.WriteString(r.String())
		n += int64(c)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Save writes the document to its file and clears the changed flag.
func (d *Document) Save() error {
	if d.filename == "" {
		return ErrNoFilename
	}

	f, err := os.Create(d.filename) //nolint:gosec // G304: path comes from the user
	if err != nil {
		return fmt.Errorf("creating %s: %w", d.filename, err)
	}
	n, err := d.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.ErrorErr(log.CatFile, "save failed", err, "path", d.filename)
		return fmt.Errorf("writing %s: %w", d.filename, err)
	}

	d.changed = false
	log.Info(log.CatFile, "saved", "path", d.filename, "bytes", n)
	return nil
}

// SaveAs renames the document, re-resolves its lexicon from the new name and
// saves it.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return ErrNoFilename
	}
	if path != d.filename {
		d.filename = path
		d.lexicon = syntax.ForFilename(path)
	}
	return d.Save()
}
