package buffer

import (
	"github.com/iw2rmb/revise/internal/grapheme"
	"github.com/iw2rmb/revise/syntax"
)

// Cell is one rendered grapheme cluster and its tag.
type Cell struct {
	Text string
	Tag  syntax.Tag
}

// Row is one line of text stored as grapheme clusters, plus the tags the
// tokenizer assigned to them.
//
// tags has one entry per cluster whenever the row is fresh. After an edit the
// row is stale and tags may be shorter or longer than the content until the
// next Highlight.
type Row struct {
	clusters []string
	tags     []syntax.Tag
	fresh    bool

	// Inputs and result of the last tokenization, valid while fresh.
	lexicon   *syntax.Lexicon
	continued bool
	openAtEnd bool
	// matched is set while tags carry a search overlay.
	matched bool
}

// NewRow builds a stale row holding text.
func NewRow(text string) *Row {
	return &Row{clusters: grapheme.Split(text)}
}

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return len(r.clusters) }

func (r *Row) IsEmpty() bool { return len(r.clusters) == 0 }

func (r *Row) String() string { return grapheme.Join(r.clusters) }

// Cluster returns the grapheme cluster at i, or "" when i is out of range.
func (r *Row) Cluster(i int) string {
	if i < 0 || i >= len(r.clusters) {
		return ""
	}
	return r.clusters[i]
}

// Bytes returns the raw content of the row, without tags or a line break.
func (r *Row) Bytes() []byte { return []byte(r.String()) }

// IsFresh reports whether the tags reflect the current content.
func (r *Row) IsFresh() bool { return r.fresh }

// Tags returns a copy of the row's tags.
func (r *Row) Tags() []syntax.Tag { return append([]syntax.Tag(nil), r.tags...) }

// Insert splices ch in as the cluster at index at, or appends it when at is
// past the end. ch is kept as one cluster even when it would join its
// neighbour under a fresh segmentation of the line.
func (r *Row) Insert(at int, ch string) {
	if ch == "" || at < 0 {
		return
	}
	if at > len(r.clusters) {
		at = len(r.clusters)
	}
	r.clusters = append(r.clusters[:at:at], append([]string{ch}, r.clusters[at:]...)...)
	r.fresh = false
}

// InsertRune is Insert for a single rune.
func (r *Row) InsertRune(at int, ch rune) {
	r.Insert(at, string(ch))
}

// Delete removes the cluster at index at. Out-of-range indices are ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= len(r.clusters) {
		return
	}
	r.clusters = append(r.clusters[:at:at], r.clusters[at+1:]...)
	r.fresh = false
}

// Append concatenates other's clusters onto r, so the length becomes the sum
// of both.
func (r *Row) Append(other *Row) {
	if other == nil || len(other.clusters) == 0 {
		return
	}
	r.clusters = append(r.clusters[:len(r.clusters):len(r.clusters)], other.clusters...)
	r.fresh = false
}

// Split truncates r to the clusters [0, at) and returns a new row holding
// [at, Len()). Both rows are stale afterwards.
func (r *Row) Split(at int) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(r.clusters) {
		at = len(r.clusters)
	}
	tail := &Row{clusters: append([]string(nil), r.clusters[at:]...)}
	r.clusters = r.clusters[:at:at]
	if len(r.tags) > at {
		r.tags = r.tags[:at]
	}
	r.fresh = false
	return tail
}

// Render returns the cells in the window [start, min(end, Len())). Tabs render
// as a single space. Clusters without a tag render as None.
func (r *Row) Render(start, end int) []Cell {
	if end > len(r.clusters) {
		end = len(r.clusters)
	}
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}

	out := make([]Cell, 0, end-start)
	for i := start; i < end; i++ {
		text := r.clusters[i]
		if text == "\t" {
			text = " "
		}
		tag := syntax.None
		if i < len(r.tags) {
			tag = r.tags[i]
		}
		out = append(out, Cell{Text: text, Tag: tag})
	}
	return out
}

// Find returns the index of the first (Forward) or last (Backward) occurrence
// of query as a contiguous run of clusters. Forward searches [at, Len()),
// Backward searches [0, at).
func (r *Row) Find(query string, at int, dir SearchDirection) (int, bool) {
	if query == "" || at < 0 || at > len(r.clusters) {
		return 0, false
	}
	q := grapheme.Split(query)

	var idx int
	if dir == Forward {
		idx = grapheme.Index(r.clusters, q, at, len(r.clusters))
	} else {
		idx = grapheme.LastIndex(r.clusters, q, 0, at)
	}
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
