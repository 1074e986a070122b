package buffer

import (
	"strings"

	"github.com/iw2rmb/revise/internal/grapheme"
	"github.com/iw2rmb/revise/syntax"
)

// Highlight tokenizes the row with lex and overlays matches of word. continued
// reports whether the previous row ended inside an unterminated block
// comment. The result is the same flag for the next row.
//
// Tags are a pure function of the content, lex and continued, so a fresh row
// tokenized with the same lexicon and incoming state is not scanned again
// unless a search overlay has to be applied or removed.
func (r *Row) Highlight(lex *syntax.Lexicon, word string, continued bool) bool {
	if lex == nil {
		lex = syntax.Default()
	}
	if !lex.Options().MultilineComments {
		continued = false
	}

	if r.fresh && word == "" && !r.matched && r.lexicon == lex && r.continued == continued {
		return r.openAtEnd
	}

	s := scanner{
		clusters:  r.clusters,
		tags:      make([]syntax.Tag, len(r.clusters)),
		lex:       lex,
		opts:      lex.Options(),
		primary:   lex.PrimaryKeywords(),
		secondary: lex.SecondaryKeywords(),
	}
	s.run(continued)

	r.tags = s.tags
	r.fresh = true
	r.lexicon = lex
	r.continued = continued
	r.openAtEnd = s.open
	r.matched = false

	if word != "" {
		r.overlayMatches(word)
	}
	return r.openAtEnd
}

func (r *Row) overlayMatches(word string) {
	q := grapheme.Split(word)
	for at := 0; at < len(r.clusters); {
		idx := grapheme.Index(r.clusters, q, at, len(r.clusters))
		if idx < 0 {
			break
		}
		for i := idx; i < idx+len(q); i++ {
			r.tags[i] = syntax.Match
		}
		r.matched = true
		at = idx + len(q)
	}
}

// matcher tries to recognise a token at position at. It returns the number of
// clusters consumed (0 when it does not apply) and their tag.
type matcher func(s *scanner, at int) (int, syntax.Tag)

// rules are tried in order at every position; the first match wins.
var rules = []matcher{
	matchBlockComment,
	matchChar,
	matchLineComment,
	matchPrimaryKeyword,
	matchSecondaryKeyword,
	matchString,
	matchNumber,
}

type scanner struct {
	clusters  []string
	tags      []syntax.Tag
	lex       *syntax.Lexicon
	opts      syntax.Options
	primary   []string
	secondary []string

	// open is set when the row ends inside a block comment.
	open bool
}

func (s *scanner) run(continued bool) {
	at := 0
	if continued {
		_, closer := s.lex.BlockComment()
		end, closed := s.scanTo(0, closer)
		s.fill(0, end, syntax.MultilineComment)
		if !closed {
			s.open = true
			return
		}
		at = end
	}

	for at < len(s.clusters) {
		n, tag := 0, syntax.None
		for _, rule := range rules {
			if n, tag = rule(s, at); n > 0 {
				break
			}
		}
		if n <= 0 {
			n, tag = 1, syntax.None
		}
		s.fill(at, at+n, tag)
		at += n
	}
}

func (s *scanner) fill(start, end int, tag syntax.Tag) {
	for i := start; i < end && i < len(s.tags); i++ {
		s.tags[i] = tag
	}
}

// literalAt returns the number of clusters that spell lit starting at at.
func (s *scanner) literalAt(at int, lit string) (int, bool) {
	if lit == "" || at < 0 {
		return 0, false
	}
	rest := lit
	n := 0
	for i := at; i < len(s.clusters) && rest != ""; i++ {
		c := s.clusters[i]
		if !strings.HasPrefix(rest, c) {
			return 0, false
		}
		rest = rest[len(c):]
		n++
	}
	if rest != "" {
		return 0, false
	}
	return n, true
}

// scanTo returns the index just past the first occurrence of lit at or after
// from, or the row length when lit does not occur.
func (s *scanner) scanTo(from int, lit string) (end int, found bool) {
	for i := from; i < len(s.clusters); i++ {
		if n, ok := s.literalAt(i, lit); ok {
			return i + n, true
		}
	}
	return len(s.clusters), false
}

// separatorBefore reports whether at is the start of the row or follows a
// separator. The raw content is inspected, never the previous tag.
func (s *scanner) separatorBefore(at int) bool {
	return at == 0 || grapheme.IsSeparator(s.clusters[at-1])
}

func (s *scanner) separatorAt(at int) bool {
	return at >= len(s.clusters) || grapheme.IsSeparator(s.clusters[at])
}

func (s *scanner) is(at int, lit string) bool {
	return at >= 0 && at < len(s.clusters) && s.clusters[at] == lit
}

func matchBlockComment(s *scanner, at int) (int, syntax.Tag) {
	if !s.opts.MultilineComments {
		return 0, syntax.None
	}
	opener, closer := s.lex.BlockComment()
	n, ok := s.literalAt(at, opener)
	if !ok {
		return 0, syntax.None
	}
	end, closed := s.scanTo(at+n, closer)
	if !closed {
		s.open = true
	}
	return end - at, syntax.MultilineComment
}

// matchChar recognises 'x' and '\x'. A literal cut short by the end of the
// row is tagged through the end of the row.
func matchChar(s *scanner, at int) (int, syntax.Tag) {
	if !s.opts.Chars || !s.is(at, "'") {
		return 0, syntax.None
	}
	closeAt := at + 2
	if s.is(at+1, `\`) {
		closeAt = at + 3
	}
	if closeAt >= len(s.clusters) {
		return len(s.clusters) - at, syntax.Char
	}
	if !s.is(closeAt, "'") {
		return 0, syntax.None
	}
	return closeAt + 1 - at, syntax.Char
}

func matchLineComment(s *scanner, at int) (int, syntax.Tag) {
	if !s.opts.Comments {
		return 0, syntax.None
	}
	if _, ok := s.literalAt(at, s.lex.LineComment()); !ok {
		return 0, syntax.None
	}
	return len(s.clusters) - at, syntax.Comment
}

func matchPrimaryKeyword(s *scanner, at int) (int, syntax.Tag) {
	return s.matchKeywords(at, s.primary, syntax.PrimaryKeyword)
}

func matchSecondaryKeyword(s *scanner, at int) (int, syntax.Tag) {
	return s.matchKeywords(at, s.secondary, syntax.SecondaryKeyword)
}

// matchKeywords matches a keyword only when it is delimited on both sides by
// a separator or the row boundary, so "if" never matches inside "ifdef".
func (s *scanner) matchKeywords(at int, keywords []string, tag syntax.Tag) (int, syntax.Tag) {
	if len(keywords) == 0 || !s.separatorBefore(at) {
		return 0, syntax.None
	}
	for _, kw := range keywords {
		n, ok := s.literalAt(at, kw)
		if !ok || !s.separatorAt(at+n) {
			continue
		}
		return n, tag
	}
	return 0, syntax.None
}

// matchString scans from an opening double quote to the next unescaped one,
// or to the end of the row.
func matchString(s *scanner, at int) (int, syntax.Tag) {
	if !s.opts.Strings || !s.is(at, `"`) {
		return 0, syntax.None
	}
	for i := at + 1; i < len(s.clusters); i++ {
		switch s.clusters[i] {
		case `\`:
			i++
		case `"`:
			return i + 1 - at, syntax.String
		}
	}
	return len(s.clusters) - at, syntax.String
}

// matchNumber consumes digits and interior dots that are followed by a digit.
// A number must start with a digit that follows a separator or the row start.
func matchNumber(s *scanner, at int) (int, syntax.Tag) {
	if !s.opts.Numbers || !grapheme.IsDigit(s.clusters[at]) || !s.separatorBefore(at) {
		return 0, syntax.None
	}
	i := at + 1
	for i < len(s.clusters) {
		c := s.clusters[i]
		if grapheme.IsDigit(c) {
			i++
			continue
		}
		if c == "." && i+1 < len(s.clusters) && grapheme.IsDigit(s.clusters[i+1]) {
			i++
			continue
		}
		break
	}
	return i - at, syntax.Number
}
