package syntax

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

const defaultName = "No filetype"

// Options toggles the tag categories a Lexicon produces.
type Options struct {
	Numbers           bool
	Strings           bool
	Chars             bool
	Comments          bool
	MultilineComments bool
}

// Lexicon is the per-file-type tokenizer configuration. It is immutable once
// constructed; accessors hand out copies.
type Lexicon struct {
	name      string
	opts      Options
	primary   []string
	secondary []string

	lineComment string
	blockOpen   string
	blockClose  string
}

// NewLexicon builds a Lexicon using C-style comment delimiters.
func NewLexicon(name string, opts Options, primary, secondary []string) *Lexicon {
	return &Lexicon{
		name:        name,
		opts:        opts,
		primary:     append([]string(nil), primary...),
		secondary:   append([]string(nil), secondary...),
		lineComment: "//",
		blockOpen:   "/*",
		blockClose:  "*/",
	}
}

// Default returns the shared lexicon used for unknown file types: every
// category is off and there are no keywords.
func Default() *Lexicon { return defaultLexicon }

var defaultLexicon = NewLexicon(defaultName, Options{}, nil, nil)

// ForFilename resolves a Lexicon from the extension of filename. Unknown or
// missing extensions resolve to Default. Equal file types share one instance.
func ForFilename(filename string) *Lexicon {
	if filepath.Ext(filename) == "" {
		return Default()
	}
	// Extensions such as .rs or .h are shared by several languages; take the
	// first candidate with a built-in lexicon.
	for _, lang := range enry.GetLanguagesByExtension(filename, nil, nil) {
		if lex, ok := builtin[lang]; ok {
			return lex
		}
	}
	return Default()
}

// Languages returns the enry language names that have a built-in lexicon.
func Languages() []string {
	return append([]string(nil), builtinOrder...)
}

func (l *Lexicon) Name() string { return l.name }

func (l *Lexicon) Options() Options { return l.opts }

func (l *Lexicon) PrimaryKeywords() []string { return append([]string(nil), l.primary...) }

func (l *Lexicon) SecondaryKeywords() []string { return append([]string(nil), l.secondary...) }

// LineComment returns the line comment opener.
func (l *Lexicon) LineComment() string { return l.lineComment }

// BlockComment returns the block comment opener and closer.
func (l *Lexicon) BlockComment() (open, close string) { return l.blockOpen, l.blockClose }
