package syntax

import "github.com/alecthomas/chroma/v2"

// Tag is the lexical category of one grapheme cluster.
type Tag uint8

const (
	None Tag = iota
	Number
	Match
	String
	Boolean
	Char
	Comment
	MultilineComment
	PrimaryKeyword
	SecondaryKeyword

	tagCount
)

var tagNames = [tagCount]string{
	None:             "none",
	Number:           "number",
	Match:            "match",
	String:           "string",
	Boolean:          "boolean",
	Char:             "char",
	Comment:          "comment",
	MultilineComment: "multiline-comment",
	PrimaryKeyword:   "primary-keyword",
	SecondaryKeyword: "secondary-keyword",
}

func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// Tags returns every tag in declaration order.
func Tags() []Tag {
	out := make([]Tag, 0, tagCount)
	for t := None; t < tagCount; t++ {
		out = append(out, t)
	}
	return out
}

// Color returns the default foreground colour of t as a hex RGB string.
func (t Tag) Color() string {
	switch t {
	case Number:
		return "#dca3a3"
	case Match:
		return "#1e8bd2"
	case String:
		return "#d33682"
	case Boolean:
		return "#00008b"
	case Char:
		return "#6c71c4"
	case Comment, MultilineComment:
		return "#859900"
	case PrimaryKeyword:
		return "#b58900"
	case SecondaryKeyword:
		return "#2aa198"
	default:
		return "#ffffff"
	}
}

// TokenType maps t onto the closest chroma token type, so chroma styles can
// theme tags.
func (t Tag) TokenType() chroma.TokenType {
	switch t {
	case Number:
		return chroma.LiteralNumber
	case String:
		return chroma.LiteralString
	case Boolean:
		return chroma.KeywordConstant
	case Char:
		return chroma.LiteralStringChar
	case Comment:
		return chroma.CommentSingle
	case MultilineComment:
		return chroma.CommentMultiline
	case PrimaryKeyword:
		return chroma.Keyword
	case SecondaryKeyword:
		return chroma.KeywordType
	default:
		return chroma.Text
	}
}
