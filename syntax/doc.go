// Package syntax holds the lexical vocabulary of the highlighter: the Tag
// categories assigned to grapheme clusters, the per-file-type Lexicon that
// enables them, and the Theme that maps tags to display styles.
package syntax
