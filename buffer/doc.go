// Package buffer implements the grapheme-accurate document model for revise.
//
// A Document is an ordered list of Rows. Every position is a (X, Y) pair where
// X counts grapheme clusters within a row and Y is the row index. Each Row
// carries a tag per cluster produced by an incremental tokenizer; a row is
// re-tokenized only after its content changes or when the block comment state
// flowing into it may have changed.
//
// Out-of-range edits are silent no-ops and out-of-range searches find
// nothing: callers may hold a cursor that is stale by one operation.
package buffer
