// Package editor provides a Bubble Tea component that edits a
// buffer.Document.
//
// The package is responsible for key handling, cursor movement, scrolling,
// grapheme-aware rendering of highlighted rows, the incremental search
// prompt and the status bar.
package editor
