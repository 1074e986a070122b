package editor

import (
	"time"

	"github.com/iw2rmb/revise/buffer"
	"github.com/iw2rmb/revise/syntax"
)

// DefaultQuitTimes is how many times quit must be pressed to discard unsaved
// changes.
const DefaultQuitTimes = 3

// DefaultMessageTTL is how long a status message stays on screen.
const DefaultMessageTTL = 5 * time.Second

// Config configures the editor Model.
type Config struct {
	// Document to edit. New creates an empty one when nil.
	Document *buffer.Document

	// Rendering options.
	ShowLineNums bool
	TabWidth     int
	Theme        syntax.Theme
	Style        Style

	KeyMap KeyMap

	// QuitTimes is the number of quit presses needed while the document has
	// unsaved changes. Zero selects DefaultQuitTimes.
	QuitTimes int
	// MessageTTL zero selects DefaultMessageTTL.
	MessageTTL time.Duration

	// Now overrides the clock used for status message expiry.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Document == nil {
		c.Document = buffer.New()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.QuitTimes <= 0 {
		c.QuitTimes = DefaultQuitTimes
	}
	if c.MessageTTL <= 0 {
		c.MessageTTL = DefaultMessageTTL
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Theme.Name == "" {
		c.Theme = syntax.DefaultTheme()
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
