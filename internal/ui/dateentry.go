package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// DateEntry is a custom Entry widget for date input. It embeds widget.Entry
// to inherit all standard behavior and filters keystrokes down to digits
// and the separators the date parser accepts.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// Digits and the separators '-', '/', '.' and ' ' pass through.
func (e *DateEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r == '-' || r == '/' || r == '.' || r == ' ':
		e.Entry.TypedRune(r)
	}
	// Other characters are ignored.
	// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
	// so arbitrary text could still be pasted. The date parser handles that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
