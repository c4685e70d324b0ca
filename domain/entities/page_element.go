package entities

import "fmt"

// CapturedElement represents an element the user clicked while spy mode was active
type CapturedElement struct {
	ID    string
	Text  string // Visible text, trimmed and capped at 100 chars
	Tag   string // Lower-case tag name
	Class string // Raw class attribute
	Type  string // Input type, if any
}

// Summary returns a one-line description used when asking for a locator
func (e CapturedElement) Summary() string {
	if e.Type != "" {
		return fmt.Sprintf("Tag: %s (%s) | Text: %s", e.Tag, e.Type, e.Text)
	}
	return fmt.Sprintf("Tag: %s | Text: %s", e.Tag, e.Text)
}
