package entities

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var cssIdent = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// LocatorKind represents the strategy used to find an element
type LocatorKind string

const (
	LocatorID    LocatorKind = "id"
	LocatorText  LocatorKind = "text"
	LocatorTag   LocatorKind = "tag"
	LocatorClass LocatorKind = "class"
)

// Locator is a single selector candidate for a captured element
type Locator struct {
	Kind  LocatorKind
	Value string
}

// Selector returns the CSS selector for the locator. Text locators have no
// CSS form and return the Playwright text selector instead.
func (l Locator) Selector() string {
	switch l.Kind {
	case LocatorID:
		if !cssIdent.MatchString(l.Value) {
			return "[id=" + cssString(l.Value) + "]"
		}
		return "#" + l.Value
	case LocatorClass:
		if !cssIdent.MatchString(l.Value) {
			return "[class~=" + cssString(l.Value) + "]"
		}
		return "." + l.Value
	case LocatorText:
		return "text=" + l.Value
	default:
		return l.Value
	}
}

// cssString quotes s as a CSS string. Quotes and backslashes are escaped with
// a backslash, runes that are not printable with a hex escape.
func cssString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case !unicode.IsPrint(r):
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ParseLocatorKind converts a user-provided kind into a LocatorKind
func ParseLocatorKind(s string) (LocatorKind, bool) {
	switch k := LocatorKind(s); k {
	case LocatorID, LocatorText, LocatorTag, LocatorClass:
		return k, true
	}
	return "", false
}
