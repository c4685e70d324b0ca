package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocatorSelector(t *testing.T) {
	tests := []struct {
		loc  Locator
		want string
	}{
		{Locator{LocatorID, "cc"}, "#cc"},
		{Locator{LocatorID, "user.email"}, `[id="user.email"]`},
		{Locator{LocatorID, "a\u00a0b"}, `[id="a\a0 b"]`},
		{Locator{LocatorID, "say \"hi\"\\"}, `[id="say \"hi\"\\"]`},
		{Locator{LocatorID, "line\nbreak"}, `[id="line\a break"]`},
		{Locator{LocatorClass, "btn-primary"}, ".btn-primary"},
		{Locator{LocatorClass, "md:flex"}, `[class~="md:flex"]`},
		{Locator{LocatorTag, "button"}, "button"},
		{Locator{LocatorText, "Sign in"}, "text=Sign in"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.loc.Selector())
	}
}

func TestParse(t *testing.T) {
	kind, ok := ParseLocatorKind("class")
	assert.True(t, ok)
	assert.Equal(t, LocatorClass, kind)
	_, ok = ParseLocatorKind("xpath")
	assert.False(t, ok)

	action, ok := ParseActionType("wait-click")
	assert.True(t, ok)
	assert.Equal(t, ActionWaitClick, action)
	_, ok = ParseActionType("Click")
	assert.False(t, ok)

	wait, ok := ParseWaitState("be.enabled")
	assert.True(t, ok)
	assert.Equal(t, WaitEnabled, wait)
	_, ok = ParseWaitState("visible")
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Tag: button | Text: Accept", CapturedElement{Tag: "button", Text: "Accept"}.Summary())
	assert.Equal(t, "Tag: input (email) | Text: ", CapturedElement{Tag: "input", Type: "email"}.Summary())
}
