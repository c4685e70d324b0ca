package codegen

import (
	"strings"
	"testing"

	"ghost_tester/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLocators(t *testing.T) {
	tests := []struct {
		name string
		el   entities.CapturedElement
		want []entities.Locator
	}{
		{
			name: "all candidates",
			el:   entities.CapturedElement{ID: "cc", Text: "Accept", Tag: "button", Class: "btn primary"},
			want: []entities.Locator{
				{Kind: entities.LocatorID, Value: "cc"},
				{Kind: entities.LocatorText, Value: "Accept"},
				{Kind: entities.LocatorTag, Value: "button"},
				{Kind: entities.LocatorClass, Value: "btn"},
			},
		},
		{
			name: "tag only",
			el:   entities.CapturedElement{Tag: "div"},
			want: []entities.Locator{{Kind: entities.LocatorTag, Value: "div"}},
		},
		{
			name: "long text skipped",
			el:   entities.CapturedElement{Text: strings.Repeat("a", 50), Tag: "p"},
			want: []entities.Locator{{Kind: entities.LocatorTag, Value: "p"}},
		},
		{
			name: "multi-line text collapsed",
			el:   entities.CapturedElement{Text: "Sign\nin", Tag: "button"},
			want: []entities.Locator{
				{Kind: entities.LocatorText, Value: "Sign in"},
				{Kind: entities.LocatorTag, Value: "button"},
			},
		},
		{
			name: "blank class skipped",
			el:   entities.CapturedElement{Tag: "span", Class: "   "},
			want: []entities.Locator{{Kind: entities.LocatorTag, Value: "span"}},
		},
		{
			name: "leading whitespace in class",
			el:   entities.CapturedElement{Tag: "a", Class: "  nav-link active"},
			want: []entities.Locator{
				{Kind: entities.LocatorTag, Value: "a"},
				{Kind: entities.LocatorClass, Value: "nav-link"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateLocators(tt.el))
		})
	}
}
