package codegen

import (
	"strings"

	"ghost_tester/domain/entities"
)

// maxTextLocatorLen caps text locators; longer text is too brittle to match on.
const maxTextLocatorLen = 50

// GenerateLocators returns the locator candidates for a captured element,
// most specific first: id, text, tag, then the first class.
func GenerateLocators(el entities.CapturedElement) []entities.Locator {
	var locs []entities.Locator

	if el.ID != "" {
		locs = append(locs, entities.Locator{Kind: entities.LocatorID, Value: el.ID})
	}

	// GetByText normalizes whitespace, so the collapsed text matches the same element.
	if text := collapseSpace(el.Text); text != "" && len(text) < maxTextLocatorLen {
		locs = append(locs, entities.Locator{Kind: entities.LocatorText, Value: text})
	}

	locs = append(locs, entities.Locator{Kind: entities.LocatorTag, Value: el.Tag})

	if classes := strings.Fields(el.Class); len(classes) > 0 {
		locs = append(locs, entities.Locator{Kind: entities.LocatorClass, Value: classes[0]})
	}

	return locs
}
