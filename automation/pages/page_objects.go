// This file is maintained by ghost-tester. Recorded accessors are appended
// at the end; selectors may be edited by hand.

// Package pages holds the page objects used by the generated user flow.
package pages

import "github.com/playwright-community/playwright-go"

// PageObjects bundles the element locators for the page under test.
type PageObjects struct {
	page playwright.Page
}

// New returns the page objects bound to page.
func New(page playwright.Page) *PageObjects {
	return &PageObjects{page: page}
}

// CC locates #cc.
func (p *PageObjects) CC() playwright.Locator {
	return p.page.Locator("#cc")
}
