package codegen

import (
	"bytes"
	"text/template"
)

var pagesTemplate = template.Must(template.New("pages").Parse(`// This file is maintained by ghost-tester. Recorded accessors are appended
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
`))

var setupTemplate = template.Must(template.New("setup").Parse(`package e2e

import (
	"os"
	"sync"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

var (
	pw      *playwright.Playwright
	browser playwright.Browser
	expect  = playwright.NewPlaywrightAssertions()

	startOnce sync.Once
	startErr  error
)

func TestMain(m *testing.M) {
	code := m.Run()
	if browser != nil {
		_ = browser.Close()
	}
	if pw != nil {
		_ = pw.Stop()
	}
	os.Exit(code)
}

func start() {
	pw, startErr = playwright.Run()
	if startErr != nil {
		return
	}
	browser, startErr = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
}

// newPage opens a fresh page. The test is skipped when the playwright driver
// or its browsers are not installed.
func newPage(t *testing.T) playwright.Page {
	t.Helper()
	startOnce.Do(start)
	if startErr != nil {
		t.Skipf("could not start playwright: %v", startErr)
	}
	page, err := browser.NewPage()
	require.NoError(t, err)
	t.Cleanup(func() { _ = page.Close() })
	return page
}
`))

var specTemplate = template.Must(template.New("spec").Parse(`package e2e

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"{{.PagesImport}}"
)

func TestGeneratedUserFlow(t *testing.T) {
	page := newPage(t)
	p := pages.New(page)

	_, err := page.Goto({{.URL}}, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	require.NoError(t, err)
}
`))

type specData struct {
	PagesImport string
	URL         string // Quoted Go string literal
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
