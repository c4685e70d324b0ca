package e2e

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
