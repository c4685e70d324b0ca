package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ghost_tester/domain/entities"
	"ghost_tester/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// captureScript intercepts clicks so the page does not react to them and
// remembers the element for SelectedElement to collect.
const captureScript = `
(() => {
	if (window.__ghostTester) return;
	window.__ghostTester = {
		lastEl: null,
		clickHandler: function(e) {
			e.preventDefault();
			e.stopPropagation();
			this.lastEl = { element: e.target, time: Date.now() };
		}
	};
	document.addEventListener('click', window.__ghostTester.clickHandler.bind(window.__ghostTester), true);
})();
`

// readSelectionScript returns the captured element, or null, and clears it
const readSelectionScript = `
() => {
	if (!window.__ghostTester || !window.__ghostTester.lastEl) return null;
	const el = window.__ghostTester.lastEl.element;
	window.__ghostTester.lastEl = null;
	return {
		id: el.id || '',
		text: (el.innerText || el.textContent || '').substring(0, 100).trim(),
		tag: el.tagName.toLowerCase(),
		class: el.getAttribute('class') || '',
		type: el.getAttribute('type') || ''
	};
}
`

// Options configures the launched browser
type Options struct {
	Headless   bool
	NavTimeout time.Duration
}

type browserController struct {
	opts    Options
	logger  *logrus.Logger
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	mu      sync.Mutex
}

// NewBrowserController - creates a controller; the browser starts on Launch
func NewBrowserController(opts Options, logger *logrus.Logger) interfaces.Browser {
	if opts.NavTimeout <= 0 {
		opts.NavTimeout = 30 * time.Second
	}
	return &browserController{
		opts:   opts,
		logger: logger,
	}
}

// Launch - starts Chromium, opens url and installs the capture script
func (b *browserController) Launch(ctx context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.page != nil && !b.page.IsClosed() {
		return fmt.Errorf("browser already running")
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	b.pw = pw

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(b.opts.Headless),
		Args: []string{
			"--start-maximized",
			"--disable-blink-features=AutomationControlled",
			"--disable-extensions",
			"--disable-sync",
		},
	})
	if err != nil {
		b.closeLocked()
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	b.browser = browser

	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		NoViewport: playwright.Bool(true),
	})
	if err != nil {
		b.closeLocked()
		return fmt.Errorf("failed to create context: %w", err)
	}
	b.context = browserContext

	// Installed on the context so every document, including ones reached
	// by navigation after launch, captures clicks.
	if err := browserContext.AddInitScript(playwright.Script{Content: playwright.String(captureScript)}); err != nil {
		b.closeLocked()
		return fmt.Errorf("failed to install capture script: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		b.closeLocked()
		return fmt.Errorf("failed to create page: %w", err)
	}
	b.page = page

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	b.logger.WithField("url", url).Info("Opening target page")

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(b.opts.NavTimeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	return nil
}

// IsReady - reports whether a page is open
func (b *browserController) IsReady(ctx context.Context) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page != nil && !b.page.IsClosed()
}

// CurrentURL - returns the URL of the active page
func (b *browserController) CurrentURL(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.page == nil {
		return "", fmt.Errorf("browser not launched")
	}
	return b.page.URL(), nil
}

// SelectedElement - collects the element captured since the previous call
func (b *browserController) SelectedElement(ctx context.Context) (*entities.CapturedElement, error) {
	b.mu.Lock()
	currentPage := b.page
	b.mu.Unlock()

	if currentPage == nil || currentPage.IsClosed() {
		return nil, fmt.Errorf("browser not launched")
	}

	result, err := currentPage.Evaluate(readSelectionScript)
	if err != nil {
		// Navigation tears down the execution context mid-call; the next
		// poll runs against the new document.
		if isNavigationError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read captured element: %w", err)
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}

	return &entities.CapturedElement{
		ID:    getString(data, "id"),
		Text:  getString(data, "text"),
		Tag:   getString(data, "tag"),
		Class: getString(data, "class"),
		Type:  getString(data, "type"),
	}, nil
}

// Close - closes the browser and stops playwright
func (b *browserController) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closeLocked()
}

func (b *browserController) closeLocked() error {
	var closeErr error

	if b.context != nil {
		if err := b.context.Close(); err != nil && !isClosedError(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !isClosedError(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		b.pw = nil
	}

	b.page = nil
	return closeErr
}

func isClosedError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}

func isNavigationError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "Execution context was destroyed") ||
		strings.Contains(errStr, "navigation")
}

// getString - extracts string value from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
