package interfaces

import (
	"context"

	"ghost_tester/domain/entities"
)

// Browser defines the browser operations the recorder needs
type Browser interface {
	// Launch starts the browser, opens url and installs the click capture script
	Launch(ctx context.Context, url string) error

	// IsReady reports whether a page is open and usable
	IsReady(ctx context.Context) bool

	// CurrentURL returns the URL of the active page
	CurrentURL(ctx context.Context) (string, error)

	// SelectedElement returns the last captured element and clears it.
	// It returns nil when nothing was clicked since the previous call.
	SelectedElement(ctx context.Context) (*entities.CapturedElement, error)

	// Close closes the browser
	Close() error
}
