// Package validation checks user input before it reaches the browser or
// the generated sources.
package validation

import (
	"errors"
	"fmt"
	"go/token"
	"net/url"
	"os"
	"strings"
)

const maxFolderNameLen = 255

// invalidFolderChars are rejected by at least one common filesystem
const invalidFolderChars = `<>:"|?*`

// ValidateURL requires an absolute http or https URL with a host
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("url is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid url %q: missing host", raw)
	}
	return nil
}

// ValidateProjectPath requires an existing, readable directory
func ValidateProjectPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("project path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("project path %q: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project path %q is not a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("project path %q is not readable: %w", path, err)
	}
	return f.Close()
}

// ValidateFolderName rejects empty, overlong, and filesystem-hostile names
func ValidateFolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("folder name is empty")
	}
	if len(name) > maxFolderNameLen {
		return fmt.Errorf("folder name longer than %d characters", maxFolderNameLen)
	}
	if i := strings.IndexAny(name, invalidFolderChars); i >= 0 {
		return fmt.Errorf("folder name contains invalid character %q", name[i])
	}
	return nil
}

// ValidateAccessorName requires an exported Go identifier, since accessors
// become methods on the page objects.
func ValidateAccessorName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%q is not a valid Go identifier", name)
	}
	if !token.IsExported(name) {
		return fmt.Errorf("%q must start with an upper-case letter", name)
	}
	return nil
}
