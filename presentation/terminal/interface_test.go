package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"ghost_tester/application/recorder"
	"ghost_tester/domain/entities"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrowser struct {
	url    string
	closed bool
}

func (b *stubBrowser) Launch(ctx context.Context, url string) error {
	b.url = url
	return nil
}

func (b *stubBrowser) IsReady(ctx context.Context) bool { return b.url != "" && !b.closed }

func (b *stubBrowser) CurrentURL(ctx context.Context) (string, error) { return b.url, nil }

func (b *stubBrowser) SelectedElement(ctx context.Context) (*entities.CapturedElement, error) {
	return nil, nil
}

func (b *stubBrowser) Close() error {
	b.closed = true
	return nil
}

type nopProject struct{}

func (nopProject) Accessors() (map[string]bool, error) {
	return nil, nil
}

func (nopProject) AddStep(step entities.Step, targetURL string) (entities.GeneratedCode, error) {
	return entities.GeneratedCode{}, nil
}

func runSession(t *testing.T, input string, interactive bool) (string, *stubBrowser, *TerminalInterface) {
	t.Helper()

	var out bytes.Buffer
	logger, _ := test.NewNullLogger()
	browser := &stubBrowser{}
	prompter := NewPrompter(strings.NewReader(input), &out)
	rec := recorder.NewRecorder(browser, prompter, nopProject{}, logger, time.Millisecond)
	ti := NewTerminalInterface(rec, prompter, &out, logger, "https://dev.zeustra.com", interactive)

	require.NoError(t, ti.Run(context.Background()))
	return out.String(), browser, ti
}

func TestRunLaunchAndStatus(t *testing.T) {
	out, browser, ti := runSession(t, "status\nlaunch\nstatus\nquit\n", false)

	assert.Equal(t, "https://dev.zeustra.com", browser.url)
	assert.Contains(t, out, "Target: (not launched)")
	assert.Contains(t, out, "[+] Page loaded: https://dev.zeustra.com")
	assert.Contains(t, out, "Target: https://dev.zeustra.com")
	assert.Contains(t, out, "Goodbye!")

	require.NoError(t, ti.Close())
	assert.True(t, browser.closed)
}

func TestRunLaunchWithURL(t *testing.T) {
	out, browser, _ := runSession(t, "launch ftp://nope\nlaunch http://localhost:8080\n", false)

	assert.Contains(t, out, "[X] invalid url")
	assert.Equal(t, "http://localhost:8080", browser.url)
}

func TestRunSpyWithoutBrowser(t *testing.T) {
	out, _, _ := runSession(t, "spy\n", false)
	assert.Contains(t, out, recorder.ErrBrowserNotReady.Error())
}

func TestRunInteractiveBanner(t *testing.T) {
	out, _, _ := runSession(t, "bogus\n\nhelp\n", true)

	assert.Contains(t, out, "Ghost Tester")
	assert.Contains(t, out, `Unknown command "bogus"`)
	assert.Equal(t, 2, strings.Count(out, "Commands:"))
	assert.Contains(t, out, "> ")
}
