package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ghost_tester/application/codegen"
	"ghost_tester/domain/entities"
	"ghost_tester/domain/interfaces"
	"ghost_tester/domain/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyRunning  = errors.New("browser already running")
	ErrBrowserNotReady = errors.New("browser not ready: launch it first")
)

type Recorder struct {
	browser   interfaces.Browser
	prompter  interfaces.Prompter
	project   interfaces.ProjectWriter
	logger    *logrus.Entry
	interval  time.Duration
	targetURL string
	captures  int
}

// NewRecorder - creates a recorder; each recorder is one logged session
func NewRecorder(browser interfaces.Browser, prompter interfaces.Prompter, project interfaces.ProjectWriter, logger *logrus.Logger, interval time.Duration) *Recorder {
	return &Recorder{
		browser:  browser,
		prompter: prompter,
		project:  project,
		logger:   logger.WithField("session", uuid.NewString()),
		interval: interval,
	}
}

// Launch - validates url and opens it in the browser
func (r *Recorder) Launch(ctx context.Context, url string) error {
	if err := validation.ValidateURL(url); err != nil {
		return err
	}
	if r.browser.IsReady(ctx) {
		return ErrAlreadyRunning
	}

	r.logger.WithField("url", url).Info("Browser launch initiated")
	if err := r.browser.Launch(ctx, url); err != nil {
		r.logger.WithError(err).Error("Browser launch failed")
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	r.targetURL = url

	current, err := r.browser.CurrentURL(ctx)
	if err == nil {
		r.prompter.Notify(fmt.Sprintf("[+] Page loaded: %s", current))
		r.logger.WithField("url", current).Info("Browser ready")
	}
	return nil
}

// Spy polls the browser for clicked elements and turns each into a step
// until ctx is cancelled. A failed capture is reported and spying goes on.
func (r *Recorder) Spy(ctx context.Context) error {
	if !r.browser.IsReady(ctx) {
		return ErrBrowserNotReady
	}

	r.prompter.Notify("[*] SPY MODE ACTIVE - click elements to capture them")
	r.logger.Info("Spy mode started")

	for {
		select {
		case <-ctx.Done():
			r.stopped()
			return nil
		default:
		}

		el, err := r.browser.SelectedElement(ctx)
		switch {
		case err != nil:
			if !r.browser.IsReady(ctx) {
				r.stopped()
				return fmt.Errorf("browser closed: %w", err)
			}
			r.logger.WithError(err).Warn("Failed to poll captured element")
		case el != nil:
			r.logger.WithFields(logrus.Fields{"tag": el.Tag, "id": el.ID}).Debug("Element captured")
			if _, err := r.Capture(ctx, *el); err != nil && !errors.Is(err, interfaces.ErrCancelled) {
				r.prompter.Notify(fmt.Sprintf("[X] Error: %v", err))
				r.logger.WithError(err).Error("Capture failed")
			}
		}

		select {
		case <-ctx.Done():
			r.stopped()
			return nil
		case <-time.After(r.interval):
		}
	}
}

func (r *Recorder) stopped() {
	r.prompter.Notify("[X] SPY MODE STOPPED")
	r.logger.Info("Spy mode stopped")
}

// Capture asks the user how to use el and writes the resulting step.
// Cancelling any prompt returns interfaces.ErrCancelled and writes nothing.
func (r *Recorder) Capture(ctx context.Context, el entities.CapturedElement) (entities.GeneratedCode, error) {
	r.captures++
	defaultName := r.defaultName()

	loc, err := r.prompter.ChooseLocator(ctx, el, codegen.GenerateLocators(el))
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Locator selection", err)
	}

	action, err := r.prompter.ChooseAction(ctx)
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Action selection", err)
	}

	wait, err := r.prompter.ChooseWait(ctx)
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Wait state selection", err)
	}

	force, err := r.prompter.Confirm(ctx, "Force action? (skip actionability checks)")
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Options", err)
	}

	multiple, err := r.prompter.Confirm(ctx, "Multiple elements?")
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Options", err)
	}

	var text string
	if action == entities.ActionTypeText {
		if text, err = r.prompter.Ask(ctx, "Enter text to type", ""); err != nil {
			return entities.GeneratedCode{}, r.abandon("Text input", err)
		}
	}

	name, err := r.prompter.Ask(ctx, "Accessor name", defaultName)
	if err != nil {
		return entities.GeneratedCode{}, r.abandon("Accessor naming", err)
	}
	if err := validation.ValidateAccessorName(name); err != nil {
		return entities.GeneratedCode{}, err
	}

	targetURL := r.targetURL
	if targetURL == "" {
		if targetURL, err = r.browser.CurrentURL(ctx); err != nil {
			return entities.GeneratedCode{}, fmt.Errorf("no target url: %w", err)
		}
	}

	code, err := r.project.AddStep(entities.Step{
		Accessor: name,
		Locator:  loc,
		Action:   action,
		Wait:     wait,
		Force:    force,
		Multiple: multiple,
		Text:     text,
	}, targetURL)
	if err != nil {
		return entities.GeneratedCode{}, fmt.Errorf("failed to write step: %w", err)
	}

	r.prompter.Notify("[POM] " + code.PageObject)
	r.prompter.Notify("[SPEC] " + code.Step)
	return code, nil
}

// defaultName returns the first Element<N>, counting from this session's
// capture number, that the project does not define yet
func (r *Recorder) defaultName() string {
	defined, err := r.project.Accessors()
	if err != nil {
		r.logger.WithError(err).Warn("Failed to read defined accessors")
	}

	n := r.captures
	for defined[fmt.Sprintf("Element%d", n)] {
		n++
	}
	return fmt.Sprintf("Element%d", n)
}

func (r *Recorder) abandon(stage string, err error) error {
	if errors.Is(err, interfaces.ErrCancelled) {
		r.prompter.Notify(fmt.Sprintf("[!] %s cancelled", stage))
		r.logger.WithField("stage", stage).Info("Capture cancelled")
	}
	return err
}

// Captures - returns the number of elements captured this session
func (r *Recorder) Captures() int {
	return r.captures
}

// TargetURL - returns the URL the browser was launched with
func (r *Recorder) TargetURL() string {
	return r.targetURL
}

// Close - closes the browser
func (r *Recorder) Close() error {
	return r.browser.Close()
}
