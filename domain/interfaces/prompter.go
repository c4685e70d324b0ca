package interfaces

import (
	"context"
	"errors"

	"ghost_tester/domain/entities"
)

// ErrCancelled is returned by a Prompter when the user abandons a prompt
var ErrCancelled = errors.New("cancelled by user")

// Prompter asks the user the questions needed to turn a capture into a step
type Prompter interface {
	ChooseLocator(ctx context.Context, element entities.CapturedElement, locators []entities.Locator) (entities.Locator, error)
	ChooseAction(ctx context.Context) (entities.ActionType, error)
	ChooseWait(ctx context.Context) (entities.WaitState, error)
	Confirm(ctx context.Context, question string) (bool, error)
	Ask(ctx context.Context, question, defaultValue string) (string, error)
	Notify(message string)
}

// ProjectWriter writes generated steps into a test project
type ProjectWriter interface {
	AddStep(step entities.Step, targetURL string) (entities.GeneratedCode, error)
	Accessors() (map[string]bool, error)
}
