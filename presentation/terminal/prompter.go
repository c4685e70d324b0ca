package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ghost_tester/domain/entities"
	"ghost_tester/domain/interfaces"
)

// Prompter asks recorder questions on a line-oriented terminal. Choices are
// answered by number, Enter takes the default and "c" cancels.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine reads one trimmed line. It returns io.EOF once input is exhausted.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) ChooseLocator(ctx context.Context, element entities.CapturedElement, locators []entities.Locator) (entities.Locator, error) {
	options := make([]string, len(locators))
	for i, loc := range locators {
		options[i] = fmt.Sprintf("[%s] %s", loc.Kind, loc.Selector())
	}

	i, err := p.choose(ctx, "Select locator for "+element.Summary(), options, 0)
	if err != nil {
		return entities.Locator{}, err
	}
	return locators[i], nil
}

func (p *Prompter) ChooseAction(ctx context.Context) (entities.ActionType, error) {
	options := make([]string, len(entities.Actions))
	for i, a := range entities.Actions {
		options[i] = fmt.Sprintf("%-12s %s - %s", a.Icon, a.Label, a.Description)
	}

	i, err := p.choose(ctx, "Select action", options, 0)
	if err != nil {
		return "", err
	}
	return entities.Actions[i].Type, nil
}

func (p *Prompter) ChooseWait(ctx context.Context) (entities.WaitState, error) {
	options := make([]string, len(entities.WaitStates))
	for i, w := range entities.WaitStates {
		options[i] = string(w)
	}

	// be.visible
	i, err := p.choose(ctx, "Select wait condition", options, 1)
	if err != nil {
		return "", err
	}
	return entities.WaitStates[i], nil
}

func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(p.out, "%s [y/N]: ", question)

		answer, err := p.answer()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		case "c":
			return false, interfaces.ErrCancelled
		}
		fmt.Fprintln(p.out, "Please answer y or n")
	}
}

// Ask returns the typed answer, or defaultValue for an empty line. Only
// closing the input cancels, since "c" may be a legitimate answer here.
func (p *Prompter) Ask(ctx context.Context, question, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	answer, err := p.answer()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func (p *Prompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}

func (p *Prompter) choose(ctx context.Context, title string, options []string, def int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintln(p.out, title)
		for i, opt := range options {
			marker := " "
			if i == def {
				marker = "*"
			}
			fmt.Fprintf(p.out, " %s %d) %s\n", marker, i+1, opt)
		}
		fmt.Fprintf(p.out, "Choice [%d, c to cancel]: ", def+1)

		answer, err := p.answer()
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return def, nil
		}
		if strings.EqualFold(answer, "c") {
			return 0, interfaces.ErrCancelled
		}

		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "Invalid choice %q\n", answer)
	}
}

// answer reads a reply; closed input counts as cancelling the prompt
func (p *Prompter) answer() (string, error) {
	line, err := p.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", interfaces.ErrCancelled
	}
	return line, err
}

var _ interfaces.Prompter = (*Prompter)(nil)
