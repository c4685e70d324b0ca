package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"ghost_tester/application/recorder"

	"github.com/sirupsen/logrus"
)

type TerminalInterface struct {
	recorder    *recorder.Recorder
	prompter    *Prompter
	logger      *logrus.Logger
	out         io.Writer
	defaultURL  string
	interactive bool
}

// NewTerminalInterface - wires the command loop to a recorder. The
// recorder must have been created with the same prompter.
func NewTerminalInterface(rec *recorder.Recorder, prompter *Prompter, out io.Writer, logger *logrus.Logger, defaultURL string, interactive bool) *TerminalInterface {
	return &TerminalInterface{
		recorder:    rec,
		prompter:    prompter,
		logger:      logger,
		out:         out,
		defaultURL:  defaultURL,
		interactive: interactive,
	}
}

func (t *TerminalInterface) Run(ctx context.Context) error {
	if t.interactive {
		fmt.Fprintln(t.out, "Ghost Tester - Go test recorder")
		fmt.Fprintln(t.out, "===============================")
		t.printHelp()
		fmt.Fprintln(t.out)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if t.interactive {
			fmt.Fprint(t.out, "> ")
		}

		input, err := t.prompter.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			fmt.Fprintln(t.out, "Goodbye!")
			return nil

		case "help", "?":
			t.printHelp()

		case "launch":
			url := t.defaultURL
			if len(fields) > 1 {
				url = fields[1]
			}
			fmt.Fprintf(t.out, "[+] Launching browser with URL: %s\n", url)
			if err := t.recorder.Launch(ctx, url); err != nil {
				fmt.Fprintf(t.out, "[X] %v\n", err)
				continue
			}
			fmt.Fprintln(t.out, "[*] Ready to start SPY MODE")

		case "spy":
			if err := t.spy(ctx); err != nil {
				fmt.Fprintf(t.out, "[X] %v\n", err)
			}

		case "status":
			t.printStatus()

		default:
			fmt.Fprintf(t.out, "Unknown command %q, type 'help' for the list\n", fields[0])
		}
	}
}

// spy runs spy mode until Ctrl+C, then hands the terminal back to the
// command loop.
func (t *TerminalInterface) spy(ctx context.Context) error {
	spyCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(t.out, "Press Ctrl+C to stop spy mode")
	return t.recorder.Spy(spyCtx)
}

func (t *TerminalInterface) printStatus() {
	url := t.recorder.TargetURL()
	if url == "" {
		url = "(not launched)"
	}
	fmt.Fprintf(t.out, "Target: %s\n", url)
	fmt.Fprintf(t.out, "Captured elements: %d\n", t.recorder.Captures())
}

func (t *TerminalInterface) printHelp() {
	fmt.Fprintln(t.out, "Commands:")
	fmt.Fprintf(t.out, "  launch [url]  open the browser (default %s)\n", t.defaultURL)
	fmt.Fprintln(t.out, "  spy           capture clicked elements until Ctrl+C")
	fmt.Fprintln(t.out, "  status        show the session state")
	fmt.Fprintln(t.out, "  help          show this list")
	fmt.Fprintln(t.out, "  quit          close the browser and exit")
}

func (t *TerminalInterface) Close() error {
	t.logger.Info("Closing browser")
	return t.recorder.Close()
}
