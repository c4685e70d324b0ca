package cli

import (
	"os"

	"ghost_tester/application/recorder"
	"ghost_tester/infrastructure/browser"
	"ghost_tester/presentation/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func newRecordCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Open the browser and record clicked elements interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(v)
			if err != nil {
				return err
			}
			defer s.Close()

			ctrl := browser.NewBrowserController(browser.Options{
				Headless:   s.cfg.Headless,
				NavTimeout: s.cfg.NavTimeout,
			}, s.logger)

			out := cmd.OutOrStdout()
			prompter := terminal.NewPrompter(cmd.InOrStdin(), out)
			rec := recorder.NewRecorder(ctrl, prompter, s.project, s.logger, s.cfg.SpyInterval)

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			ti := terminal.NewTerminalInterface(rec, prompter, out, s.logger, s.cfg.TargetURL, interactive)
			defer ti.Close()

			err = ti.Run(cmd.Context())
			if url := rec.TargetURL(); url != "" {
				s.cfg.TargetURL = url
			}
			s.rememberPreferences()
			return err
		},
	}

	cmd.Flags().Bool("headless", false, "run the browser without a window")
	cmd.Flags().Duration("spy-interval", 0, "how often spy mode polls for clicks")
	cmd.Flags().Duration("nav-timeout", 0, "navigation timeout")
	return cmd
}
