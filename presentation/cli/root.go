package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"ghost_tester/application/codegen"
	"ghost_tester/domain/interfaces"
	"ghost_tester/domain/validation"
	"ghost_tester/infrastructure/config"
	"ghost_tester/infrastructure/logging"
	"ghost_tester/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// Execute runs the ghost-tester command line
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:   "ghost-tester",
		Short: "Record browser interactions as Go end-to-end tests",
		Long: `Ghost Tester opens a browser, lets you click the elements of a page and
writes each interaction as a playwright-go step into a generated test, with
the selectors kept in a page object.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.String("project", "", "Go module root that receives the generated tests")
	pf.String("folder", "", "folder under the project holding pages/ and e2e/")
	pf.String("target-url", "", "page the recorded flow starts from")
	pf.String("state-dir", "", "directory for preferences and session logs")
	pf.String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newRecordCmd(v), newAddCmd(v), newVersionCmd())
	return root
}

// session holds what every generating command needs
type session struct {
	cfg     *config.Config
	logger  *logrus.Logger
	logFile io.Closer
	store   interfaces.Storage
	project *codegen.Project
}

func openSession(v *viper.Viper) (*session, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := logging.New(cfg.LogLevel, cfg.StateDir)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewPreferencesStore(cfg.StateDir)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	prefs, err := store.LoadPreferences()
	if err != nil {
		logger.WithError(err).Warn("Ignoring unreadable preferences")
	}
	cfg.ApplyPreferences(prefs)

	if err := validation.ValidateURL(cfg.TargetURL); err != nil {
		logFile.Close()
		return nil, err
	}
	if err := validation.ValidateProjectPath(cfg.ProjectPath); err != nil {
		logFile.Close()
		return nil, err
	}
	if cfg.ProjectPath, err = filepath.Abs(cfg.ProjectPath); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}
	if err := validation.ValidateFolderName(cfg.Folder); err != nil {
		logFile.Close()
		return nil, err
	}

	project, err := codegen.NewProject(cfg.ProjectPath, cfg.Folder, logger)
	if err != nil {
		logFile.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"project": cfg.ProjectPath,
		"folder":  cfg.Folder,
		"module":  project.ModulePath,
	}).Debug("Session opened")

	return &session{
		cfg:     cfg,
		logger:  logger,
		logFile: logFile,
		store:   store,
		project: project,
	}, nil
}

// rememberPreferences saves the session settings for next time
func (s *session) rememberPreferences() {
	if err := s.store.SavePreferences(s.cfg.Preferences()); err != nil {
		s.logger.WithError(err).Warn("Failed to save preferences")
	}
}

func (s *session) Close() error {
	return s.logFile.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ghost-tester %s\n", version)
		},
	}
}
