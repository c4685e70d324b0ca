// Package config resolves settings from flags, GHOST_* environment
// variables, an optional .env file, saved preferences and built-in
// defaults, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ghost_tester/domain/interfaces"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyTargetURL   = "target_url"
	KeyProject     = "project"
	KeyFolder      = "folder"
	KeyHeadless    = "headless"
	KeySpyInterval = "spy_interval"
	KeyNavTimeout  = "nav_timeout"
	KeyStateDir    = "state_dir"
	KeyLogLevel    = "log_level"

	DefaultTargetURL = "https://dev.zeustra.com"
	DefaultFolder    = "automation"
)

// Config holds the resolved settings
type Config struct {
	TargetURL   string
	ProjectPath string
	Folder      string
	Headless    bool
	SpyInterval time.Duration
	NavTimeout  time.Duration
	StateDir    string
	LogLevel    string
}

// New returns a viper instance with defaults and GHOST_* env binding.
// A .env file in the working directory is loaded first when present;
// existing environment variables win over it.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GHOST")
	v.AutomaticEnv()

	v.SetDefault(KeyTargetURL, "")
	v.SetDefault(KeyProject, "")
	v.SetDefault(KeyFolder, "")
	v.SetDefault(KeyHeadless, false)
	v.SetDefault(KeySpyInterval, 300*time.Millisecond)
	v.SetDefault(KeyNavTimeout, 30*time.Second)
	v.SetDefault(KeyStateDir, defaultStateDir())
	v.SetDefault(KeyLogLevel, "info")

	return v
}

// BindFlags binds each flag in flags whose name matches a config key
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := flagKey(f.Name)
		if bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	return bindErr
}

// Load reads the resolved configuration out of v
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		TargetURL:   v.GetString(KeyTargetURL),
		ProjectPath: v.GetString(KeyProject),
		Folder:      v.GetString(KeyFolder),
		Headless:    v.GetBool(KeyHeadless),
		SpyInterval: v.GetDuration(KeySpyInterval),
		NavTimeout:  v.GetDuration(KeyNavTimeout),
		StateDir:    v.GetString(KeyStateDir),
		LogLevel:    v.GetString(KeyLogLevel),
	}

	if cfg.SpyInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", KeySpyInterval, cfg.SpyInterval)
	}
	if cfg.NavTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", KeyNavTimeout, cfg.NavTimeout)
	}
	if cfg.StateDir == "" {
		return nil, fmt.Errorf("%s is empty", KeyStateDir)
	}
	return cfg, nil
}

// ApplyPreferences fills settings left unset by flags and environment
// from the saved preferences, then from the built-in defaults.
func (c *Config) ApplyPreferences(prefs interfaces.Preferences) {
	c.TargetURL = firstNonEmpty(c.TargetURL, prefs.TargetURL, DefaultTargetURL)
	c.ProjectPath = firstNonEmpty(c.ProjectPath, prefs.ProjectPath, ".")
	c.Folder = firstNonEmpty(c.Folder, prefs.Folder, DefaultFolder)
}

// Preferences returns the settings worth remembering for the next session
func (c *Config) Preferences() interfaces.Preferences {
	return interfaces.Preferences{
		ProjectPath: c.ProjectPath,
		Folder:      c.Folder,
		TargetURL:   c.TargetURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// flagKey maps a flag name such as "spy-interval" to its config key
func flagKey(name string) string {
	key := []byte(name)
	for i, c := range key {
		if c == '-' {
			key[i] = '_'
		}
	}
	return string(key)
}

func defaultStateDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".ghost_tester")
}
