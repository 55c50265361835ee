// Package config loads fexplorer settings from file, environment and flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	fxerrors "github.com/jakoblorz/go-fexplorer/internal/errors"
	"github.com/jakoblorz/go-fexplorer/internal/logging"
	"github.com/spf13/viper"
)

// Keys understood by Load
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyStartDir       = "start_dir"
	KeyPlain          = "ui.plain"
	KeyAltScreen      = "ui.alt_screen"
	KeyFollowSymlinks = "search.follow_symlinks"
	KeyIgnoreFile     = "search.ignore_file"

	EnvPrefix = "FEXPLORER"
)

// Config is the resolved configuration of one run
type Config struct {
	Log    logging.Config
	UI     UIConfig
	Search SearchConfig

	// StartDir is the initial cursor position; empty means the working directory
	StartDir string
}

type UIConfig struct {
	// Plain forces line-based prompts even when stdin is a terminal
	Plain     bool
	AltScreen bool
}

type SearchConfig struct {
	FollowSymlinks bool
	IgnoreFile     string
}

// SetDefaults registers default values and environment binding on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyStartDir, "")
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyAltScreen, false)
	v.SetDefault(KeyFollowSymlinks, false)
	v.SetDefault(KeyIgnoreFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile points v at cfgFile, or at $HOME/.config/fexplorer/config.yaml
// when cfgFile is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(filepath.Join(home, ".config", "fexplorer"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fxerrors.New("config", cfgFile, fxerrors.ErrInvalidArgument, err)
	}
	return nil
}

// Load validates the values held by v and returns them as a Config
func Load(v *viper.Viper) (*Config, error) {
	level := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel)))
	if _, err := logging.ParseLevel(level); err != nil {
		return nil, fxerrors.InvalidArgument("config", KeyLogLevel, err.Error())
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	switch format {
	case "", "text":
		format = "text"
	case "json":
	default:
		return nil, fxerrors.InvalidArgument("config", KeyLogFormat, "unknown log format "+format)
	}

	startDir := strings.TrimSpace(v.GetString(KeyStartDir))
	if startDir != "" && !strings.HasPrefix(startDir, "/") {
		return nil, fxerrors.InvalidArgument("config", KeyStartDir, "start directory must be absolute")
	}

	return &Config{
		Log: logging.Config{
			Level:  level,
			Format: format,
			Output: os.Stderr,
		},
		UI: UIConfig{
			Plain:     v.GetBool(KeyPlain),
			AltScreen: v.GetBool(KeyAltScreen),
		},
		Search: SearchConfig{
			FollowSymlinks: v.GetBool(KeyFollowSymlinks),
			IgnoreFile:     v.GetString(KeyIgnoreFile),
		},
		StartDir: startDir,
	}, nil
}
