package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// Settings is the planner configuration read from `.planner.yaml`, the
// environment (PLANNER_*) and defaults.
type Settings struct {
	Path      string
	LogFile   string
	LogLevel  string
	LogFormat string
	Language  string
}

func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig walks the config search path (PLANNER_CONFIG_PATH, the working
// directory, then $HOME) for a .planner file.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.planner.db")
	v.SetDefault("log.file", "~/.planner/planner.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("language", "")
	v.SetConfigName(".planner") // .yaml is implicit
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log.file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}
	return &Settings{
		Path:      path,
		LogFile:   logFile,
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
		Language:  v.GetString("language"),
	}, nil
}
