package ptsettings

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/filetug/paneltug/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

const (
	settingsFileName = "settings.yaml"
	logFileName      = "paneltug.log"
)

// Settings are user preferences read from settings.yaml.
type Settings struct {
	// LogFile is where logs go. An empty value disables logging.
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
	// Colorize enables file name colors in the panes.
	Colorize     bool  `yaml:"colorize"`
	HeaderHeight int   `yaml:"header_height"`
	Proportions  []int `yaml:"proportions"`
}

func Default() Settings {
	s := Settings{
		LogLevel:     logrus.InfoLevel.String(),
		Colorize:     true,
		HeaderHeight: 5,
		Proportions:  []int{33, 34, 33},
	}
	if userDir, err := GetUserDir(); err == nil {
		s.LogFile = filepath.Join(userDir, logFileName)
	}
	return s
}

// DefaultPath is the settings file location inside the user dir.
func DefaultPath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, settingsFileName), nil
}

var readYAML = fsutils.ReadYAMLFile

// Load reads settings on top of the defaults.
// An empty filePath means the default location, which may be absent.
// An explicitly given file must exist.
func Load(filePath string) (Settings, error) {
	s := Default()
	required := filePath != ""
	if !required {
		var err error
		if filePath, err = DefaultPath(); err != nil {
			return s, nil
		}
	}
	if err := readYAML(fsutils.ExpandHome(filePath), required, &s); err != nil {
		return s, fmt.Errorf("failed to read settings from %s: %w", filePath, err)
	}
	s.LogFile = fsutils.ExpandHome(s.LogFile)
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings in %s: %w", filePath, err)
	}
	return s, nil
}

var (
	errHeaderHeight = errors.New("header_height must be positive")
	errProportions  = errors.New("proportions must be 3 positive numbers")
)

func (s Settings) Validate() error {
	if s.HeaderHeight <= 0 {
		return errHeaderHeight
	}
	if len(s.Proportions) != 3 {
		return errProportions
	}
	for _, p := range s.Proportions {
		if p <= 0 {
			return errProportions
		}
	}
	if _, err := logrus.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
