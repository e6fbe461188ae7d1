// Package ptlog points logrus at a file, because the terminal belongs to the UI.
package ptlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var osMkdirAll = os.MkdirAll
var osOpenFile = os.OpenFile

// Setup configures logger to append to logFile at the given level.
// An empty logFile discards all output.
// The returned func closes the log file.
func Setup(logger *logrus.Logger, logFile, level string) (func(), error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if logFile == "" {
		logger.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err = osMkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(io.Discard)
		_ = f.Close()
	}, nil
}
