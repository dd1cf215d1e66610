// Package logging holds the process-wide debug logger.
//
// Logging is off unless Enable is called: the interactive host owns the
// terminal, so nothing may be written to stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"charm.land/log/v2"
	"github.com/adrg/xdg"
)

const logRelPath = "tuichrome/debug.log"

var (
	mu     sync.Mutex
	logger = newLogger(io.Discard, log.InfoLevel)
	closer io.Closer
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "tuichrome",
		Level:           level,
	})
}

// Path returns where the debug log is written.
func Path() (string, error) {
	return xdg.StateFile(logRelPath)
}

// Enable opens the debug log under the XDG state directory and routes every
// log call there at debug level. It returns the file path.
func Enable() (string, error) {
	path, err := Path()
	if err != nil {
		return "", fmt.Errorf("failed to resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - path comes from the XDG state dir
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}
	SetOutput(f, log.DebugLevel)

	mu.Lock()
	closer = f
	mu.Unlock()
	return path, nil
}

// SetOutput routes logs to w at the given level.
func SetOutput(w io.Writer, level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, level)
}

// Close flushes and closes the debug log if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(io.Discard, log.InfoLevel)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// Logger returns the current logger.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs at debug level.
func Debug(msg string, keyvals ...any) { Logger().Debug(msg, keyvals...) }

// Info logs at info level.
func Info(msg string, keyvals ...any) { Logger().Info(msg, keyvals...) }

// Warn logs at warn level.
func Warn(msg string, keyvals ...any) { Logger().Warn(msg, keyvals...) }

// Error logs at error level.
func Error(msg string, keyvals ...any) { Logger().Error(msg, keyvals...) }
