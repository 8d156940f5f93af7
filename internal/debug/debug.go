package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "GRID_DEBUG"

var (
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
)

// Init opens the debug log at path, appending to it. If path is empty, uses
// "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
	})
	return nil
}

// FromEnv initializes the debug log from GRID_DEBUG when it is set and
// returns the resulting logger.
func FromEnv() (*log.Logger, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Logger(), nil
	}
	if err := Init(path); err != nil {
		return nil, err
	}
	return Logger(), nil
}

// Logger returns the debug logger, or a logger that discards everything
// when the debug log is not open.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		logger = nil
		return err
	}
	return nil
}

// Log writes a formatted debug message when the debug log is open.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}
