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
const EnvVar = "FLEXBOX_DEBUG"

var (
	logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// New creates a logger with timestamp formatting that writes to w and
// filters messages below level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          "flexbox",
	})
}

// Init directs debug logging to the file at path. An empty path
// disables logging.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	closeLocked()
	logger = New(io.Discard, log.FatalLevel)

	if path == "" {
		return nil
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

	logFile = f
	logger = New(f, log.DebugLevel)
	return nil
}

func closeLocked() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = New(io.Discard, log.FatalLevel)
	return closeLocked()
}

// Logger returns the shared debug logger, initializing it from FLEXBOX_DEBUG
// on first use.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		// A bad path leaves the discard logger in place.
		_ = initLocked(os.Getenv(EnvVar))
	}
	return logger
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}
