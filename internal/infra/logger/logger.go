package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileName is the log file created inside Config.Dir.
const FileName = "pnladl.log"

type Config struct {
	// Dir holds the log file, usually <workspace>/<paths.logs_dir>.
	Dir   string
	Debug bool
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup points the package logger at Dir/pnladl.log. On failure the logger
// keeps discarding and the error is returned.
func Setup(cfg Config) (func() error, error) {
	if cfg.Dir == "" {
		return nil, errors.New("logger: empty log dir")
	}
	dir := filepath.Clean(cfg.Dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: utcTime}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	mu.Lock()
	if logFile != nil {
		_ = logFile.Close()
	}
	global = slog.New(slog.NewJSONHandler(f, opts))
	logFile = f
	logPath = path
	mu.Unlock()

	L().Info("logger.initialized", "path", path, "debug", cfg.Debug)
	return Close, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

// Close flushes the log file and goes back to discarding.
func Close() error {
	mu.Lock()
	f := logFile
	mu.Unlock()

	var err error
	if f != nil {
		err = f.Close()
	}
	reset()
	return err
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the active log file, or "" when logs are discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
