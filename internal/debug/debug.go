package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "GUI_DEBUG"

var (
	out     io.Writer
	closer  io.Closer
	mu      sync.Mutex
	tried   bool
	nowFunc = time.Now
)

// Init opens path for appending and routes Log output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	tried = true
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
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

	out, closer = f, f
	return nil
}

// SetOutput routes Log output to w. A nil w disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	tried = true
	out, closer = w, nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if closer != nil {
		err = closer.Close()
	}
	out, closer = nil, nil
	return err
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	lazyInitLocked()
	return out != nil
}

func lazyInitLocked() {
	if tried {
		return
	}
	tried = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	lazyInitLocked()
	if out == nil {
		return
	}

	timestamp := nowFunc().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}
