package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes timestamped lines to an io.Writer. The zero value discards.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	now    func() time.Time
}

var std = &Logger{}

// SetOutput points the logger at w. A nil w disables logging. If w is also
// an io.Closer the logger owns it and closes it on Close.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeLocked()
	l.out = w
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}
}

// Printf writes a line if the logger has an output.
func (l *Logger) Printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.out == nil {
		return
	}
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	_, _ = fmt.Fprintf(l.out, "[%s] %s\n", now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Enabled reports whether the logger has an output.
func (l *Logger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out != nil
}

// Close releases the output file, if the logger owns one.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeLocked()
	l.out = nil
}

func (l *Logger) closeLocked() {
	if l.closer != nil {
		_ = l.closer.Close()
		l.closer = nil
	}
}

// Enable turns on debug logging to the file at path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	std.SetOutput(f)

	Log("Debug logging enabled")
	return nil
}

// Close closes the debug log file.
func Close() {
	std.Close()
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	return std.Enabled()
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...any) {
	std.Printf(format, args...)
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("operation name")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)

	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}
