package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// FileLogger appends timestamped messages and errors to a log file
type FileLogger struct {
	mu  sync.Mutex
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// NewFileLogger opens path for appending, creating it when missing
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open log file %s: %w", path, err)
	}
	return &FileLogger{w: f, c: f, now: time.Now}, nil
}

// NewLogger writes to w instead of a file
func NewLogger(w io.Writer) *FileLogger {
	return &FileLogger{w: w, now: time.Now}
}

// LogError writes the error followed by each wrapped cause on its own line
func (l *FileLogger) LogError(err error) {
	if err == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s: Error: %s\n", l.now().Format(time.RFC3339), err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(l.w, "\tcaused by (%T): %s\n", cause, cause)
	}
	fmt.Fprintln(l.w)
}

// Close releases the underlying file, if any
func (l *FileLogger) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}
