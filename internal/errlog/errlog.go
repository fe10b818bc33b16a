// Package errlog is the append-only sink for recoverable per-row import
// failures. Each entry is one line:
//
//	[2023-09-30 14:05:11] <message>
//
// The sink is deliberately separate from the structured run log: the file
// sits next to the report files and accumulates across runs, so an operator
// can scan what was skipped without digging through job output.
package errlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// timestampLayout is the wall-clock prefix on every entry, local time.
const timestampLayout = "2006-01-02 15:04:05"

// Log writes timestamped entries to an underlying writer.
// Writes are best-effort: a failing sink never aborts the run.
type Log struct {
	w   io.Writer
	c   io.Closer
	now func() time.Time
}

// Open creates or opens the log file at path for appending.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open error log: %w", err)
	}
	return &Log{w: f, c: f, now: time.Now}, nil
}

// New returns a Log writing to w. Used by tests and by callers that
// already hold a sink.
func New(w io.Writer) *Log {
	return &Log{w: w, now: time.Now}
}

// Logf appends one formatted entry.
func (l *Log) Logf(format string, args ...any) {
	ts := l.now().Format(timestampLayout)
	fmt.Fprintf(l.w, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}

// Close closes the underlying file, if the Log owns one.
func (l *Log) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}
