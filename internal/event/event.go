// Package event is a small structured-logging facility in the style of
// golang.org/x/tools/internal/event: a Logger writes timestamped
// messages with trailing key=value labels, rather than a freeform
// printf string, so that polonius-facts' batch-processing logs stay
// greppable across many concurrently-processed files.
package event

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Label is one key=value pair attached to a logged event.
type Label struct {
	Key   string
	Value any
}

// Logger writes events to an underlying io.Writer. The zero Logger
// discards everything it is given, so components can hold one
// unconditionally and only wire a real Writer at the top of main.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
	// now is overridable in tests; defaults to time.Now.
	now func() time.Time
}

// NewLogger returns a Logger that writes to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w, now: time.Now}
}

// Log writes msg followed by each label as " key=value", mirroring the
// one-event-per-line format internal/event/export.Printer uses.
func (l *Logger) Log(msg string, labels ...Label) {
	if l == nil || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now
	if l.now != nil {
		now = l.now
	}
	fmt.Fprintf(l.w, "%s %s", now().Format("2006/01/02 15:04:05"), msg)
	for _, lbl := range labels {
		fmt.Fprintf(l.w, " %s=%v", lbl.Key, lbl.Value)
	}
	fmt.Fprintln(l.w)
}

// Errorf logs the message "error" with the formatted text under the
// "detail" key.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log("error", Label{Key: "detail", Value: fmt.Sprintf(format, args...)})
}
