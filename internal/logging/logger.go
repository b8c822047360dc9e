// Package logging provides the structured logger shared by the CLI and
// the wizard core.
package logging

import (
	"encoding/json"
	"io"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger defines the structured logging interface.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
	Debug(msg string, fields map[string]any)
}

// JSONLogger writes one JSON object per line to an io.Writer.
type JSONLogger struct {
	mu      *sync.Mutex
	w       io.Writer
	verbose bool
	base    map[string]any
}

// NewJSONLogger creates a JSONLogger writing to w. Debug entries are only
// emitted when verbose is true.
func NewJSONLogger(w io.Writer, verbose bool) *JSONLogger {
	return &JSONLogger{mu: &sync.Mutex{}, w: w, verbose: verbose}
}

// With returns a logger that adds fields to every entry. It shares the
// writer and its lock with l.
func (l *JSONLogger) With(fields map[string]any) *JSONLogger {
	base := make(map[string]any, len(l.base)+len(fields))
	maps.Copy(base, l.base)
	maps.Copy(base, fields)
	return &JSONLogger{mu: l.mu, w: l.w, verbose: l.verbose, base: base}
}

// ForSession tags every entry with a fresh session id.
func (l *JSONLogger) ForSession() *JSONLogger {
	return l.With(map[string]any{"session": uuid.NewString()})
}

func (l *JSONLogger) Info(msg string, fields map[string]any)  { l.log("info", msg, fields) }
func (l *JSONLogger) Warn(msg string, fields map[string]any)  { l.log("warn", msg, fields) }
func (l *JSONLogger) Error(msg string, fields map[string]any) { l.log("error", msg, fields) }

func (l *JSONLogger) Debug(msg string, fields map[string]any) {
	if !l.verbose {
		return
	}
	l.log("debug", msg, fields)
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	entry := make(map[string]any, len(l.base)+len(fields)+3)
	maps.Copy(entry, l.base)
	maps.Copy(entry, fields)
	entry["time"] = time.Now().UTC().Format(time.RFC3339)
	entry["level"] = level
	entry["msg"] = msg

	l.mu.Lock()
	defer l.mu.Unlock()
	data, _ := json.Marshal(entry)
	data = append(data, '\n')
	l.w.Write(data) //nolint:errcheck
}

// Nop discards everything.
type Nop struct{}

func (Nop) Info(string, map[string]any)  {}
func (Nop) Warn(string, map[string]any)  {}
func (Nop) Error(string, map[string]any) {}
func (Nop) Debug(string, map[string]any) {}
