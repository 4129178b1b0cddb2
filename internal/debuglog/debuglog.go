// Package debuglog writes JSON-lines diagnostics to a file when --debug is set.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "microdiary-debug.log"

// Logger logs command, validation and storage events.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
	now     func() time.Time
}

var global = &Logger{}

// Init enables the process-wide logger, writing to path.
func Init(enabled bool, path string) error {
	if !enabled {
		global = &Logger{}
		return nil
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	global = New(f)
	global.closer = f
	global.Log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// Close flushes the end marker and closes the log file.
func Close() {
	if global == nil || !global.enabled {
		return
	}
	global.Log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if global.closer != nil {
		_ = global.closer.Close()
	}
	global = &Logger{}
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w, enabled: true, now: time.Now}
}

// Default returns the process-wide logger. It is a no-op unless Init enabled it.
func Default() *Logger {
	return global
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Log writes a structured log entry.
func (l *Logger) Log(event string, data map[string]any) {
	if !l.Enabled() || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    l.now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// Command logs the start of a CLI command.
func Command(name string, args []string) {
	global.Log("COMMAND", map[string]any{
		"name": name,
		"args": args,
	})
}

// Validation logs a validation verdict with the failing field ids.
func Validation(context string, valid bool, fields []string) {
	global.Log("VALIDATION", map[string]any{
		"context": context,
		"valid":   valid,
		"fields":  fields,
	})
}

// Store logs a storage write.
func Store(op, id string) {
	global.Log("STORE", map[string]any{
		"op": op,
		"id": id,
	})
}

// Key logs a key press in the entry form.
func Key(key string) {
	global.Log("KEY_PRESS", map[string]any{
		"key": key,
	})
}

// Error logs an error.
func Error(context string, err error) {
	if err == nil {
		return
	}
	global.Log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
