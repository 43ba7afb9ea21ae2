// Package debug writes category-tagged trace lines to a log file. Logging is
// off until Enable is called; Log is then safe from any goroutine, including
// MIDI driver callbacks.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type sink struct {
	mu     sync.Mutex
	w      io.Writer
	file   *os.File
	counts map[string]int
}

var std = &sink{counts: make(map[string]int)}

// DefaultPath returns ~/.config/go-launchpad/debug.log
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "go-launchpad", "debug.log")
}

// Enable truncates path and logs to it. An empty path means DefaultPath.
// Enabling twice keeps the first destination.
func Enable(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	std.mu.Lock()
	defer std.mu.Unlock()
	if std.w != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	std.file, std.w = f, f
	std.line("debug", "=== Debug logging started ===")
	return nil
}

// EnableWriter logs to w instead of a file. A file opened by Enable is
// closed.
func EnableWriter(w io.Writer) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.file != nil {
		std.file.Close()
		std.file = nil
	}
	std.w = w
}

// Disable stops logging, closes the file and resets LogEvery counters.
func Disable() {
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.file != nil {
		std.file.Close()
		std.file = nil
	}
	std.w = nil
	std.counts = make(map[string]int)
}

// Log writes one line under category.
func Log(category, format string, args ...any) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.w == nil {
		return
	}
	std.line(category, fmt.Sprintf(format, args...))
}

// LogEvery logs only every nth call with the same category and format.
// Use it on per-message paths.
func LogEvery(n int, category, format string, args ...any) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if std.w == nil || n <= 0 {
		return
	}
	key := category + format
	std.counts[key]++
	if count := std.counts[key]; count%n == 0 {
		std.line(category, fmt.Sprintf(format, args...)+fmt.Sprintf(" (every %d, count=%d)", n, count))
	}
}

// line expects mu to be held.
func (s *sink) line(category, msg string) {
	fmt.Fprintf(s.w, "[%s] %-10s %s\n", time.Now().Format("15:04:05.000"), category, msg)
	if s.file != nil {
		s.file.Sync()
	}
}
