package dev

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeType classifies a detected file change.
type ChangeType int

const (
	ChangeGo ChangeType = iota
	ChangeCSS
	ChangeAsset
)

// Change is one detected file change.
type Change struct {
	Path string
	Type ChangeType
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the directories to watch recursively.
	Paths []string

	// Ignore patterns to skip. Matched against the base name.
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration

	// Debounce is the quiet period before changes are reported.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	"*_test.go",
	".git",
	"node_modules",
	"dist",
	"tmp",
	".0x1",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls directories for modified files. Polling keeps the dev
// server dependency-free on every platform; the interval is coarse
// enough not to matter for a human edit loop.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)

	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 250 * time.Millisecond
	}
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. It blocks until ctx is cancelled or Stop is
// called. The first scan primes timestamps without reporting changes.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.scan(false)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	var pending []Change
	var quiet *time.Timer
	quietCh := make(<-chan time.Time)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			changes := w.scan(true)
			if len(changes) > 0 {
				pending = append(pending, changes...)
				if quiet != nil {
					quiet.Stop()
				}
				quiet = time.NewTimer(w.config.Debounce)
				quietCh = quiet.C
			}
		case <-quietCh:
			w.mu.Lock()
			fn := w.onChange
			w.mu.Unlock()
			if fn != nil {
				for _, c := range dedupe(pending) {
					fn(c)
				}
			}
			pending = nil
			quietCh = make(<-chan time.Time)
		}
	}
}

// Stop ends watching.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// scan walks the watched paths and returns files whose mtime moved.
func (w *Watcher) scan(report bool) []Change {
	var changes []Change

	for _, root := range w.config.Paths {
		filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			base := filepath.Base(path)
			if w.ignored(base) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() {
				return nil
			}

			w.mu.Lock()
			prev, seen := w.timestamps[path]
			w.timestamps[path] = info.ModTime()
			w.mu.Unlock()

			if report && (!seen || info.ModTime().After(prev)) {
				changes = append(changes, Change{Path: path, Type: classify(path)})
			}
			return nil
		})
	}
	return changes
}

// ignored matches a base name against the ignore patterns.
func (w *Watcher) ignored(base string) bool {
	for _, pattern := range w.config.Ignore {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if pattern == base {
			return true
		}
	}
	return false
}

// classify maps a path to a change type by extension.
func classify(path string) ChangeType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return ChangeGo
	case ".css":
		return ChangeCSS
	default:
		return ChangeAsset
	}
}

// dedupe collapses repeated changes to the same path, keeping order.
func dedupe(changes []Change) []Change {
	seen := make(map[string]bool, len(changes))
	out := changes[:0]
	for _, c := range changes {
		if seen[c.Path] {
			continue
		}
		seen[c.Path] = true
		out = append(out, c)
	}
	return out
}
