package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Interval: 10 * time.Millisecond,
		Debounce: 20 * time.Millisecond,
	})

	changes := make(chan Change, 8)
	w.OnChange(func(c Change) { changes <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Let the first scan prime timestamps, then touch the file.
	time.Sleep(50 * time.Millisecond)
	now := time.Now().Add(time.Second)
	if err := os.Chtimes(path, now, now); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if c.Path != path || c.Type != ChangeGo {
			t.Errorf("got %+v", c)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("change was not reported")
	}
}

func TestWatcherIgnoresPatterns(t *testing.T) {
	w := NewWatcher(WatcherConfig{})

	tests := []struct {
		base string
		want bool
	}{
		{"app_test.go", true},
		{".git", true},
		{"node_modules", true},
		{"editor.swp", true},
		{"main.go", false},
		{"style.css", false},
	}
	for _, tt := range tests {
		if got := w.ignored(tt.base); got != tt.want {
			t.Errorf("ignored(%q) = %v, want %v", tt.base, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"app/main.go", ChangeGo},
		{"static/style.CSS", ChangeCSS},
		{"static/logo.svg", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDedupe(t *testing.T) {
	in := []Change{
		{Path: "a.go"},
		{Path: "b.go"},
		{Path: "a.go"},
	}
	out := dedupe(in)
	if len(out) != 2 || out[0].Path != "a.go" || out[1].Path != "b.go" {
		t.Errorf("got %+v", out)
	}
}
