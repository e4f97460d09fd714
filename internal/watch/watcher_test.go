package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func startWatch(t *testing.T, dir string, calls *atomic.Int32) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.Cleanup(func() {
		cancel()
		<-done
	})

	go func() {
		defer close(done)
		_ = Watch(ctx, Options{Dir: dir, Extension: ".html", Debounce: 50 * time.Millisecond}, testLogger(), func() error {
			calls.Add(1)
			return nil
		})
	}()
	time.Sleep(100 * time.Millisecond)
}

func TestWatch_NewDeckTriggersRebuild(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	startWatch(t, dir, &calls)

	_ = os.WriteFile(filepath.Join(dir, "[Math]Algebra.html"), []byte("<html>"), 0o644)

	eventually(t, 5*time.Second, 25*time.Millisecond, func() bool {
		return calls.Load() > 0
	}, "rebuild not triggered by new deck")
}

func TestWatch_BurstIsDebounced(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	startWatch(t, dir, &calls)

	for _, n := range []string{"a.html", "b.html", "c.html"} {
		_ = os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644)
	}

	eventually(t, 5*time.Second, 25*time.Millisecond, func() bool {
		return calls.Load() > 0
	}, "rebuild not triggered")
	time.Sleep(200 * time.Millisecond)
	if n := calls.Load(); n > 2 {
		t.Errorf("rebuild called %d times for one burst", n)
	}
}

func TestWatch_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32
	startWatch(t, dir, &calls)

	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	time.Sleep(300 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("rebuild called %d times for unrelated file", n)
	}
}

func TestWatch_MissingDir(t *testing.T) {
	err := Watch(context.Background(), Options{Dir: filepath.Join(t.TempDir(), "absent"), Extension: ".html"}, testLogger(), func() error { return nil })
	if err == nil {
		t.Fatal("expected error watching a missing directory")
	}
}

func TestRelevant(t *testing.T) {
	cases := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/d/a.html", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/d/a.html", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/d/a.html", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/d/a.txt", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		if got := relevant(c.ev, ".html"); got != c.want {
			t.Errorf("relevant(%v) = %v, want %v", c.ev, got, c.want)
		}
	}
}
