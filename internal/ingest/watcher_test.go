package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}, nil); err == nil {
		t.Fatal("expected an error when no roots are given")
	}
}

func TestWatcherEmitsDroppedFile(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 5 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	want := filepath.Join(root, "statement.pdf")
	if err := os.WriteFile(want, []byte("bytes"), 0o600); err != nil {
		t.Fatal(err)
	}
	// wrong extension, must never surface
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("skip"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-evCh:
		if got != want {
			t.Fatalf("event = %q, want %q", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the dropped pdf")
	}

	// a second flush may repeat the pdf, but the txt must never surface
	select {
	case got := <-evCh:
		if got != want {
			t.Fatalf("unexpected event %q", got)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

// A burst of drops used to race the debounce flush against the event loop
// over the shared pending map and abort the process.
func TestWatcherSurvivesWriteBurst(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	const files = 200
	go func() {
		for i := 0; i < files; i++ {
			name := filepath.Join(root, fmt.Sprintf("doc-%03d.pdf", i))
			if err := os.WriteFile(name, []byte("x"), 0o600); err != nil {
				return
			}
		}
	}()

	seen := map[string]struct{}{}
	deadline := time.After(10 * time.Second)
	for len(seen) < files {
		select {
		case p, ok := <-evCh:
			if !ok {
				t.Fatalf("event channel closed after %d of %d files", len(seen), files)
			}
			seen[p] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out with %d of %d files observed", len(seen), files)
		}
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-evCh:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel still open after cancel")
		}
	}
}
