package terrain

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSpecFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newTestWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWatcherCoalescesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terrain.yaml")
	writeSpecFile(t, path, sampleSpec)

	w := newTestWatcher(t, dir)

	// Editors typically truncate and rewrite; both writes land inside one
	// debounce window and must produce a single reload.
	writeSpecFile(t, path, sampleSpec)
	writeSpecFile(t, path, sampleSpec)

	var r Reload
	select {
	case r = <-w.Reloads:
	case <-time.After(2 * time.Second):
		t.Fatalf("no reload received")
	}
	if r.Err != nil {
		t.Fatalf("reload: %v", r.Err)
	}
	if r.Path != path {
		t.Fatalf("reload path = %s, want %s", r.Path, path)
	}
	if r.Set == nil || len(r.Set.TileIDs()) != 2 {
		t.Fatalf("reload did not carry the rebuilt set: %+v", r)
	}

	select {
	case extra := <-w.Reloads:
		t.Fatalf("burst produced a second reload: %+v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	writeSpecFile(t, filepath.Join(dir, "notes.txt"), "not a terrain set")

	select {
	case r := <-w.Reloads:
		t.Fatalf("unexpected reload for non-spec file: %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsBrokenSpec(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	writeSpecFile(t, filepath.Join(dir, "broken.yaml"), "mode: hex\nterrains: [a]\n")

	select {
	case r := <-w.Reloads:
		if r.Err == nil {
			t.Fatalf("expected a load error, got %+v", r)
		}
		if r.Set != nil {
			t.Fatalf("broken spec must not carry a set: %+v", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no reload received")
	}
}
