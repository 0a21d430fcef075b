package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTuningFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// lastUpdate drains w.Updates until it stays quiet for quiet, returning the
// newest tuning seen, or nil.
func lastUpdate(w *TuningWatcher, quiet time.Duration) *Tuning {
	var last *Tuning
	for {
		select {
		case tn := <-w.Updates:
			last = tn
		case <-time.After(quiet):
			return last
		}
	}
}

func startWatcher(t *testing.T, initial string) (*TuningWatcher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeTuningFile(t, path, initial)

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func TestWatchTuning(t *testing.T) {
	t.Run("newest_save_in_a_burst_wins", func(t *testing.T) {
		w, path := startWatcher(t, "speed: 1\n")

		writeTuningFile(t, path, "speed: 2\n")
		time.Sleep(30 * time.Millisecond)
		writeTuningFile(t, path, "speed: 3\n")

		got := lastUpdate(w, time.Second)
		if got == nil || got.Speed == nil {
			t.Fatal("no reload delivered")
		}
		if *got.Speed != 3 {
			t.Fatalf("delivered speed %v, want 3", *got.Speed)
		}
	})

	t.Run("separate_saves_each_reload", func(t *testing.T) {
		w, path := startWatcher(t, "speed: 1\n")

		writeTuningFile(t, path, "jumpForce: 4\n")
		first := lastUpdate(w, 500*time.Millisecond)
		if first == nil || first.JumpForce == nil || *first.JumpForce != 4 {
			t.Fatalf("first reload = %+v, want jumpForce 4", first)
		}

		writeTuningFile(t, path, "jumpForce: 5\n")
		second := lastUpdate(w, 500*time.Millisecond)
		if second == nil || second.JumpForce == nil || *second.JumpForce != 5 {
			t.Fatalf("second reload = %+v, want jumpForce 5", second)
		}
	})

	t.Run("invalid_save_keeps_previous_values", func(t *testing.T) {
		w, path := startWatcher(t, "speed: 1\n")

		writeTuningFile(t, path, "speed: -2\n")
		if got := lastUpdate(w, 500*time.Millisecond); got != nil {
			t.Fatalf("invalid file delivered %+v", got)
		}
	})

	t.Run("other_files_are_ignored", func(t *testing.T) {
		w, path := startWatcher(t, "speed: 1\n")

		writeTuningFile(t, filepath.Join(filepath.Dir(path), "other.yaml"), "speed: 9\n")
		if got := lastUpdate(w, 500*time.Millisecond); got != nil {
			t.Fatalf("unrelated file delivered %+v", got)
		}
	})
}
