package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")
	fs := NewFileStore(path)

	if _, err := fs.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on empty store, got %v", err)
	}

	if err := fs.Set("a", "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := fs.Set("b", "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewFileStore(path)
	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, err := reopened.Get(key)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", key, err)
		}
		if got != want {
			t.Errorf("Get(%q): expected %q, got %q", key, want, got)
		}
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileStore(path)

	if _, err := fs.Get("a"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected parse error, got %v", err)
	}

	// Writing replaces the corrupt content
	if err := fs.Set("a", "5"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, err := fs.Get("a"); err != nil || got != "5" {
		t.Errorf("Expected \"5\", got %q (%v)", got, err)
	}
}

func TestHighScoreDefaults(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*MemoryStore)
		want  int
	}{
		{"missing key", func(*MemoryStore) {}, 0},
		{"valid", func(m *MemoryStore) { m.values[HighScoreKey] = "120" }, 120},
		{"malformed", func(m *MemoryStore) { m.values[HighScoreKey] = "lots" }, 0},
		{"negative", func(m *MemoryStore) { m.values[HighScoreKey] = "-40" }, 0},
		{"empty", func(m *MemoryStore) { m.values[HighScoreKey] = "" }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemoryStore()
			tt.setup(mem)
			hs := NewHighScore(mem, zerolog.Nop())

			if got := hs.Get(); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHighScoreUnreadableFile(t *testing.T) {
	// A directory where the file should be makes every read fail
	dir := t.TempDir()
	hs := NewHighScore(NewFileStore(dir), zerolog.Nop())

	if got := hs.Get(); got != 0 {
		t.Errorf("Expected 0 for unreadable storage, got %d", got)
	}
	hs.Set(10) // must not panic
}

func TestHighScoreSetEncodesText(t *testing.T) {
	mem := NewMemoryStore()
	hs := NewHighScore(mem, zerolog.Nop())

	hs.Set(340)

	raw, err := mem.Get(HighScoreKey)
	if err != nil {
		t.Fatalf("Expected value stored, got %v", err)
	}
	if raw != "340" {
		t.Errorf("Expected \"340\", got %q", raw)
	}
	if hs.Get() != 340 {
		t.Errorf("Expected 340 read back, got %d", hs.Get())
	}
}

func TestHighScoreFailedWriteIsDropped(t *testing.T) {
	mem := NewMemoryStore()
	mem.FailWith = errors.New("disk full")
	hs := NewHighScore(mem, zerolog.Nop())

	hs.Set(99)

	if mem.Writes() != 1 {
		t.Errorf("Expected one write attempt, got %d", mem.Writes())
	}
	if hs.Get() != 0 {
		t.Errorf("Expected nothing persisted, got %d", hs.Get())
	}
}
