package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestFile_RoundTripSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	f := NewFile(path, zerolog.Nop())
	if err := f.Set("token", "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := f.Set("theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}

	// a fresh instance simulates a process restart
	reopened := NewFile(path, zerolog.Nop())
	if v, ok := reopened.Get("token"); !ok || v != "abc" {
		t.Fatalf("token did not survive restart: %q %v", v, ok)
	}
	if v, ok := reopened.Get("theme"); !ok || v != "dark" {
		t.Fatalf("theme did not survive restart: %q %v", v, ok)
	}
}

func TestFile_RemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	f := NewFile(path, zerolog.Nop())
	_ = f.Set("token", "abc")
	f.Remove("token")
	f.Remove("never-there")

	reopened := NewFile(path, zerolog.Nop())
	if _, ok := reopened.Get("token"); ok {
		t.Fatalf("removed key resurfaced after restart")
	}
}

func TestFile_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{broken json"), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	f := NewFile(path, zerolog.Nop())
	if _, ok := f.Get("token"); ok {
		t.Fatalf("corrupt file must read as absent, not error")
	}

	// and it recovers: new writes stick
	if err := f.Set("token", "fresh"); err != nil {
		t.Fatalf("set after corruption: %v", err)
	}
	if v, ok := f.Get("token"); !ok || v != "fresh" {
		t.Fatalf("store did not recover: %q %v", v, ok)
	}
}

func TestFile_MissingFileStartsEmpty(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nested", "dir", "state.json"), zerolog.Nop())
	if _, ok := f.Get("token"); ok {
		t.Fatalf("missing file must read as absent")
	}
	if err := f.Set("token", "v"); err != nil {
		t.Fatalf("set should create parent dirs: %v", err)
	}
}
