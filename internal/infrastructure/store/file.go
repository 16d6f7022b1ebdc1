package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// File is a Store backed by a single JSON file, the desktop analogue of
// browser local storage. The whole map is rewritten on every Set/Remove;
// the three keys this layer persists make that cheap.
//
// A corrupt or unreadable file is treated as empty: rehydration must fall
// back to the unauthenticated state, never crash on a bad value.
type File struct {
	path string
	log  zerolog.Logger

	mu     sync.Mutex
	values map[string]string
}

func NewFile(path string, log zerolog.Logger) *File {
	f := &File{path: path, log: log, values: make(map[string]string)}
	f.load()
	return f
}

func (f *File) load() {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Warn().Err(err).Str("path", f.path).Msg("state file unreadable, starting empty")
		}
		return
	}
	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		f.log.Warn().Err(err).Str("path", f.path).Msg("state file corrupt, starting empty")
		return
	}
	f.values = values
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.flush()
}

func (f *File) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return
	}
	delete(f.values, key)
	if err := f.flush(); err != nil {
		f.log.Error().Err(err).Str("key", key).Msg("state file write failed on remove")
	}
}

// flush writes via a temp file and rename so a crash mid-write cannot
// leave a half-written state file behind.
func (f *File) flush() error {
	raw, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
