package persistence

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileProvider keeps one JSON file per key under a base directory.
// It is the default backend and mirrors the localStorage persistence
// the original client used.
type FileProvider struct {
	dir string
}

func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

func (p *FileProvider) path(key string) string {
	return filepath.Join(p.dir, key+".json")
}

func (p *FileProvider) Load(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(p.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (p *FileProvider) Save(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-save never leaves a truncated
	// snapshot behind.
	tmp := p.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p.path(key))
}
