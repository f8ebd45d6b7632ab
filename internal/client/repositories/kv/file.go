package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dmitrijs2005/devprofiler/internal/filex"
)

// FileStore keeps each key in <dir>/<key>.json. Writes go through a temp
// file and rename.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileStore{dir: abs}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := filex.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return b, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(key, p, value)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(key, p)
}

func (s *FileStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := filex.ReadFile(p)
	if err != nil {
		return fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}

	next, err := fn(cur)
	if err != nil {
		return err
	}

	if next == nil {
		return s.remove(key, p)
	}
	return s.write(key, p, next)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) write(key, p string, value []byte) error {
	if err := filex.WriteFileAtomic(p, value, 0o600); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *FileStore) remove(key, p string) error {
	if err := filex.RemoveIfExists(p); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}
