package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/dmitrijs2005/lockbox/internal/common"
)

// FileStore keeps the whole key space in a single JSON document and rewrites
// it atomically on every mutation, so a crash never leaves a torn file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	m := map[string]string{}
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageCorrupt, err)
	}
	return m, nil
}

func (s *FileStore) write(m map[string]string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	m, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := m[key]
	return v, ok, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value string) error {
	m, err := s.read()
	if err != nil {
		return err
	}
	m[key] = value
	return s.write(m)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	m, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return s.write(m)
}

func (s *FileStore) Close() error { return nil }
