// Package file persists the roster as a single JSON snapshot on disk.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

type Storage struct {
	path string
}

// New creates a storage writing to path, creating parent directories if needed.
func New(path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("empty storage path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}
	return &Storage{path: path}, nil
}

// LoadAll reads the snapshot. A missing file is a first run and loads empty.
func (s *Storage) LoadAll() ([]entity.Person, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var people []entity.Person
	if err := json.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("failed to decode roster file: %w", err)
	}
	return people, nil
}

// SaveAll overwrites the snapshot. The write goes through a temp file and a
// rename so a crash mid-write cannot corrupt the previous snapshot.
func (s *Storage) SaveAll(people []entity.Person) error {
	if people == nil {
		people = []entity.Person{}
	}

	data, err := json.MarshalIndent(people, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace roster file: %w", err)
	}
	return nil
}
