// Package memory is the no-op storage driver: the roster lives only in the
// process and every restart begins empty.
package memory

import "github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"

type Storage struct{}

func New() *Storage {
	return &Storage{}
}

func (*Storage) LoadAll() ([]entity.Person, error) {
	return nil, nil
}

func (*Storage) SaveAll([]entity.Person) error {
	return nil
}
