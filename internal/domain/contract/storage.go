package contract

import "github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"

// PersonStorage is the durable backing for the roster. Implementations persist
// full snapshots with overwrite semantics; LoadAll returns the roster in
// insertion order, or empty on first run.
type PersonStorage interface {
	LoadAll() ([]entity.Person, error)
	SaveAll(people []entity.Person) error
}
