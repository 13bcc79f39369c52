package contract

import (
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/birthday"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

// RosterService defines the contract for roster queries and mutations.
type RosterService interface {
	// List returns every person in insertion order.
	List() []entity.Person

	// GetByID returns the person with the given id or domain.ErrPersonNotFound.
	GetByID(id int) (entity.Person, error)

	// Add validates the candidate, assigns an id, appends it and persists the
	// roster. Fails with domain.ErrEmptyName, domain.ErrInvalidBirthDate or
	// domain.ErrDuplicateUsername.
	Add(candidate entity.Person) (entity.Person, error)

	// RemoveByID removes the person with the given id and reports whether a
	// record was removed.
	RemoveByID(id int) bool

	// RemoveByName removes by case-insensitive exact name match, returning the
	// removed person or domain.ErrPersonNotFound.
	RemoveByName(name string) (entity.Person, error)

	// FindByName returns people whose name contains term, case-insensitively.
	FindByName(term string) []entity.Person

	// PeopleWithBirthdayOn returns people whose birthday falls on ref.
	PeopleWithBirthdayOn(ref time.Time) []entity.Person

	// Statistics aggregates the roster by birth month against ref.
	Statistics(ref time.Time) birthday.Statistics
}
