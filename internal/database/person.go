package database

import (
	"fmt"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

type personStorage struct {
	db *DB
}

// NewPersonStorage returns the SQLite implementation of the roster backing.
// The roster is persisted as a full snapshot: SaveAll replaces the table
// contents in one transaction, keeping the callers' ids and order.
func NewPersonStorage(db *DB) contract.PersonStorage {
	return &personStorage{db: db}
}

func (s *personStorage) LoadAll() ([]entity.Person, error) {
	query := `
		SELECT id, name, birth_date, username, added_at
		FROM persons
		ORDER BY position ASC
	`

	rows, err := s.db.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	defer rows.Close()

	var people []entity.Person
	for rows.Next() {
		var p entity.Person
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.BirthDate,
			&p.Username,
			&p.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return people, nil
}

func (s *personStorage) SaveAll(people []entity.Person) error {
	tx, err := s.db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM persons`); err != nil {
		return fmt.Errorf("failed to clear persons: %w", err)
	}

	insert := `
		INSERT INTO persons (id, position, name, birth_date, username, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, p := range people {
		if _, err := tx.Exec(insert, p.ID, i, p.Name, p.BirthDate, p.Username, p.AddedAt); err != nil {
			return fmt.Errorf("failed to insert person %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
