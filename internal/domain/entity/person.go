package entity

import "time"

// Person is a single roster entry. BirthDate keeps the canonical DD.MM.YYYY
// string; only day and month matter for recurrence, the year is used for age.
type Person struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	BirthDate string    `json:"birthDate" db:"birth_date"`
	Username  string    `json:"username,omitempty" db:"username"`
	AddedAt   time.Time `json:"addedAt,omitempty" db:"added_at"`
}

// Mention returns the string used to address the person in chat:
// the @username when one is set, the display name otherwise.
func (p Person) Mention() string {
	if p.Username != "" {
		return "@" + p.Username
	}
	return p.Name
}
