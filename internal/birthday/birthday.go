package birthday

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

// Clock abstracts time.Now() to allow deterministic testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// ParseDate parses a DD.MM.YYYY string strictly. Impossible calendar dates
// (31.02, month 13) and any other layout are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidBirthDate, s)
	}
	return t, nil
}

// IsBirthdayOn reports whether the person's birthday falls on ref: day and
// month must both match, the year is ignored. A Feb 29 birth date therefore
// only matches on a leap-year Feb 29. An unparseable birth date is logged and
// treated as a non-match.
func IsBirthdayOn(p entity.Person, ref time.Time) bool {
	born, err := ParseDate(p.BirthDate)
	if err != nil {
		slog.Warn("skipping person with invalid birth date",
			"person_id", p.ID,
			"name", p.Name,
			"birth_date", p.BirthDate,
		)
		return false
	}
	return born.Day() == ref.Day() && born.Month() == ref.Month()
}

// AgeOn returns the number of completed years between the person's birth date
// and ref. The age increments exactly on the anniversary day, never before.
func AgeOn(p entity.Person, ref time.Time) (int, error) {
	born, err := ParseDate(p.BirthDate)
	if err != nil {
		return 0, err
	}

	age := ref.Year() - born.Year()
	if ref.Month() < born.Month() ||
		(ref.Month() == born.Month() && ref.Day() < born.Day()) {
		age--
	}
	return age, nil
}

// Statistics aggregates the roster by birth month relative to a reference date.
type Statistics struct {
	Total           int
	ThisMonth       int
	NextMonth       int
	PerMonth        [12]int // index 0 is January
	AveragePerMonth string  // total/12 rounded to one decimal
}

// StatisticsOn computes roster statistics against ref. People with invalid
// birth dates count toward the total but not toward any month bucket.
func StatisticsOn(ref time.Time, people []entity.Person) Statistics {
	stats := Statistics{Total: len(people)}

	thisMonth := int(ref.Month())
	nextMonth := thisMonth%12 + 1

	for _, p := range people {
		born, err := ParseDate(p.BirthDate)
		if err != nil {
			slog.Warn("skipping person with invalid birth date in stats",
				"person_id", p.ID,
				"birth_date", p.BirthDate,
			)
			continue
		}

		month := int(born.Month())
		stats.PerMonth[month-1]++
		if month == thisMonth {
			stats.ThisMonth++
		}
		if month == nextMonth {
			stats.NextMonth++
		}
	}

	avg := math.Round(float64(stats.Total)/12*10) / 10
	stats.AveragePerMonth = fmt.Sprintf("%.1f", avg)

	return stats
}
