package service

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/birthday"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

// rosterService owns the roster. The in-memory slice is the source of truth
// for the running process; the storage backing is a best-effort mirror that is
// rewritten as a full snapshot after every successful mutation.
type rosterService struct {
	storage contract.PersonStorage
	log     *slog.Logger

	mu     sync.Mutex
	people []entity.Person
	lastID int
}

func newRoster(storage contract.PersonStorage, log *slog.Logger) *rosterService {
	s := &rosterService{
		storage: storage,
		log:     log,
	}

	people, err := storage.LoadAll()
	if err != nil {
		// A broken backing must not prevent startup; start empty and keep going.
		log.Error("failed to load roster, starting empty", "error", err)
		return s
	}

	s.people = people
	for _, p := range people {
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}
	log.Info("roster loaded", "count", len(people))
	return s
}

func (s *rosterService) List() []entity.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Person, len(s.people))
	copy(out, s.people)
	return out
}

func (s *rosterService) GetByID(id int) (entity.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.people {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Person{}, fmt.Errorf("%w: id %d", domain.ErrPersonNotFound, id)
}

func (s *rosterService) Add(candidate entity.Person) (entity.Person, error) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Username = strings.TrimPrefix(strings.TrimSpace(candidate.Username), "@")

	if candidate.Name == "" {
		return entity.Person{}, domain.ErrEmptyName
	}
	if _, err := birthday.ParseDate(candidate.BirthDate); err != nil {
		return entity.Person{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if candidate.Username != "" {
		for _, p := range s.people {
			if strings.EqualFold(p.Username, candidate.Username) {
				return entity.Person{}, fmt.Errorf("%w: @%s", domain.ErrDuplicateUsername, candidate.Username)
			}
		}
	}

	candidate.ID = s.nextID()
	candidate.AddedAt = time.Now().UTC()
	s.people = append(s.people, candidate)

	s.persist()

	s.log.Info("person added",
		"person_id", candidate.ID,
		"name", candidate.Name,
		"birth_date", candidate.BirthDate,
	)
	return candidate, nil
}

func (s *rosterService) RemoveByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.people {
		if p.ID == id {
			s.people = append(s.people[:i], s.people[i+1:]...)
			s.persist()
			s.log.Info("person removed", "person_id", id, "name", p.Name)
			return true
		}
	}
	return false
}

func (s *rosterService) RemoveByName(name string) (entity.Person, error) {
	s.mu.Lock()

	var found *entity.Person
	for i := range s.people {
		if strings.EqualFold(s.people[i].Name, strings.TrimSpace(name)) {
			p := s.people[i]
			found = &p
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return entity.Person{}, fmt.Errorf("%w: %q", domain.ErrPersonNotFound, name)
	}

	// The person may have been removed concurrently since the lookup; only
	// report success when this call actually removed the record.
	if !s.RemoveByID(found.ID) {
		return entity.Person{}, fmt.Errorf("%w: %q", domain.ErrPersonNotFound, name)
	}
	return *found, nil
}

func (s *rosterService) FindByName(term string) []entity.Person {
	term = strings.ToLower(strings.TrimSpace(term))

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Person
	for _, p := range s.people {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

func (s *rosterService) PeopleWithBirthdayOn(ref time.Time) []entity.Person {
	var out []entity.Person
	for _, p := range s.List() {
		if birthday.IsBirthdayOn(p, ref) {
			out = append(out, p)
		}
	}
	return out
}

func (s *rosterService) Statistics(ref time.Time) birthday.Statistics {
	return birthday.StatisticsOn(ref, s.List())
}

// nextID assigns ids monotonically: max id ever seen + 1, or 1 when empty.
// Ids are never reused after removal. Caller must hold the mutex.
func (s *rosterService) nextID() int {
	s.lastID++
	return s.lastID
}

// persist mirrors the roster to the backing. Failure is logged and swallowed:
// the in-memory mutation stands either way. Caller must hold the mutex.
func (s *rosterService) persist() {
	snapshot := make([]entity.Person, len(s.people))
	copy(snapshot, s.people)

	if err := s.storage.SaveAll(snapshot); err != nil {
		s.log.Error("failed to persist roster", "error", err, "count", len(snapshot))
	}
}
