package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/birthday"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
)

// SchedulerConfig holds the daily trigger settings.
type SchedulerConfig struct {
	NotifyTime string // HH:MM, local to Location
	Location   *time.Location
	ChatID     int64
	ImageURL   string // optional; when set the announcement is sent as a photo caption
}

// scheduler fires once per calendar day at a fixed local time and announces
// the day's birthdays. Fires never overlap: a fire arriving while the previous
// run is still sending is skipped, since message sends are not idempotent.
type scheduler struct {
	roster   contract.RosterService
	telegram contract.TelegramClient
	cfg      SchedulerConfig
	clock    birthday.Clock
	log      *slog.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	running  bool

	runMu sync.Mutex
}

func newScheduler(roster contract.RosterService, telegram contract.TelegramClient, cfg SchedulerConfig, log *slog.Logger) *scheduler {
	return &scheduler{
		roster:   roster,
		telegram: telegram,
		cfg:      cfg,
		clock:    birthday.RealClock{},
		log:      log,
		stopChan: make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info("scheduler starting",
		"notify_time", s.cfg.NotifyTime,
		"timezone", s.cfg.Location.String(),
	)
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info("scheduler stopping")
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.running = false
}

func (s *scheduler) mainLoop() {
	for {
		now := s.clock.Now().In(s.cfg.Location)
		next, err := s.nextFire(now)
		if err != nil {
			s.log.Error("invalid notify time, scheduler stopped", "error", err)
			return
		}

		s.log.Info("next birthday check scheduled", "at", next.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
			s.RunOnce(context.Background())
			// Step past the fire instant so the next computation lands on
			// tomorrow even when the run returns within the same second.
			time.Sleep(time.Second)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextFire returns the next NotifyTime boundary strictly after now.
func (s *scheduler) nextFire(now time.Time) (time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s.cfg.NotifyTime, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse notify time %q: %w", s.cfg.NotifyTime, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("notify time %q out of range", s.cfg.NotifyTime)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, s.cfg.Location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

// RunOnce executes a single birthday check. It returns immediately when a
// previous run is still in progress so that two fires can never send
// concurrently.
func (s *scheduler) RunOnce(ctx context.Context) {
	if !s.runMu.TryLock() {
		s.log.Warn("previous birthday run still in progress, skipping fire")
		return
	}
	defer s.runMu.Unlock()

	today := s.clock.Now().In(s.cfg.Location)
	people := s.roster.PeopleWithBirthdayOn(today)

	if len(people) == 0 {
		s.log.Info("no birthdays today", "date", today.Format("02.01.2006"))
		return
	}

	s.log.Info("birthdays found", "date", today.Format("02.01.2006"), "count", len(people))

	for _, p := range people {
		if err := s.announce(ctx, p, today); err != nil {
			// One failed send must not stop the rest of the run.
			s.log.Error("failed to send birthday notification",
				"person_id", p.ID,
				"name", p.Name,
				"error", err,
			)
		}
	}
}

func (s *scheduler) announce(ctx context.Context, p entity.Person, today time.Time) error {
	age, err := birthday.AgeOn(p, today)
	if err != nil {
		return fmt.Errorf("failed to compute age: %w", err)
	}

	text := fmt.Sprintf("🎉 Today is %s's birthday!\n%s turns %d, congratulations! 🎂", p.Name, p.Mention(), age)

	if s.cfg.ImageURL != "" {
		if err := s.telegram.SendPhoto(ctx, s.cfg.ChatID, s.cfg.ImageURL, text); err != nil {
			s.log.Warn("photo send failed, falling back to text",
				"person_id", p.ID,
				"error", err,
			)
			return s.telegram.SendMessage(ctx, s.cfg.ChatID, text)
		}
		return nil
	}

	return s.telegram.SendMessage(ctx, s.cfg.ChatID, text)
}
