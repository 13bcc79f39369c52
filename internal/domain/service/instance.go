package service

import (
	"log/slog"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
)

type Instance struct {
	Roster    contract.RosterService
	Scheduler *scheduler
}

func NewInstance(storage contract.PersonStorage, telegram contract.TelegramClient, cfg SchedulerConfig, log *slog.Logger) *Instance {
	roster := newRoster(storage, log)

	return &Instance{
		Roster:    roster,
		Scheduler: newScheduler(roster, telegram, cfg, log),
	}
}
