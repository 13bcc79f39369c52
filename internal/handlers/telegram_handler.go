package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/birthday"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/contract"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
	"github.com/CodeByArtem/telegram-birthday-bot/internal/telegram"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// update is the subset of a Telegram webhook update the bot reacts to.
type update struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From struct {
			Username string `json:"username"`
		} `json:"from"`
		Text string `json:"text"`
	} `json:"message"`
}

type TelegramHandler struct {
	telegramClient contract.TelegramClient
	roster         contract.RosterService
	secretToken    string
	admins         []string
	location       *time.Location
	clock          birthday.Clock
	log            *slog.Logger
}

func New(telegramClient contract.TelegramClient, roster contract.RosterService, secretToken string, admins []string, location *time.Location, log *slog.Logger) *TelegramHandler {
	return &TelegramHandler{
		telegramClient: telegramClient,
		roster:         roster,
		secretToken:    secretToken,
		admins:         admins,
		location:       location,
		clock:          birthday.RealClock{},
		log:            log,
	}
}

// HandleWebhook processes one Telegram update. Telegram retries non-200
// responses, so command-level failures still answer 200 and the reply carries
// the error text instead.
func (h *TelegramHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	// Verify request from Telegram
	if h.secretToken != "" && r.Header.Get(secretTokenHeader) != h.secretToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var upd update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Updates without a text message (edits, joins, stickers) are ignored.
	if upd.Message == nil || strings.TrimSpace(upd.Message.Text) == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	chatID := upd.Message.Chat.ID
	caller := upd.Message.From.Username

	cmd, err := telegram.ParseCommand(upd.Message.Text)
	if err != nil {
		h.reply(r.Context(), chatID, "Unknown command. Send /help to see what I can do.")
		w.WriteHeader(http.StatusOK)
		return
	}

	response := h.handleCommand(cmd, caller)
	h.reply(r.Context(), chatID, response)
	w.WriteHeader(http.StatusOK)
}

func (h *TelegramHandler) handleCommand(cmd *telegram.Command, caller string) string {
	switch cmd.Type {
	case telegram.CmdAdd:
		return h.handleAdd(cmd, caller)
	case telegram.CmdRemove:
		return h.handleRemove(cmd, caller)
	case telegram.CmdList:
		return h.handleList()
	case telegram.CmdFind:
		return h.handleFind(cmd)
	case telegram.CmdToday:
		return h.handleToday()
	case telegram.CmdStats:
		return h.handleStats()
	case telegram.CmdHelp:
		return telegram.GetHelpText()
	default:
		return "Unknown command. Send /help to see what I can do."
	}
}

func (h *TelegramHandler) handleAdd(cmd *telegram.Command, caller string) string {
	if !h.isAdmin(caller) {
		return "❌ Only admins can add people."
	}

	args, err := telegram.ParseAddArgs(cmd.Args)
	if err != nil {
		return fmt.Sprintf("❌ %v. Usage: /add Name DD.MM.YYYY [@username]", err)
	}

	added, err := h.roster.Add(entity.Person{
		Name:      args.Name,
		BirthDate: args.BirthDate,
		Username:  args.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBirthDate):
			return fmt.Sprintf("❌ %q is not a valid date. Use DD.MM.YYYY.", args.BirthDate)
		case errors.Is(err, domain.ErrDuplicateUsername):
			return fmt.Sprintf("❌ @%s is already on the roster.", args.Username)
		case errors.Is(err, domain.ErrEmptyName):
			return "❌ The name must not be empty."
		default:
			h.log.Error("failed to add person", "error", err)
			return "❌ Failed to add, try again later."
		}
	}

	return fmt.Sprintf("✅ Added %s (%s) with id %d.", added.Name, added.BirthDate, added.ID)
}

func (h *TelegramHandler) handleRemove(cmd *telegram.Command, caller string) string {
	if !h.isAdmin(caller) {
		return "❌ Only admins can remove people."
	}

	if len(cmd.Args) == 0 {
		return "❌ Tell me who to remove: /remove <id or name>"
	}

	target := strings.Join(cmd.Args, " ")

	if id, err := strconv.Atoi(target); err == nil {
		if h.roster.RemoveByID(id) {
			return fmt.Sprintf("✅ Removed person %d.", id)
		}
		return fmt.Sprintf("❌ Nobody has id %d.", id)
	}

	removed, err := h.roster.RemoveByName(target)
	if err != nil {
		return fmt.Sprintf("❌ Nobody on the roster is called %q.", target)
	}
	return fmt.Sprintf("✅ Removed %s.", removed.Name)
}

func (h *TelegramHandler) handleList() string {
	people := h.roster.List()
	if len(people) == 0 {
		return "The roster is empty. Use /add Name DD.MM.YYYY to add someone."
	}

	var b strings.Builder
	b.WriteString("Birthday roster:\n")
	for _, p := range people {
		b.WriteString(fmt.Sprintf("%d. %s — %s", p.ID, p.Name, p.BirthDate))
		if p.Username != "" {
			b.WriteString(" (@" + p.Username + ")")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (h *TelegramHandler) handleFind(cmd *telegram.Command) string {
	if len(cmd.Args) == 0 {
		return "❌ Tell me what to search for: /find <text>"
	}

	term := strings.Join(cmd.Args, " ")
	people := h.roster.FindByName(term)
	if len(people) == 0 {
		return fmt.Sprintf("Nobody matching %q.", term)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d:\n", len(people)))
	for _, p := range people {
		b.WriteString(fmt.Sprintf("%d. %s — %s\n", p.ID, p.Name, p.BirthDate))
	}
	return b.String()
}

func (h *TelegramHandler) handleToday() string {
	today := h.clock.Now().In(h.location)
	people := h.roster.PeopleWithBirthdayOn(today)
	if len(people) == 0 {
		return "No birthdays today."
	}

	var b strings.Builder
	b.WriteString("🎂 Birthdays today:\n")
	for _, p := range people {
		if age, err := birthday.AgeOn(p, today); err == nil {
			b.WriteString(fmt.Sprintf("• %s turns %d\n", p.Name, age))
		} else {
			b.WriteString(fmt.Sprintf("• %s\n", p.Name))
		}
	}
	return b.String()
}

func (h *TelegramHandler) handleStats() string {
	now := h.clock.Now().In(h.location)
	stats := h.roster.Statistics(now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Roster: %d people\n", stats.Total))
	b.WriteString(fmt.Sprintf("This month: %d, next month: %d\n", stats.ThisMonth, stats.NextMonth))
	b.WriteString(fmt.Sprintf("Average per month: %s\n\n", stats.AveragePerMonth))
	for month := 1; month <= 12; month++ {
		count := stats.PerMonth[month-1]
		if count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %d\n", domain.MonthNames[month], count))
	}
	return b.String()
}

// isAdmin checks the caller against the static allow-list, case-insensitively.
func (h *TelegramHandler) isAdmin(username string) bool {
	if username == "" {
		return false
	}
	for _, admin := range h.admins {
		if strings.EqualFold(strings.TrimPrefix(admin, "@"), username) {
			return true
		}
	}
	return false
}

func (h *TelegramHandler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.telegramClient.SendMessage(ctx, chatID, text); err != nil {
		h.log.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}
