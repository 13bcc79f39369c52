package config

import (
	"fmt"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageNone   = "none"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	TelegramBotToken string   `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	WebhookSecret    string   `envconfig:"TELEGRAM_WEBHOOK_SECRET"`
	BirthdayChatID   int64    `envconfig:"BIRTHDAY_CHAT_ID" required:"true"`
	AdminUsernames   []string `envconfig:"ADMIN_USERNAMES"`

	NotifyTime string `envconfig:"NOTIFY_TIME" default:"11:00"`
	Timezone   string `envconfig:"TIMEZONE" default:"Europe/Kyiv"`
	ImageURL   string `envconfig:"BIRTHDAY_IMAGE_URL"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	StoragePath   string `envconfig:"STORAGE_PATH" default:"./birthdays.json"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"./birthdays.db"`

	Port string `envconfig:"PORT" default:"3000"`

	Logger logger.Config
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// envconfig's required tag only checks presence, so an empty value would
	// slip through and the bot would start without a usable token.
	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN must not be empty")
	}

	switch cfg.StorageDriver {
	case StorageNone, StorageFile, StorageSQLite:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	return &cfg, nil
}
