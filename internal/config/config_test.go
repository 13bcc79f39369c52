package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("BIRTHDAY_CHAT_ID", "-100500")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "11:00", cfg.NotifyTime)
		assert.Equal(t, "Europe/Kyiv", cfg.Timezone)
		assert.Equal(t, StorageFile, cfg.StorageDriver)
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, int64(-100500), cfg.BirthdayChatID)
	})

	t.Run("Should fail when the bot token is empty", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")
		t.Setenv("BIRTHDAY_CHAT_ID", "-100500")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	})

	t.Run("Should split admin usernames", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("BIRTHDAY_CHAT_ID", "1")
		t.Setenv("ADMIN_USERNAMES", "anna,bohdan")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"anna", "bohdan"}, cfg.AdminUsernames)
	})

	t.Run("Should reject an unknown storage driver", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("BIRTHDAY_CHAT_ID", "1")
		t.Setenv("STORAGE_DRIVER", "cassandra")

		_, err := Load()
		assert.Error(t, err)
	})
}
