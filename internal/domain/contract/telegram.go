package contract

import "context"

// TelegramClient defines the interface for Telegram Bot API operations.
// This allows mocking in tests while keeping the real implementation simple.
type TelegramClient interface {
	// SendMessage sends a plain text message to a chat.
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendPhoto sends a photo by URL or file id with a caption.
	SendPhoto(ctx context.Context, chatID int64, photo, caption string) error
}
