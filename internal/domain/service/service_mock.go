package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/CodeByArtem/telegram-birthday-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStorage  *mocks.MockPersonStorage
	mockTelegram *mocks.MockTelegramClient
	mockRoster   *mocks.MockRosterService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStorage:  mocks.NewMockPersonStorage(ctrl),
		mockTelegram: mocks.NewMockTelegramClient(ctrl),
		mockRoster:   mocks.NewMockRosterService(ctrl),
	}

	return
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
