package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func newTestScheduler(t *testing.T, m allMocks, now time.Time) *scheduler {
	t.Helper()

	s := newScheduler(m.mockRoster, m.mockTelegram, SchedulerConfig{
		NotifyTime: "11:00",
		Location:   time.UTC,
		ChatID:     -100500,
	}, testLogger())
	s.clock = fakeClock{now: now}

	require.NotNil(t, s)
	return s
}

func Test_scheduler_nextFire(t *testing.T) {
	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	tests := []struct {
		name       string
		notifyTime string
		loc        *time.Location
		now        time.Time
		want       time.Time
		wantErr    bool
	}{
		{
			name:       "Should fire today when the time has not passed",
			notifyTime: "11:00",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC),
			want:       time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name:       "Should fire tomorrow when the time has passed",
			notifyTime: "11:00",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 1, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			name:       "Should fire tomorrow when now is exactly the boundary",
			notifyTime: "11:00",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 1, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			name:       "Should compute the boundary in the configured timezone",
			notifyTime: "11:00",
			loc:        kyiv,
			now:        time.Date(2025, 6, 1, 7, 0, 0, 0, kyiv),
			want:       time.Date(2025, 6, 1, 11, 0, 0, 0, kyiv),
		},
		{
			name:       "Should cross a month boundary",
			notifyTime: "11:00",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC),
			want:       time.Date(2025, 2, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name:       "Should reject a malformed notify time",
			notifyTime: "eleven",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			wantErr:    true,
		},
		{
			name:       "Should reject an out of range notify time",
			notifyTime: "25:00",
			loc:        time.UTC,
			now:        time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newScheduler(m.mockRoster, m.mockTelegram, SchedulerConfig{
				NotifyTime: tt.notifyTime,
				Location:   tt.loc,
			}, testLogger())

			got, err := s.nextFire(tt.now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func Test_scheduler_RunOnce(t *testing.T) {
	now := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)

	t.Run("Should do nothing when nobody has a birthday", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, now)

		m.mockRoster.EXPECT().PeopleWithBirthdayOn(gomock.Any()).Return(nil)

		s.RunOnce(context.Background())
	})

	t.Run("Should announce each match with the computed age", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, now)

		m.mockRoster.EXPECT().PeopleWithBirthdayOn(gomock.Any()).Return([]entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000", Username: "anna"},
		})
		m.mockTelegram.EXPECT().
			SendMessage(gomock.Any(), int64(-100500), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, text string) error {
				assert.Contains(t, text, "Anna")
				assert.Contains(t, text, "@anna")
				assert.Contains(t, text, "25")
				return nil
			})

		s.RunOnce(context.Background())
	})

	t.Run("Should keep sending after a failed notification", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, now)

		m.mockRoster.EXPECT().PeopleWithBirthdayOn(gomock.Any()).Return([]entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
			{ID: 2, Name: "Bohdan", BirthDate: "01.01.1990"},
		})

		gomock.InOrder(
			m.mockTelegram.EXPECT().
				SendMessage(gomock.Any(), int64(-100500), gomock.Any()).
				Return(errors.New("telegram is down")),
			m.mockTelegram.EXPECT().
				SendMessage(gomock.Any(), int64(-100500), gomock.Any()).
				Return(nil),
		)

		s.RunOnce(context.Background())
	})

	t.Run("Should fall back to text when the photo send fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, now)
		s.cfg.ImageURL = "https://example.com/cake.png"

		m.mockRoster.EXPECT().PeopleWithBirthdayOn(gomock.Any()).Return([]entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
		})

		gomock.InOrder(
			m.mockTelegram.EXPECT().
				SendPhoto(gomock.Any(), int64(-100500), "https://example.com/cake.png", gomock.Any()).
				Return(errors.New("photo rejected")),
			m.mockTelegram.EXPECT().
				SendMessage(gomock.Any(), int64(-100500), gomock.Any()).
				Return(nil),
		)

		s.RunOnce(context.Background())
	})

	t.Run("Should skip a fire while the previous run is in progress", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newTestScheduler(t, m, now)

		firstStarted := make(chan struct{})
		release := make(chan struct{})

		m.mockRoster.EXPECT().PeopleWithBirthdayOn(gomock.Any()).Return([]entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
		}).Times(1)

		m.mockTelegram.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, int64, string) error {
				close(firstStarted)
				<-release
				return nil
			}).
			Times(1)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RunOnce(context.Background())
		}()

		<-firstStarted
		// The overlapping fire must return without touching roster or telegram;
		// the Times(1) expectations above fail the test otherwise.
		s.RunOnce(context.Background())

		close(release)
		wg.Wait()
	})
}
