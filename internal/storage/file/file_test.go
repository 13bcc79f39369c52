package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_LoadAll(t *testing.T) {
	t.Run("Should load empty when the file does not exist", func(t *testing.T) {
		s, err := New(filepath.Join(t.TempDir(), "birthdays.json"))
		require.NoError(t, err)

		people, err := s.LoadAll()
		require.NoError(t, err)
		assert.Empty(t, people)
	})

	t.Run("Should fail on corrupted content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "birthdays.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		s, err := New(path)
		require.NoError(t, err)

		_, err = s.LoadAll()
		assert.Error(t, err)
	})
}

func TestStorage_SaveAll(t *testing.T) {
	t.Run("Should round-trip a roster", func(t *testing.T) {
		s, err := New(filepath.Join(t.TempDir(), "birthdays.json"))
		require.NoError(t, err)

		people := []entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000", Username: "anna"},
			{ID: 4, Name: "Bohdan", BirthDate: "15.06.1990"},
		}
		require.NoError(t, s.SaveAll(people))

		got, err := s.LoadAll()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, people[0].ID, got[0].ID)
		assert.Equal(t, people[0].Username, got[0].Username)
		assert.Equal(t, people[1].Name, got[1].Name)
		assert.Equal(t, people[1].BirthDate, got[1].BirthDate)
	})

	t.Run("Should overwrite the previous snapshot", func(t *testing.T) {
		s, err := New(filepath.Join(t.TempDir(), "birthdays.json"))
		require.NoError(t, err)

		require.NoError(t, s.SaveAll([]entity.Person{
			{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
			{ID: 2, Name: "Bohdan", BirthDate: "15.06.1990"},
		}))
		require.NoError(t, s.SaveAll([]entity.Person{
			{ID: 2, Name: "Bohdan", BirthDate: "15.06.1990"},
		}))

		got, err := s.LoadAll()
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("Should write an empty array for an empty roster", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "birthdays.json")
		s, err := New(path)
		require.NoError(t, err)

		require.NoError(t, s.SaveAll(nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	})

	t.Run("Should create missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "birthdays.json")
		s, err := New(path)
		require.NoError(t, err)

		require.NoError(t, s.SaveAll([]entity.Person{{ID: 1, Name: "Anna", BirthDate: "01.01.2000"}}))

		got, err := s.LoadAll()
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
