package database

import (
	"testing"
	"time"

	"github.com/CodeByArtem/telegram-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonStorage_LoadAll_Empty(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	storage := NewPersonStorage(db)

	people, err := storage.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestPersonStorage_SaveAll_RoundTrip(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	storage := NewPersonStorage(db)

	people := []entity.Person{
		{ID: 1, Name: "Anna", BirthDate: "01.01.2000", Username: "anna", AddedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 5, Name: "Bohdan", BirthDate: "15.06.1990", AddedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Clara", BirthDate: "29.02.2004", Username: "clara", AddedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, storage.SaveAll(people))

	got, err := storage.LoadAll()
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Insertion order must survive the round trip even when ids are not sorted.
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 5, got[1].ID)
	assert.Equal(t, 3, got[2].ID)

	assert.Equal(t, "Anna", got[0].Name)
	assert.Equal(t, "anna", got[0].Username)
	assert.Equal(t, "15.06.1990", got[1].BirthDate)
	assert.Empty(t, got[1].Username)
}

func TestPersonStorage_SaveAll_Overwrites(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	storage := NewPersonStorage(db)

	require.NoError(t, storage.SaveAll([]entity.Person{
		{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
		{ID: 2, Name: "Bohdan", BirthDate: "15.06.1990"},
	}))
	require.NoError(t, storage.SaveAll([]entity.Person{
		{ID: 2, Name: "Bohdan", BirthDate: "15.06.1990"},
	}))

	got, err := storage.LoadAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bohdan", got[0].Name)
}

func TestPersonStorage_SaveAll_EmptyRoster(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	storage := NewPersonStorage(db)

	require.NoError(t, storage.SaveAll([]entity.Person{
		{ID: 1, Name: "Anna", BirthDate: "01.01.2000"},
	}))
	require.NoError(t, storage.SaveAll(nil))

	got, err := storage.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}
