package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func TestStatusRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStatusRepo(db.conn)

	status := &entity.HolidayStatus{
		GuildID:        "guild-1",
		HolidayName:    "Kids Day",
		Active:         true,
		OccurrenceYear: 2024,
		UpdatedAt:      time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC),
	}
	err := repo.Upsert(status)
	require.NoError(t, err, "Failed to create status")

	// Upsert replaces the stored state for the same holiday
	status.Active = false
	status.OccurrenceYear = 2025
	err = repo.Upsert(status)
	require.NoError(t, err, "Failed to update status")

	statuses, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	got, ok := statuses["Kids Day"]
	require.True(t, ok)
	assert.False(t, got.Active)
	assert.Equal(t, 2025, got.OccurrenceYear)
}

func TestStatusRepository_GetByGuild(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStatusRepo(db.conn)
	now := time.Now().UTC()

	require.NoError(t, repo.Upsert(&entity.HolidayStatus{GuildID: "guild-1", HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024, UpdatedAt: now}))
	require.NoError(t, repo.Upsert(&entity.HolidayStatus{GuildID: "guild-1", HolidayName: "Christmas", Active: false, OccurrenceYear: 2024, UpdatedAt: now}))
	require.NoError(t, repo.Upsert(&entity.HolidayStatus{GuildID: "guild-2", HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024, UpdatedAt: now}))

	statuses, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Len(t, statuses, 2)
	assert.True(t, statuses["Kids Day"].Active)
	assert.False(t, statuses["Christmas"].Active)

	empty, err := repo.GetByGuild("guild-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatusRepository_Remove(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newStatusRepo(db.conn)

	require.NoError(t, repo.Upsert(&entity.HolidayStatus{GuildID: "guild-1", HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024, UpdatedAt: time.Now().UTC()}))
	require.NoError(t, repo.Remove("guild-1", "Kids Day"))

	statuses, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
