package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func TestPhaseRepository_MarkSent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPhaseRepo(db.conn)

	record := &entity.PhaseRecord{
		GuildID:        "guild-1",
		HolidayName:    "Kids Day",
		OccurrenceYear: 2024,
		Phase:          domain.PhaseStart,
		SentAt:         time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC),
	}
	err := repo.MarkSent(record)
	require.NoError(t, err, "Failed to mark phase sent")

	// Marking the same phase again is a no-op, not an error
	record.SentAt = record.SentAt.Add(time.Hour)
	err = repo.MarkSent(record)
	require.NoError(t, err, "Expected re-marking to be idempotent")

	records, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.PhaseStart, records[0].Phase)
	assert.Equal(t, 2024, records[0].OccurrenceYear)
	// The original sent time survives the retry
	assert.Equal(t, time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC), records[0].SentAt.UTC())
}

func TestPhaseRepository_SeparateOccurrences(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPhaseRepo(db.conn)
	now := time.Now().UTC()

	// Same phase in different years is two records
	require.NoError(t, repo.MarkSent(&entity.PhaseRecord{GuildID: "guild-1", HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseStart, SentAt: now}))
	require.NoError(t, repo.MarkSent(&entity.PhaseRecord{GuildID: "guild-1", HolidayName: "Kids Day", OccurrenceYear: 2025, Phase: domain.PhaseStart, SentAt: now}))

	records, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestPhaseRepository_ClearHoliday(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPhaseRepo(db.conn)
	now := time.Now().UTC()

	require.NoError(t, repo.MarkSent(&entity.PhaseRecord{GuildID: "guild-1", HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseBefore, SentAt: now}))
	require.NoError(t, repo.MarkSent(&entity.PhaseRecord{GuildID: "guild-1", HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseStart, SentAt: now}))
	require.NoError(t, repo.MarkSent(&entity.PhaseRecord{GuildID: "guild-1", HolidayName: "Christmas", OccurrenceYear: 2024, Phase: domain.PhaseStart, SentAt: now}))

	require.NoError(t, repo.ClearHoliday("guild-1", "Kids Day"))

	records, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Christmas", records[0].HolidayName)
}
