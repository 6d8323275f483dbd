package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func TestSettingsRepository_GetMissing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	settings, err := repo.Get("guild-1")
	require.NoError(t, err, "Unexpected error for missing settings")
	assert.Nil(t, settings, "Expected nil for an unconfigured guild")
}

func TestSettingsRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	settings := &entity.GuildSettings{
		GuildID:          "guild-1",
		AnnounceEnabled:  true,
		AnnounceChannel:  "chan-1",
		AnnounceLeadDays: 7,
	}
	err := repo.Upsert(settings)
	require.NoError(t, err, "Failed to create settings")

	found, err := repo.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.AnnounceEnabled)
	assert.Equal(t, "chan-1", found.AnnounceChannel)
	assert.Equal(t, int64(1), found.Version, "Expected initial version 1")

	// Every upsert bumps the version
	settings.AnnounceChannel = "chan-2"
	require.NoError(t, repo.Upsert(settings))

	found, err = repo.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "chan-2", found.AnnounceChannel)
	assert.Equal(t, int64(2), found.Version)
}

func TestSettingsRepository_UpdateVersioned(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	require.NoError(t, repo.Upsert(&entity.GuildSettings{
		GuildID:          "guild-1",
		AnnounceLeadDays: 7,
	}))

	// Matching version applies and bumps
	err := repo.UpdateVersioned("guild-1", 1, func(s *entity.GuildSettings) {
		s.DryRun = true
	})
	require.NoError(t, err, "Expected matching version to apply")

	found, err := repo.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.DryRun)
	assert.Equal(t, int64(2), found.Version)

	// Stale version is rejected without touching the row
	err = repo.UpdateVersioned("guild-1", 1, func(s *entity.GuildSettings) {
		s.DryRun = false
	})
	require.ErrorIs(t, err, domain.ErrStaleWrite)

	found, err = repo.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.DryRun, "Stale update must not apply")
	assert.Equal(t, int64(2), found.Version)
}

func TestSettingsRepository_UpdateVersionedMissingRow(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSettingsRepo(db.conn)

	// An unconfigured guild is at version 0: a commit evaluated against that
	// snapshot creates the row.
	err := repo.UpdateVersioned("guild-1", 0, func(s *entity.GuildSettings) {})
	require.NoError(t, err)

	found, err := repo.Get("guild-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.Version)
	assert.Equal(t, domain.DefaultAnnounceLeadDays, found.AnnounceLeadDays)

	// Expecting a non-zero version against a missing row is stale
	err = repo.UpdateVersioned("guild-2", 5, func(s *entity.GuildSettings) {})
	require.ErrorIs(t, err, domain.ErrStaleWrite)
}
