package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func makeTestJob(guildID string, fireAt time.Time, recurrence domain.Recurrence) *entity.AnnouncementJob {
	return &entity.AnnouncementJob{
		ID:         uuid.NewString(),
		GuildID:    guildID,
		ChannelID:  "chan-1",
		Content:    "hello",
		Recurrence: recurrence,
		NextFireAt: fireAt,
		Enabled:    true,
	}
}

func TestJobRepository_CreateAndGetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newJobRepo(db.conn)

	fireAt := time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC)
	original := makeTestJob("guild-1", fireAt, domain.RecurrenceWeekly)
	original.Title = "Weekly update"
	original.Embed = true

	err := repo.Create(original)
	require.NoError(t, err, "Failed to create job")

	found, err := repo.GetByID(original.ID)
	require.NoError(t, err, "Failed to get job by ID")
	require.NotNil(t, found, "Expected to find job")

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, "guild-1", found.GuildID)
	assert.Equal(t, "chan-1", found.ChannelID)
	assert.Equal(t, "hello", found.Content)
	assert.Equal(t, "Weekly update", found.Title)
	assert.True(t, found.Embed)
	assert.Equal(t, domain.RecurrenceWeekly, found.Recurrence)
	assert.Equal(t, fireAt, found.NextFireAt)
	assert.True(t, found.Enabled)
	assert.Nil(t, found.LastFired)

	notFound, err := repo.GetByID("nonexistent")
	require.NoError(t, err, "Unexpected error when job not found")
	assert.Nil(t, notFound, "Expected nil when job not found")
}

func TestJobRepository_GetByGuild(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newJobRepo(db.conn)

	later := makeTestJob("guild-1", time.Date(2024, time.June, 2, 10, 0, 0, 0, time.UTC), domain.RecurrenceNone)
	sooner := makeTestJob("guild-1", time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), domain.RecurrenceNone)
	other := makeTestJob("guild-2", time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), domain.RecurrenceNone)

	require.NoError(t, repo.Create(later))
	require.NoError(t, repo.Create(sooner))
	require.NoError(t, repo.Create(other))

	jobs, err := repo.GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, jobs, 2, "Expected only guild-1 jobs")

	// Ordered by fire time
	assert.Equal(t, sooner.ID, jobs[0].ID)
	assert.Equal(t, later.ID, jobs[1].ID)
}

func TestJobRepository_GetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newJobRepo(db.conn)

	enabled := makeTestJob("guild-1", time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC), domain.RecurrenceDaily)
	disabled := makeTestJob("guild-1", time.Date(2024, time.June, 1, 11, 0, 0, 0, time.UTC), domain.RecurrenceDaily)

	require.NoError(t, repo.Create(enabled))
	require.NoError(t, repo.Create(disabled))
	require.NoError(t, repo.SetEnabled(disabled.ID, false))

	jobs, err := repo.GetEnabled()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, enabled.ID, jobs[0].ID)
}

func TestJobRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newJobRepo(db.conn)

	job := makeTestJob("guild-1", time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC), domain.RecurrenceWeekly)
	require.NoError(t, repo.Create(job))

	fired := time.Date(2024, time.June, 1, 20, 0, 5, 0, time.UTC)
	job.NextFireAt = time.Date(2024, time.June, 8, 20, 0, 0, 0, time.UTC)
	job.LastFired = &fired

	require.NoError(t, repo.Update(job))

	found, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, job.NextFireAt, found.NextFireAt)
	require.NotNil(t, found.LastFired)
	assert.Equal(t, fired, found.LastFired.UTC())
}

func TestJobRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newJobRepo(db.conn)

	job := makeTestJob("guild-1", time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC), domain.RecurrenceNone)
	require.NoError(t, repo.Create(job))
	require.NoError(t, repo.Delete(job.ID))

	found, err := repo.GetByID(job.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "Expected job to be gone")
}
