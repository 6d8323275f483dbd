package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type jobRepo struct {
	db dbConn
}

func newJobRepo(db dbConn) contract.JobRepo {
	return &jobRepo{db: db}
}

const jobColumns = `id, guild_id, channel_id, content, embed, title, recurrence, next_fire_at, enabled, last_fired, created_at`

func (r *jobRepo) Create(job *entity.AnnouncementJob) error {
	query := `
		INSERT INTO announcement_jobs (id, guild_id, channel_id, content, embed, title, recurrence, next_fire_at, enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		job.ID,
		job.GuildID,
		job.ChannelID,
		job.Content,
		job.Embed,
		job.Title,
		string(job.Recurrence),
		job.NextFireAt,
		job.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(jobID string) (*entity.AnnouncementJob, error) {
	query := `SELECT ` + jobColumns + ` FROM announcement_jobs WHERE id = ?`

	job, err := scanJob(r.db.QueryRow(query, jobID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) GetByGuild(guildID string) ([]entity.AnnouncementJob, error) {
	query := `SELECT ` + jobColumns + ` FROM announcement_jobs WHERE guild_id = ? ORDER BY next_fire_at`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *jobRepo) GetEnabled() ([]entity.AnnouncementJob, error) {
	query := `SELECT ` + jobColumns + ` FROM announcement_jobs WHERE enabled = 1 ORDER BY next_fire_at`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *jobRepo) Update(job *entity.AnnouncementJob) error {
	query := `
		UPDATE announcement_jobs SET
			channel_id = ?,
			content = ?,
			embed = ?,
			title = ?,
			recurrence = ?,
			next_fire_at = ?,
			enabled = ?,
			last_fired = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		job.ChannelID,
		job.Content,
		job.Embed,
		job.Title,
		string(job.Recurrence),
		job.NextFireAt,
		job.Enabled,
		job.LastFired,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (r *jobRepo) Delete(jobID string) error {
	_, err := r.db.Exec(`DELETE FROM announcement_jobs WHERE id = ?`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (r *jobRepo) SetEnabled(jobID string, enabled bool) error {
	_, err := r.db.Exec(`UPDATE announcement_jobs SET enabled = ? WHERE id = ?`, enabled, jobID)
	if err != nil {
		return fmt.Errorf("failed to set job enabled: %w", err)
	}
	return nil
}

func collectJobs(rows *sql.Rows) ([]entity.AnnouncementJob, error) {
	var jobs []entity.AnnouncementJob
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func scanJob(scan func(dest ...interface{}) error) (*entity.AnnouncementJob, error) {
	job := &entity.AnnouncementJob{}
	var recurrence string
	var lastFired sql.NullTime
	var nextFireAt, createdAt time.Time

	err := scan(
		&job.ID,
		&job.GuildID,
		&job.ChannelID,
		&job.Content,
		&job.Embed,
		&job.Title,
		&recurrence,
		&nextFireAt,
		&job.Enabled,
		&lastFired,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	job.Recurrence = domain.Recurrence(recurrence)
	job.NextFireAt = nextFireAt.UTC()
	job.CreatedAt = createdAt
	if lastFired.Valid {
		fired := lastFired.Time.UTC()
		job.LastFired = &fired
	}
	return job, nil
}
