package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type schedulerService struct {
	dm  contract.DataManager
	log zerolog.Logger
}

func newSchedulerService(dm contract.DataManager, log zerolog.Logger) *schedulerService {
	return &schedulerService{
		dm:  dm,
		log: log.With().Str("component", "announcement-scheduler").Logger(),
	}
}

func (s *schedulerService) ScheduleOneTime(ctx context.Context, guildID, channelID, content string, fireAt time.Time) (*entity.AnnouncementJob, error) {
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Value: content, Rule: "must not be empty"}
	}
	if !fireAt.After(time.Now().UTC()) {
		return nil, &domain.ValidationError{Field: "fire_at", Value: fireAt.Format(time.RFC3339), Rule: "must be in the future"}
	}

	job := &entity.AnnouncementJob{
		ID:         uuid.NewString(),
		GuildID:    guildID,
		ChannelID:  channelID,
		Content:    content,
		Recurrence: domain.RecurrenceNone,
		NextFireAt: fireAt.UTC(),
		Enabled:    true,
	}
	if err := s.dm.Job().Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Str("guild_id", guildID).Time("fire_at", job.NextFireAt).Msg("one-time announcement scheduled")
	return job, nil
}

func (s *schedulerService) ScheduleRecurring(ctx context.Context, guildID, channelID, content string, recurrence domain.Recurrence, anchor time.Time) (*entity.AnnouncementJob, error) {
	if content == "" {
		return nil, &domain.ValidationError{Field: "content", Value: content, Rule: "must not be empty"}
	}
	if recurrence == domain.RecurrenceNone || !recurrence.Valid() {
		return nil, &domain.ValidationError{Field: "recurrence", Value: string(recurrence), Rule: "must be daily, weekly or monthly"}
	}

	// The anchor sets the time-of-day (and day-of-week / day-of-month) the
	// cadence runs on. An anchor in the past starts at its next occurrence.
	next := anchor.UTC()
	now := time.Now().UTC()
	for !next.After(now) {
		next = nextFireAfter(next, recurrence)
	}

	job := &entity.AnnouncementJob{
		ID:         uuid.NewString(),
		GuildID:    guildID,
		ChannelID:  channelID,
		Content:    content,
		Recurrence: recurrence,
		NextFireAt: next,
		Enabled:    true,
	}
	if err := s.dm.Job().Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.log.Info().Str("job_id", job.ID).Str("guild_id", guildID).Str("recurrence", string(recurrence)).Time("next_fire_at", next).Msg("recurring announcement scheduled")
	return job, nil
}

func (s *schedulerService) CancelJob(ctx context.Context, jobID string) error {
	job, err := s.dm.Job().GetByID(jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}
	if err := s.dm.Job().Delete(jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	s.log.Info().Str("job_id", jobID).Msg("announcement job cancelled")
	return nil
}

func (s *schedulerService) SetJobEnabled(ctx context.Context, jobID string, enabled bool) error {
	job, err := s.dm.Job().GetByID(jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}
	if err := s.dm.Job().SetEnabled(jobID, enabled); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (s *schedulerService) ListJobs(ctx context.Context, guildID string) ([]entity.AnnouncementJob, error) {
	jobs, err := s.dm.Job().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return jobs, nil
}

// PollDue returns every enabled job whose fire time has arrived. It mutates
// nothing; re-polling before MarkFired yields the same jobs, which is what
// makes delivery retries safe.
func (s *schedulerService) PollDue(ctx context.Context, now time.Time) ([]entity.DueJob, error) {
	jobs, err := s.dm.Job().GetEnabled()
	if err != nil {
		return nil, fmt.Errorf("failed to load enabled jobs: %w", err)
	}

	now = now.UTC()
	var due []entity.DueJob
	for _, job := range jobs {
		if !job.NextFireAt.After(now) {
			due = append(due, entity.DueJob{Job: job, ScheduledFor: job.NextFireAt})
		}
	}
	return due, nil
}

// MarkFired records a successful delivery. One-time jobs are removed.
// Recurring jobs advance from the previous scheduled time, not from now, so
// a late check never drifts the cadence; when several intervals were missed
// the backlog collapsed into the one fire that just happened, and the next
// fire lands on the first occurrence after today.
func (s *schedulerService) MarkFired(ctx context.Context, jobID string, now time.Time) error {
	job, err := s.dm.Job().GetByID(jobID)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return fmt.Errorf("job %q: %w", jobID, domain.ErrNotFound)
	}

	if job.OneTime() {
		if err := s.dm.Job().Delete(jobID); err != nil {
			return fmt.Errorf("failed to remove fired job: %w", err)
		}
		s.log.Info().Str("job_id", jobID).Msg("one-time announcement fired and removed")
		return nil
	}

	now = now.UTC()
	next := advancePast(job.NextFireAt, job.Recurrence, now)
	fired := now
	job.NextFireAt = next
	job.LastFired = &fired
	if err := s.dm.Job().Update(job); err != nil {
		return fmt.Errorf("failed to advance job: %w", err)
	}

	s.log.Info().Str("job_id", jobID).Time("next_fire_at", next).Msg("recurring announcement fired")
	return nil
}

// nextFireAfter advances one recurrence interval. Monthly keeps the
// day-of-month, clamped to the last valid day when the next month is
// shorter.
func nextFireAfter(t time.Time, recurrence domain.Recurrence) time.Time {
	switch recurrence {
	case domain.RecurrenceDaily:
		return t.AddDate(0, 0, 1)
	case domain.RecurrenceWeekly:
		return t.AddDate(0, 0, 7)
	case domain.RecurrenceMonthly:
		year, month := t.Year(), int(t.Month())+1
		if month > 12 {
			month = 1
			year++
		}
		day := t.Day()
		if last := daysIn(year, month); day > last {
			day = last
		}
		return time.Date(year, time.Month(month), day, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	}
	return t
}

// advancePast fast-forwards a recurring job past now. The fire that just
// happened also stands in for an occurrence later the same day, so the
// result is the first occurrence strictly after today.
func advancePast(next time.Time, recurrence domain.Recurrence, now time.Time) time.Time {
	for !next.After(now) || sameDay(next, now) {
		next = nextFireAfter(next, recurrence)
	}
	return next
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
