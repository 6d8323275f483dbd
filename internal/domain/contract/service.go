package contract

import (
	"context"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// HolidayService orchestrates holiday CRUD, the activation decision
// procedure, and the announcement phase tracker. Check and Commit follow the
// compute-then-report discipline: Check is pure over a state snapshot, the
// caller executes the intents, and Commit persists only the reported outcome.
type HolidayService interface {
	AddHoliday(ctx context.Context, guildID string, holiday entity.Holiday) error
	EditHoliday(ctx context.Context, guildID, name string, update entity.Holiday) error
	RemoveHoliday(ctx context.Context, guildID, name string) error
	ListHolidays(ctx context.Context, guildID string) ([]entity.Holiday, map[string]int, error)
	SetTemplate(ctx context.Context, guildID, name string, phase domain.Phase, template string) error

	CheckHolidays(ctx context.Context, guildID string, asOf time.Time) (*entity.Evaluation, error)
	ForceHoliday(ctx context.Context, guildID, name string) (*entity.HolidayStateChange, error)
	CommitEvaluation(ctx context.Context, eval *entity.Evaluation, outcome entity.EvaluationOutcome) error

	SetDryRun(ctx context.Context, guildID string, enabled bool) error
	SetAnnounceChannel(ctx context.Context, guildID, channelID string) error
	SetAnnounceEnabled(ctx context.Context, guildID string, enabled bool) error
	SetMention(ctx context.Context, guildID, mentionType, roleID string) error
	Settings(ctx context.Context, guildID string) (*entity.GuildSettings, error)
	OptOutAdd(ctx context.Context, guildID, memberID string) error
	OptOutRemove(ctx context.Context, guildID, memberID string) error
	OptOuts(ctx context.Context, guildID string) (map[string]struct{}, error)
	ImportDefaults(ctx context.Context, guildID string) (int, error)
}

// SchedulerService manages one-time and recurring announcement jobs.
// PollDue returns due jobs without mutating anything; MarkFired records a
// successful delivery and advances or removes the job.
type SchedulerService interface {
	ScheduleOneTime(ctx context.Context, guildID, channelID, content string, fireAt time.Time) (*entity.AnnouncementJob, error)
	ScheduleRecurring(ctx context.Context, guildID, channelID, content string, recurrence domain.Recurrence, anchor time.Time) (*entity.AnnouncementJob, error)
	CancelJob(ctx context.Context, jobID string) error
	SetJobEnabled(ctx context.Context, jobID string, enabled bool) error
	ListJobs(ctx context.Context, guildID string) ([]entity.AnnouncementJob, error)
	PollDue(ctx context.Context, now time.Time) ([]entity.DueJob, error)
	MarkFired(ctx context.Context, jobID string, now time.Time) error
}
