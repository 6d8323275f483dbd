package contract

import (
	"context"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces. WithTransaction runs fn
// against repositories bound to a single transaction; the evaluation commit
// path uses it so a commit applies its whole delta or none of it.
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Holiday() HolidayRepo
	Status() StatusRepo
	Phase() PhaseRepo
	OptOut() OptOutRepo
	Job() JobRepo
	Settings() SettingsRepo
}

// HolidayRepo persists holiday definitions, keyed by guild and name.
type HolidayRepo interface {
	Upsert(holiday *entity.Holiday) error
	GetByGuild(guildID string) ([]entity.Holiday, error)
	GetByName(guildID, name string) (*entity.Holiday, error)
	Remove(guildID, name string) error
}

// StatusRepo persists the last committed activation state per holiday.
type StatusRepo interface {
	GetByGuild(guildID string) (map[string]entity.HolidayStatus, error)
	Upsert(status *entity.HolidayStatus) error
	Remove(guildID, holidayName string) error
}

// PhaseRepo persists sent-phase records keyed by (holiday, occurrence year,
// phase).
type PhaseRepo interface {
	GetByGuild(guildID string) ([]entity.PhaseRecord, error)
	MarkSent(record *entity.PhaseRecord) error
	ClearHoliday(guildID, holidayName string) error
}

// OptOutRepo persists the per-guild set of members excluded from automatic
// role assignment.
type OptOutRepo interface {
	Add(guildID, memberID string) error
	Remove(guildID, memberID string) error
	GetByGuild(guildID string) (map[string]struct{}, error)
}

// JobRepo persists scheduled announcement jobs.
type JobRepo interface {
	Create(job *entity.AnnouncementJob) error
	GetByID(jobID string) (*entity.AnnouncementJob, error)
	GetByGuild(guildID string) ([]entity.AnnouncementJob, error)
	GetEnabled() ([]entity.AnnouncementJob, error)
	Update(job *entity.AnnouncementJob) error
	Delete(jobID string) error
	SetEnabled(jobID string, enabled bool) error
}

// SettingsRepo persists per-guild configuration. UpdateVersioned applies the
// mutation only when the stored version still matches expected, returning
// ErrStaleWrite otherwise; it is the CAS primitive behind the commit step.
type SettingsRepo interface {
	Get(guildID string) (*entity.GuildSettings, error)
	Upsert(settings *entity.GuildSettings) error
	UpdateVersioned(guildID string, expected int64, fn func(s *entity.GuildSettings)) error
}
