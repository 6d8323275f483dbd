package entity

import (
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
)

// The types below are intents: structured results of an evaluation that the
// delivery layer executes. The core never touches a live platform object; it
// returns these by value and the caller reports back what was applied.

// RoleAction says whether the delivery layer should create a fresh role or
// reuse an existing one.
type RoleAction string

const (
	RoleActionCreate RoleAction = "create"
	RoleActionUpdate RoleAction = "update"
)

// HolidayStateChange means a holiday's active state differs from its last
// committed status and the guild's roles need syncing. The create-vs-update
// decision is made by the delivery layer against the guild's live role list;
// the core only supplies the target name.
type HolidayStateChange struct {
	Holiday        Holiday
	DaysUntil      int
	OccurrenceYear int
	BecameActive   bool
	RoleName       string // "<Name> MM-DD"
}

// PhaseAnnouncement means an announcement phase is due for one occurrence of
// a holiday. Message is fully rendered; ChannelID comes from guild settings.
type PhaseAnnouncement struct {
	Holiday        Holiday
	Phase          domain.Phase
	OccurrenceYear int
	DaysUntil      int
	ChannelID      string
	Message        string
}

// Evaluation is the result of one holiday check for one guild. DryRun tags
// the whole batch as non-committing.
type Evaluation struct {
	GuildID     string
	AsOf        time.Time
	DryRun      bool
	Changes     []HolidayStateChange
	DuePhases   []PhaseAnnouncement
	SettingsVer int64 // settings version the evaluation was computed against
}

// EvaluationOutcome reports back which intents the caller actually executed.
// Only the reported subset is committed.
type EvaluationOutcome struct {
	AppliedChanges []HolidayStateChange
	SentPhases     []PhaseAnnouncement
}

// DueJob is an announcement job whose fire time has arrived. ScheduledFor is
// the originally scheduled time, which may be in the past after downtime.
type DueJob struct {
	Job          AnnouncementJob
	ScheduledFor time.Time
}
