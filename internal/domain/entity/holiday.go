package entity

import (
	"fmt"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
)

// Holiday is a guild-scoped holiday definition. The name is the identity and
// is unique per guild, compared case-insensitively.
type Holiday struct {
	ID        int64     `json:"id" db:"id"`
	GuildID   string    `json:"guild_id" db:"guild_id"`
	Name      string    `json:"name" db:"name"`
	Date      string    `json:"date" db:"date"`   // MM-DD, year-less
	Color     string    `json:"color" db:"color"` // #RRGGBB
	Banner    string    `json:"banner,omitempty" db:"banner"`
	Templates Templates `json:"templates,omitempty" db:"templates"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (h *Holiday) String() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.Date)
}

// Templates holds optional per-phase announcement overrides. A missing phase
// falls back to the default template for that phase.
type Templates map[domain.Phase]string

// HolidayStatus is the last committed activation state for one holiday in one
// guild. OccurrenceYear records which occurrence the state belongs to, so a
// stale "active" from last year is distinguishable from this year's.
type HolidayStatus struct {
	GuildID        string    `json:"guild_id" db:"guild_id"`
	HolidayName    string    `json:"holiday_name" db:"holiday_name"`
	Active         bool      `json:"active" db:"active"`
	OccurrenceYear int       `json:"occurrence_year" db:"occurrence_year"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PhaseRecord marks one announcement phase as sent for one occurrence of a
// holiday. Keying on the occurrence year resets the lifecycle automatically
// when the date wraps into the next calendar year.
type PhaseRecord struct {
	GuildID        string       `json:"guild_id" db:"guild_id"`
	HolidayName    string       `json:"holiday_name" db:"holiday_name"`
	OccurrenceYear int          `json:"occurrence_year" db:"occurrence_year"`
	Phase          domain.Phase `json:"phase" db:"phase"`
	SentAt         time.Time    `json:"sent_at" db:"sent_at"`
}

// GuildSettings is the per-guild configuration record, loaded once per
// evaluation. Version is a compare-and-swap token bumped on every commit so
// two overlapping evaluations cannot both apply their deltas.
type GuildSettings struct {
	GuildID          string    `json:"guild_id" db:"guild_id"`
	DryRun           bool      `json:"dry_run" db:"dry_run"`
	AnnounceEnabled  bool      `json:"announce_enabled" db:"announce_enabled"`
	AnnounceChannel  string    `json:"announce_channel" db:"announce_channel"`
	MentionType      string    `json:"mention_type,omitempty" db:"mention_type"` // "", "everyone", "here", "role"
	MentionRoleID    string    `json:"mention_role_id,omitempty" db:"mention_role_id"`
	AnnounceLeadDays int       `json:"announce_lead_days" db:"announce_lead_days"`
	Version          int64     `json:"version" db:"version"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// LeadDays returns the configured "before" window, falling back to the
// default when unset.
func (s *GuildSettings) LeadDays() int {
	if s == nil || s.AnnounceLeadDays <= 0 {
		return domain.DefaultAnnounceLeadDays
	}
	return s.AnnounceLeadDays
}
