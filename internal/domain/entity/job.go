package entity

import (
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
)

// AnnouncementJob is an independently scheduled announcement: either
// one-time (Recurrence empty, NextFireAt is the single fire time) or
// recurring (NextFireAt advances by the recurrence interval after each fire).
type AnnouncementJob struct {
	ID         string            `json:"id" db:"id"` // uuid
	GuildID    string            `json:"guild_id" db:"guild_id"`
	ChannelID  string            `json:"channel_id" db:"channel_id"`
	Content    string            `json:"content" db:"content"`
	Embed      bool              `json:"embed" db:"embed"`
	Title      string            `json:"title,omitempty" db:"title"`
	Recurrence domain.Recurrence `json:"recurrence" db:"recurrence"`
	NextFireAt time.Time         `json:"next_fire_at" db:"next_fire_at"`
	Enabled    bool              `json:"enabled" db:"enabled"`
	LastFired  *time.Time        `json:"last_fired,omitempty" db:"last_fired"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}

// OneTime reports whether the job fires once and is then removed.
func (j *AnnouncementJob) OneTime() bool {
	return j.Recurrence == domain.RecurrenceNone
}

// Render builds the message body, prefixing the optional title in bold.
func (j *AnnouncementJob) Render() string {
	if j.Title == "" {
		return j.Content
	}
	return "**" + j.Title + "**\n" + j.Content
}
