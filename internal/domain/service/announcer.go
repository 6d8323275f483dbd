package service

import (
	"strconv"
	"strings"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// Default announcement templates per phase. A holiday can override any phase
// via its Templates map. {server_name} is left for the delivery layer, which
// is the only place the guild's display name is known.
var defaultTemplates = map[domain.Phase]string{
	domain.PhaseBefore: "Upcoming Holiday: {holiday_name}! Get ready, {holiday_name} arrives in {days_until} days on {holiday_date}.",
	domain.PhaseStart:  "Happy {holiday_name}! Today is {holiday_name}, celebrate with us and enjoy this special day.",
	domain.PhaseEnd:    "{holiday_name} has ended. Hope you enjoyed it, see you next year!",
}

// MentionPrefix builds the leading mention for a guild's announcements, per
// its configured mention target.
func MentionPrefix(settings *entity.GuildSettings) string {
	switch settings.MentionType {
	case "everyone":
		return "@everyone "
	case "here":
		return "@here "
	case "role":
		if settings.MentionRoleID != "" {
			return "<@&" + settings.MentionRoleID + "> "
		}
	}
	return ""
}

// RenderAnnouncement builds the announcement text for a holiday phase,
// substituting the holiday placeholders. Substitution of {server_name} is
// deferred to delivery.
func RenderAnnouncement(h *entity.Holiday, phase domain.Phase, daysUntil int) string {
	template := defaultTemplates[phase]
	if custom, ok := h.Templates[phase]; ok && strings.TrimSpace(custom) != "" {
		template = custom
	}

	replacer := strings.NewReplacer(
		domain.PlaceholderHolidayName, h.Name,
		domain.PlaceholderHolidayDate, h.Date,
		domain.PlaceholderDaysUntil, strconv.Itoa(daysUntil),
	)
	return replacer.Replace(template)
}
