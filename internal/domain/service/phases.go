package service

import (
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// phaseKey identifies one announcement phase of one holiday occurrence.
// Keying on the occurrence year means last year's records never suppress
// this year's announcements.
type phaseKey struct {
	holiday string
	year    int
	phase   domain.Phase
}

// phaseIndex builds a sent-lookup from persisted phase records.
func phaseIndex(records []entity.PhaseRecord) map[phaseKey]time.Time {
	sent := make(map[phaseKey]time.Time, len(records))
	for _, r := range records {
		sent[phaseKey{holiday: r.HolidayName, year: r.OccurrenceYear, phase: r.Phase}] = r.SentAt
	}
	return sent
}

// isPhaseDue is the transition guard for one phase of one occurrence.
//
//   - before: due any day within the lead window (lead..1 days out), once per
//     occurrence. The window, rather than an exact-day check, means a check
//     skipped on day 7 still announces on day 6.
//   - start: due on the day itself.
//   - end: due any day within the lead window after the occurrence
//     (1..lead days since). Calendar-only on purpose: the committed role
//     status may already say inactive when an earlier end announcement
//     failed to send, and that must not suppress the retry. alreadySent
//     keeps every phase single-shot per occurrence.
func isPhaseDue(phase domain.Phase, daysUntil, daysSince, leadDays int, alreadySent bool) bool {
	if alreadySent {
		return false
	}
	switch phase {
	case domain.PhaseBefore:
		return daysUntil > 0 && daysUntil <= leadDays
	case domain.PhaseStart:
		return daysUntil == 0
	case domain.PhaseEnd:
		return daysSince > 0 && daysSince <= leadDays
	}
	return false
}
