package domain

// Phase identifies a stage of a holiday's announcement lifecycle.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseStart  Phase = "start"
	PhaseEnd    Phase = "end"
)

// Phases lists all phases in lifecycle order.
var Phases = []Phase{PhaseBefore, PhaseStart, PhaseEnd}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseBefore, PhaseStart, PhaseEnd:
		return true
	}
	return false
}

// Recurrence identifies how a recurring announcement job repeats.
// The empty value marks a one-time job.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Valid reports whether r is a known recurrence interval.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// DefaultAnnounceLeadDays is how many days before a holiday the "before"
// announcement window opens.
const DefaultAnnounceLeadDays = 7

// Message template placeholders substituted by the announcer.
const (
	PlaceholderHolidayName = "{holiday_name}"
	PlaceholderHolidayDate = "{holiday_date}"
	PlaceholderDaysUntil   = "{days_until}"
	PlaceholderServerName  = "{server_name}"
)
