package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/holiday"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/role"
)

type holidayService struct {
	dm  contract.DataManager
	log zerolog.Logger
}

func newHolidayService(dm contract.DataManager, log zerolog.Logger) *holidayService {
	return &holidayService{
		dm:  dm,
		log: log.With().Str("component", "holiday-service").Logger(),
	}
}

func validateHoliday(h *entity.Holiday) error {
	if err := holiday.ValidateName(h.Name); err != nil {
		return err
	}
	if err := holiday.ValidateDate(h.Date); err != nil {
		return err
	}
	if err := holiday.ValidateColor(h.Color); err != nil {
		return err
	}
	for phase := range h.Templates {
		if !phase.Valid() {
			return &domain.ValidationError{Field: "template phase", Value: string(phase), Rule: "must be before, start or end"}
		}
	}
	return nil
}

func (s *holidayService) AddHoliday(ctx context.Context, guildID string, h entity.Holiday) error {
	if err := validateHoliday(&h); err != nil {
		return err
	}

	existing, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	if holiday.Find(existing, h.Name) != nil {
		return fmt.Errorf("holiday %q: %w", h.Name, domain.ErrDuplicateName)
	}

	h.GuildID = guildID
	if err := s.dm.Holiday().Upsert(&h); err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}

	s.log.Info().Str("guild_id", guildID).Str("holiday", h.Name).Str("date", h.Date).Msg("holiday added")
	return nil
}

func (s *holidayService) EditHoliday(ctx context.Context, guildID, name string, update entity.Holiday) error {
	existing, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	current := holiday.Find(existing, name)
	if current == nil {
		return fmt.Errorf("holiday %q: %w", name, domain.ErrNotFound)
	}

	// Empty update fields keep the current value.
	if update.Date == "" {
		update.Date = current.Date
	}
	if update.Color == "" {
		update.Color = current.Color
	}
	if update.Banner == "" {
		update.Banner = current.Banner
	}
	if update.Templates == nil {
		update.Templates = current.Templates
	}
	update.Name = current.Name
	update.GuildID = guildID
	update.ID = current.ID

	if err := validateHoliday(&update); err != nil {
		return err
	}
	if err := s.dm.Holiday().Upsert(&update); err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}

	s.log.Info().Str("guild_id", guildID).Str("holiday", update.Name).Msg("holiday updated")
	return nil
}

func (s *holidayService) RemoveHoliday(ctx context.Context, guildID, name string) error {
	existing, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	current := holiday.Find(existing, name)
	if current == nil {
		return fmt.Errorf("holiday %q: %w", name, domain.ErrNotFound)
	}

	// Drop the status and phase history with the definition so a re-added
	// holiday starts a fresh lifecycle.
	err = s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Holiday().Remove(guildID, current.Name); err != nil {
			return fmt.Errorf("failed to remove holiday: %w", err)
		}
		if err := dm.Status().Remove(guildID, current.Name); err != nil {
			return fmt.Errorf("failed to remove holiday status: %w", err)
		}
		if err := dm.Phase().ClearHoliday(guildID, current.Name); err != nil {
			return fmt.Errorf("failed to clear phase records: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("guild_id", guildID).Str("holiday", current.Name).Msg("holiday removed")
	return nil
}

// ListHolidays returns the guild's holidays sorted by days until their next
// occurrence, closest first, along with the distance map.
func (s *holidayService) ListHolidays(ctx context.Context, guildID string) ([]entity.Holiday, map[string]int, error) {
	holidays, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	daysUntil, _ := holiday.SortedUpcoming(holidays, time.Now().UTC())
	sort.SliceStable(holidays, func(i, j int) bool {
		return daysUntil[holidays[i].Name] < daysUntil[holidays[j].Name]
	})
	return holidays, daysUntil, nil
}

func (s *holidayService) SetTemplate(ctx context.Context, guildID, name string, phase domain.Phase, template string) error {
	if !phase.Valid() {
		return &domain.ValidationError{Field: "phase", Value: string(phase), Rule: "must be before, start or end"}
	}

	existing, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}
	current := holiday.Find(existing, name)
	if current == nil {
		return fmt.Errorf("holiday %q: %w", name, domain.ErrNotFound)
	}

	if current.Templates == nil {
		current.Templates = entity.Templates{}
	}
	if strings.TrimSpace(template) == "" {
		delete(current.Templates, phase)
	} else {
		current.Templates[phase] = template
	}

	if err := s.dm.Holiday().Upsert(current); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// CheckHolidays is the central decision procedure. It computes, for the
// given instant, which holidays changed activation state and which
// announcement phases are due, purely from the persisted snapshot. Nothing
// is written here; the caller executes the returned intents and reports the
// outcome through CommitEvaluation.
func (s *holidayService) CheckHolidays(ctx context.Context, guildID string, asOf time.Time) (*entity.Evaluation, error) {
	settings, err := s.loadSettings(guildID)
	if err != nil {
		return nil, err
	}

	holidays, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	statuses, err := s.dm.Status().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday statuses: %w", err)
	}
	phaseRecords, err := s.dm.Phase().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load phase records: %w", err)
	}
	sent := phaseIndex(phaseRecords)

	// Stable iteration order keeps evaluations reproducible.
	sort.SliceStable(holidays, func(i, j int) bool {
		return strings.ToLower(holidays[i].Name) < strings.ToLower(holidays[j].Name)
	})

	asOf = asOf.UTC()
	eval := &entity.Evaluation{
		GuildID:     guildID,
		AsOf:        asOf,
		DryRun:      settings.DryRun,
		SettingsVer: settings.Version,
	}

	announceable := settings.AnnounceEnabled && settings.AnnounceChannel != ""
	leadDays := settings.LeadDays()
	mention := MentionPrefix(settings)

	for i := range holidays {
		h := holidays[i]
		days, err := holiday.DaysUntil(asOf, h.Date)
		if err != nil {
			s.log.Warn().Str("guild_id", guildID).Str("holiday", h.Name).Err(err).Msg("skipping holiday with unparseable date")
			continue
		}
		since, err := holiday.DaysSincePrevious(asOf, h.Date)
		if err != nil {
			continue
		}
		occYear, err := holiday.OccurrenceYear(asOf, h.Date)
		if err != nil {
			continue
		}

		active := days == 0
		status, known := statuses[h.Name]
		wasActive := known && status.Active

		if active != wasActive {
			eval.Changes = append(eval.Changes, entity.HolidayStateChange{
				Holiday:        h,
				DaysUntil:      days,
				OccurrenceYear: occYear,
				BecameActive:   active,
				RoleName:       role.Name(h.Name, h.Date),
			})
		}

		if !announceable {
			continue
		}

		for _, phase := range domain.Phases {
			// The occurrence an "end" announcement belongs to is the one that
			// just passed, which is always one year behind the next.
			year := occYear
			if phase == domain.PhaseEnd && days > 0 {
				year = occYear - 1
			}
			already := false
			if _, ok := sent[phaseKey{holiday: h.Name, year: year, phase: phase}]; ok {
				already = true
			}
			if !isPhaseDue(phase, days, since, leadDays, already) {
				continue
			}
			eval.DuePhases = append(eval.DuePhases, entity.PhaseAnnouncement{
				Holiday:        h,
				Phase:          phase,
				OccurrenceYear: year,
				DaysUntil:      days,
				ChannelID:      settings.AnnounceChannel,
				Message:        mention + RenderAnnouncement(&h, phase, days),
			})
		}
	}

	s.log.Debug().
		Str("guild_id", guildID).
		Time("as_of", asOf).
		Int("changes", len(eval.Changes)).
		Int("due_phases", len(eval.DuePhases)).
		Bool("dry_run", eval.DryRun).
		Msg("holiday check evaluated")
	return eval, nil
}

// ForceHoliday fabricates a becameActive change for one holiday regardless
// of the calendar. It does not touch any other holiday's recorded status.
func (s *holidayService) ForceHoliday(ctx context.Context, guildID, name string) (*entity.HolidayStateChange, error) {
	holidays, err := s.dm.Holiday().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	h := holiday.Find(holidays, name)
	if h == nil {
		return nil, fmt.Errorf("holiday %q: %w", name, domain.ErrNotFound)
	}

	now := time.Now().UTC()
	days, err := holiday.DaysUntil(now, h.Date)
	if err != nil {
		return nil, err
	}
	occYear, err := holiday.OccurrenceYear(now, h.Date)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("guild_id", guildID).Str("holiday", h.Name).Msg("holiday force-activated")
	return &entity.HolidayStateChange{
		Holiday:        *h,
		DaysUntil:      days,
		OccurrenceYear: occYear,
		BecameActive:   true,
		RoleName:       role.Name(h.Name, h.Date),
	}, nil
}

// CommitEvaluation persists the reported outcome of an evaluation: status
// rows for applied changes and sent markers for delivered phases, all inside
// one transaction. The settings version is CAS-checked so two overlapping
// evaluations for the same guild cannot both commit. Dry-run evaluations
// commit nothing.
func (s *holidayService) CommitEvaluation(ctx context.Context, eval *entity.Evaluation, outcome entity.EvaluationOutcome) error {
	if eval.DryRun {
		s.log.Info().Str("guild_id", eval.GuildID).Msg("dry run: evaluation outcome not committed")
		return nil
	}
	if len(outcome.AppliedChanges) == 0 && len(outcome.SentPhases) == 0 {
		return nil
	}

	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		err := dm.Settings().UpdateVersioned(eval.GuildID, eval.SettingsVer, func(st *entity.GuildSettings) {})
		if err != nil {
			return fmt.Errorf("evaluation commit rejected: %w", err)
		}

		for _, change := range outcome.AppliedChanges {
			status := &entity.HolidayStatus{
				GuildID:        eval.GuildID,
				HolidayName:    change.Holiday.Name,
				Active:         change.BecameActive,
				OccurrenceYear: change.OccurrenceYear,
				UpdatedAt:      eval.AsOf,
			}
			if err := dm.Status().Upsert(status); err != nil {
				return fmt.Errorf("failed to persist status for %q: %w", change.Holiday.Name, err)
			}
		}

		for _, phase := range outcome.SentPhases {
			record := &entity.PhaseRecord{
				GuildID:        eval.GuildID,
				HolidayName:    phase.Holiday.Name,
				OccurrenceYear: phase.OccurrenceYear,
				Phase:          phase.Phase,
				SentAt:         eval.AsOf,
			}
			if err := dm.Phase().MarkSent(record); err != nil {
				return fmt.Errorf("failed to mark %s phase sent for %q: %w", phase.Phase, phase.Holiday.Name, err)
			}
		}
		return nil
	})
}

func (s *holidayService) SetDryRun(ctx context.Context, guildID string, enabled bool) error {
	settings, err := s.loadSettings(guildID)
	if err != nil {
		return err
	}
	settings.DryRun = enabled
	if err := s.dm.Settings().Upsert(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Info().Str("guild_id", guildID).Bool("enabled", enabled).Msg("dry run toggled")
	return nil
}

// SetAnnounceChannel points phase announcements at a channel and switches
// announcements on; configuring a channel and leaving them off is never what
// anyone means.
func (s *holidayService) SetAnnounceChannel(ctx context.Context, guildID, channelID string) error {
	settings, err := s.loadSettings(guildID)
	if err != nil {
		return err
	}
	settings.AnnounceChannel = channelID
	settings.AnnounceEnabled = channelID != ""
	if err := s.dm.Settings().Upsert(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Info().Str("guild_id", guildID).Str("channel_id", channelID).Msg("announce channel set")
	return nil
}

func (s *holidayService) SetAnnounceEnabled(ctx context.Context, guildID string, enabled bool) error {
	settings, err := s.loadSettings(guildID)
	if err != nil {
		return err
	}
	settings.AnnounceEnabled = enabled
	if err := s.dm.Settings().Upsert(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.log.Info().Str("guild_id", guildID).Bool("enabled", enabled).Msg("announcements toggled")
	return nil
}

func (s *holidayService) SetMention(ctx context.Context, guildID, mentionType, roleID string) error {
	switch mentionType {
	case "", "everyone", "here":
	case "role":
		if roleID == "" {
			return &domain.ValidationError{Field: "mention_role_id", Value: roleID, Rule: "required for role mentions"}
		}
	default:
		return &domain.ValidationError{Field: "mention_type", Value: mentionType, Rule: "must be everyone, here, role or empty"}
	}

	settings, err := s.loadSettings(guildID)
	if err != nil {
		return err
	}
	settings.MentionType = mentionType
	settings.MentionRoleID = roleID
	if err := s.dm.Settings().Upsert(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *holidayService) Settings(ctx context.Context, guildID string) (*entity.GuildSettings, error) {
	return s.loadSettings(guildID)
}

func (s *holidayService) OptOutAdd(ctx context.Context, guildID, memberID string) error {
	if err := s.dm.OptOut().Add(guildID, memberID); err != nil {
		return fmt.Errorf("failed to add opt-out: %w", err)
	}
	return nil
}

func (s *holidayService) OptOutRemove(ctx context.Context, guildID, memberID string) error {
	if err := s.dm.OptOut().Remove(guildID, memberID); err != nil {
		return fmt.Errorf("failed to remove opt-out: %w", err)
	}
	return nil
}

func (s *holidayService) OptOuts(ctx context.Context, guildID string) (map[string]struct{}, error) {
	optOuts, err := s.dm.OptOut().GetByGuild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opt-outs: %w", err)
	}
	return optOuts, nil
}

// loadSettings returns the guild's settings, falling back to defaults for a
// guild that has never been configured.
func (s *holidayService) loadSettings(guildID string) (*entity.GuildSettings, error) {
	settings, err := s.dm.Settings().Get(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}
	if settings == nil {
		settings = &entity.GuildSettings{
			GuildID:          guildID,
			AnnounceLeadDays: domain.DefaultAnnounceLeadDays,
		}
	}
	return settings, nil
}
