package database

import (
	"fmt"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type phaseRepo struct {
	db dbConn
}

func newPhaseRepo(db dbConn) contract.PhaseRepo {
	return &phaseRepo{db: db}
}

func (r *phaseRepo) GetByGuild(guildID string) ([]entity.PhaseRecord, error) {
	query := `
		SELECT guild_id, holiday_name, occurrence_year, phase, sent_at
		FROM phase_records
		WHERE guild_id = ?
	`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase records: %w", err)
	}
	defer rows.Close()

	var records []entity.PhaseRecord
	for rows.Next() {
		var rec entity.PhaseRecord
		err := rows.Scan(&rec.GuildID, &rec.HolidayName, &rec.OccurrenceYear, &rec.Phase, &rec.SentAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MarkSent is idempotent: re-marking an already sent phase is a no-op, so a
// retried commit cannot double-record.
func (r *phaseRepo) MarkSent(rec *entity.PhaseRecord) error {
	query := `
		INSERT INTO phase_records (guild_id, holiday_name, occurrence_year, phase, sent_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (guild_id, holiday_name, occurrence_year, phase) DO NOTHING
	`

	_, err := r.db.Exec(query, rec.GuildID, rec.HolidayName, rec.OccurrenceYear, rec.Phase, rec.SentAt)
	if err != nil {
		return fmt.Errorf("failed to mark phase sent: %w", err)
	}
	return nil
}

func (r *phaseRepo) ClearHoliday(guildID, holidayName string) error {
	_, err := r.db.Exec(`DELETE FROM phase_records WHERE guild_id = ? AND holiday_name = ?`, guildID, holidayName)
	if err != nil {
		return fmt.Errorf("failed to clear phase records: %w", err)
	}
	return nil
}
