package database

import (
	"fmt"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type statusRepo struct {
	db dbConn
}

func newStatusRepo(db dbConn) contract.StatusRepo {
	return &statusRepo{db: db}
}

func (r *statusRepo) GetByGuild(guildID string) (map[string]entity.HolidayStatus, error) {
	query := `
		SELECT guild_id, holiday_name, active, occurrence_year, updated_at
		FROM holiday_statuses
		WHERE guild_id = ?
	`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday statuses: %w", err)
	}
	defer rows.Close()

	statuses := make(map[string]entity.HolidayStatus)
	for rows.Next() {
		var s entity.HolidayStatus
		err := rows.Scan(&s.GuildID, &s.HolidayName, &s.Active, &s.OccurrenceYear, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday status: %w", err)
		}
		statuses[s.HolidayName] = s
	}
	return statuses, rows.Err()
}

func (r *statusRepo) Upsert(s *entity.HolidayStatus) error {
	query := `
		INSERT INTO holiday_statuses (guild_id, holiday_name, active, occurrence_year, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (guild_id, holiday_name) DO UPDATE SET
			active = excluded.active,
			occurrence_year = excluded.occurrence_year,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, s.GuildID, s.HolidayName, s.Active, s.OccurrenceYear, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday status: %w", err)
	}
	return nil
}

func (r *statusRepo) Remove(guildID, holidayName string) error {
	_, err := r.db.Exec(`DELETE FROM holiday_statuses WHERE guild_id = ? AND holiday_name = ?`, guildID, holidayName)
	if err != nil {
		return fmt.Errorf("failed to remove holiday status: %w", err)
	}
	return nil
}
