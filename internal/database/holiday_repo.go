package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type holidayRepo struct {
	db dbConn
}

func newHolidayRepo(db dbConn) contract.HolidayRepo {
	return &holidayRepo{db: db}
}

func (r *holidayRepo) Upsert(h *entity.Holiday) error {
	templatesJSON, err := json.Marshal(h.Templates)
	if err != nil {
		return fmt.Errorf("failed to marshal templates: %w", err)
	}

	query := `
		INSERT INTO holidays (guild_id, name, date, color, banner, templates)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (guild_id, name) DO UPDATE SET
			date = excluded.date,
			color = excluded.color,
			banner = excluded.banner,
			templates = excluded.templates,
			updated_at = CURRENT_TIMESTAMP
	`

	result, err := r.db.Exec(query,
		h.GuildID,
		h.Name,
		h.Date,
		h.Color,
		h.Banner,
		string(templatesJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}

	if h.ID == 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		h.ID = id
	}
	return nil
}

func (r *holidayRepo) GetByGuild(guildID string) ([]entity.Holiday, error) {
	query := `
		SELECT id, guild_id, name, date, color, banner, templates, created_at, updated_at
		FROM holidays
		WHERE guild_id = ?
		ORDER BY name COLLATE NOCASE
	`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays: %w", err)
	}
	defer rows.Close()

	var holidays []entity.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows.Scan)
		if err != nil {
			return nil, err
		}
		holidays = append(holidays, *h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepo) GetByName(guildID, name string) (*entity.Holiday, error) {
	query := `
		SELECT id, guild_id, name, date, color, banner, templates, created_at, updated_at
		FROM holidays
		WHERE guild_id = ? AND name = ?
	`

	h, err := scanHoliday(r.db.QueryRow(query, guildID, name).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *holidayRepo) Remove(guildID, name string) error {
	_, err := r.db.Exec(`DELETE FROM holidays WHERE guild_id = ? AND name = ?`, guildID, name)
	if err != nil {
		return fmt.Errorf("failed to remove holiday: %w", err)
	}
	return nil
}

func scanHoliday(scan func(dest ...interface{}) error) (*entity.Holiday, error) {
	h := &entity.Holiday{}
	var templatesJSON string
	var createdAt, updatedAt time.Time

	err := scan(
		&h.ID,
		&h.GuildID,
		&h.Name,
		&h.Date,
		&h.Color,
		&h.Banner,
		&templatesJSON,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan holiday: %w", err)
	}

	if templatesJSON != "" && templatesJSON != "{}" && templatesJSON != "null" {
		if err := json.Unmarshal([]byte(templatesJSON), &h.Templates); err != nil {
			return nil, fmt.Errorf("failed to unmarshal templates: %w", err)
		}
	}
	h.CreatedAt = createdAt
	h.UpdatedAt = updatedAt
	return h, nil
}
