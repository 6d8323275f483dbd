package database

import (
	"fmt"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
)

type optOutRepo struct {
	db dbConn
}

func newOptOutRepo(db dbConn) contract.OptOutRepo {
	return &optOutRepo{db: db}
}

func (r *optOutRepo) Add(guildID, memberID string) error {
	query := `
		INSERT INTO opt_outs (guild_id, member_id)
		VALUES (?, ?)
		ON CONFLICT (guild_id, member_id) DO NOTHING
	`

	_, err := r.db.Exec(query, guildID, memberID)
	if err != nil {
		return fmt.Errorf("failed to add opt-out: %w", err)
	}
	return nil
}

func (r *optOutRepo) Remove(guildID, memberID string) error {
	_, err := r.db.Exec(`DELETE FROM opt_outs WHERE guild_id = ? AND member_id = ?`, guildID, memberID)
	if err != nil {
		return fmt.Errorf("failed to remove opt-out: %w", err)
	}
	return nil
}

func (r *optOutRepo) GetByGuild(guildID string) (map[string]struct{}, error) {
	rows, err := r.db.Query(`SELECT member_id FROM opt_outs WHERE guild_id = ?`, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get opt-outs: %w", err)
	}
	defer rows.Close()

	optOuts := make(map[string]struct{})
	for rows.Next() {
		var memberID string
		if err := rows.Scan(&memberID); err != nil {
			return nil, fmt.Errorf("failed to scan opt-out: %w", err)
		}
		optOuts[memberID] = struct{}{}
	}
	return optOuts, rows.Err()
}
