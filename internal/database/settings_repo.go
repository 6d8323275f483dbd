package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(guildID string) (*entity.GuildSettings, error) {
	settings := &entity.GuildSettings{}
	query := `
		SELECT guild_id, dry_run, announce_enabled, announce_channel,
			mention_type, mention_role_id, announce_lead_days, version, updated_at
		FROM guild_settings
		WHERE guild_id = ?
	`

	err := r.db.QueryRow(query, guildID).Scan(
		&settings.GuildID,
		&settings.DryRun,
		&settings.AnnounceEnabled,
		&settings.AnnounceChannel,
		&settings.MentionType,
		&settings.MentionRoleID,
		&settings.AnnounceLeadDays,
		&settings.Version,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepo) Upsert(settings *entity.GuildSettings) error {
	query := `
		INSERT INTO guild_settings (guild_id, dry_run, announce_enabled, announce_channel,
			mention_type, mention_role_id, announce_lead_days, version, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)
		ON CONFLICT (guild_id) DO UPDATE SET
			dry_run = excluded.dry_run,
			announce_enabled = excluded.announce_enabled,
			announce_channel = excluded.announce_channel,
			mention_type = excluded.mention_type,
			mention_role_id = excluded.mention_role_id,
			announce_lead_days = excluded.announce_lead_days,
			version = guild_settings.version + 1,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		settings.GuildID,
		settings.DryRun,
		settings.AnnounceEnabled,
		settings.AnnounceChannel,
		settings.MentionType,
		settings.MentionRoleID,
		settings.AnnounceLeadDays,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert guild settings: %w", err)
	}
	return nil
}

// UpdateVersioned is the compare-and-swap primitive behind evaluation
// commits: the mutation applies only when the stored version still matches
// expected, and every successful apply bumps the version. A guild with no
// settings row is at version 0.
func (r *settingsRepo) UpdateVersioned(guildID string, expected int64, fn func(s *entity.GuildSettings)) error {
	current, err := r.Get(guildID)
	if err != nil {
		return err
	}

	if current == nil {
		if expected != 0 {
			return fmt.Errorf("guild %s settings: %w", guildID, domain.ErrStaleWrite)
		}
		current = &entity.GuildSettings{
			GuildID:          guildID,
			AnnounceLeadDays: domain.DefaultAnnounceLeadDays,
		}
		fn(current)
		query := `
			INSERT INTO guild_settings (guild_id, dry_run, announce_enabled, announce_channel,
				mention_type, mention_role_id, announce_lead_days, version, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?)
			ON CONFLICT (guild_id) DO NOTHING
		`
		result, err := r.db.Exec(query,
			current.GuildID, current.DryRun, current.AnnounceEnabled, current.AnnounceChannel,
			current.MentionType, current.MentionRoleID, current.AnnounceLeadDays, time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert guild settings: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check insert result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("guild %s settings: %w", guildID, domain.ErrStaleWrite)
		}
		return nil
	}

	fn(current)
	query := `
		UPDATE guild_settings SET
			dry_run = ?,
			announce_enabled = ?,
			announce_channel = ?,
			mention_type = ?,
			mention_role_id = ?,
			announce_lead_days = ?,
			version = version + 1,
			updated_at = ?
		WHERE guild_id = ? AND version = ?
	`

	result, err := r.db.Exec(query,
		current.DryRun,
		current.AnnounceEnabled,
		current.AnnounceChannel,
		current.MentionType,
		current.MentionRoleID,
		current.AnnounceLeadDays,
		time.Now().UTC(),
		guildID,
		expected,
	)
	if err != nil {
		return fmt.Errorf("failed to update guild settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("guild %s settings: %w", guildID, domain.ErrStaleWrite)
	}
	return nil
}
