package service

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

//go:embed holidays.json
var seedFiles embed.FS

// ImportDefaults loads the embedded holiday catalog into a guild, skipping
// any name already present. Returns how many holidays were added.
func (s *holidayService) ImportDefaults(ctx context.Context, guildID string) (int, error) {
	raw, err := seedFiles.ReadFile("holidays.json")
	if err != nil {
		return 0, fmt.Errorf("failed to read holiday catalog: %w", err)
	}

	var seed []entity.Holiday
	if err := json.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse holiday catalog: %w", err)
	}

	added := 0
	for _, h := range seed {
		err := s.AddHoliday(ctx, guildID, h)
		if errors.Is(err, domain.ErrDuplicateName) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("failed to import %q: %w", h.Name, err)
		}
		added++
	}

	s.log.Info().Str("guild_id", guildID).Int("added", added).Msg("default holidays imported")
	return added, nil
}
