// Package delivery composes notifiers. The primary target decides success;
// mirror targets are best-effort copies.
package delivery

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// Fanout forwards every intent to the primary notifier and mirrors messages
// to the rest. A mirror failure is logged, never propagated: the primary's
// result alone decides whether a phase or job counts as delivered.
type Fanout struct {
	primary contract.Notifier
	mirrors []contract.Notifier
	log     zerolog.Logger
}

func NewFanout(primary contract.Notifier, log zerolog.Logger, mirrors ...contract.Notifier) *Fanout {
	return &Fanout{
		primary: primary,
		mirrors: mirrors,
		log:     log.With().Str("component", "delivery-fanout").Logger(),
	}
}

var _ contract.Notifier = (*Fanout)(nil)

func (f *Fanout) SendMessage(ctx context.Context, channelID, content string) error {
	if err := f.primary.SendMessage(ctx, channelID, content); err != nil {
		return err
	}
	for _, mirror := range f.mirrors {
		if err := mirror.SendMessage(ctx, channelID, content); err != nil {
			f.log.Warn().Err(err).Msg("mirror delivery failed")
		}
	}
	return nil
}

func (f *Fanout) SyncRole(ctx context.Context, guildID string, change entity.HolidayStateChange, assignees []string) error {
	if err := f.primary.SyncRole(ctx, guildID, change, assignees); err != nil {
		return err
	}
	for _, mirror := range f.mirrors {
		if err := mirror.SyncRole(ctx, guildID, change, assignees); err != nil {
			f.log.Warn().Err(err).Msg("mirror role sync failed")
		}
	}
	return nil
}
