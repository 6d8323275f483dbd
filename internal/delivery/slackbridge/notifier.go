// Package slackbridge mirrors guild announcements into Slack. It is a
// message-only delivery target: role changes have no Slack counterpart and
// are reported as unsupported.
package slackbridge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// Notifier posts every announcement into one configured Slack channel.
// Guild channel ids mean nothing to Slack, so the target is fixed at
// construction.
type Notifier struct {
	client  *slack.Client
	channel string
	log     zerolog.Logger
}

func New(client *slack.Client, channel string, log zerolog.Logger) *Notifier {
	return &Notifier{
		client:  client,
		channel: channel,
		log:     log.With().Str("component", "slack-notifier").Logger(),
	}
}

var _ contract.Notifier = (*Notifier)(nil)

func (n *Notifier) SendMessage(ctx context.Context, channelID, content string) error {
	_, _, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(content, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to channel %s: %w", n.channel, err)
	}
	return nil
}

// SyncRole is a no-op: Slack has no guild role concept. It logs and reports
// success so a mixed delivery setup never blocks the commit of a change that
// Discord already applied.
func (n *Notifier) SyncRole(ctx context.Context, guildID string, change entity.HolidayStateChange, assignees []string) error {
	n.log.Debug().
		Str("guild_id", guildID).
		Str("role", change.RoleName).
		Bool("became_active", change.BecameActive).
		Msg("role sync skipped: no Slack equivalent")
	return nil
}
