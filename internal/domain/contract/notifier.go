package contract

import (
	"context"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

// Notifier is the delivery collaborator: it executes the intents the core
// computes. Implementations wrap a chat platform SDK; the core only ever
// hands them structured content.
// This allows mocking in tests while keeping the real implementations simple.
type Notifier interface {
	// SendMessage delivers an announcement to a channel. A returned error
	// means "not sent": the caller must not commit the phase or job as fired.
	SendMessage(ctx context.Context, channelID, content string) error

	// SyncRole applies one holiday state change: create-or-update the managed
	// role and assign it (becameActive) or strip it from every holder
	// (becameInactive). Assignees have already been filtered for opt-outs.
	SyncRole(ctx context.Context, guildID string, change entity.HolidayStateChange, assignees []string) error
}
