// Package discord delivers role changes and announcements to Discord guilds.
// It is the only package that talks to the Discord API; everything it does is
// driven by intents computed elsewhere.
package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/role"
)

type Notifier struct {
	session *discordgo.Session
	log     zerolog.Logger
}

func New(session *discordgo.Session, log zerolog.Logger) *Notifier {
	return &Notifier{
		session: session,
		log:     log.With().Str("component", "discord-notifier").Logger(),
	}
}

var _ contract.Notifier = (*Notifier)(nil)

// SendMessage posts an announcement to a channel, resolving the
// {server_name} placeholder against the channel's guild.
func (n *Notifier) SendMessage(ctx context.Context, channelID, content string) error {
	if strings.Contains(content, domain.PlaceholderServerName) {
		content = strings.ReplaceAll(content, domain.PlaceholderServerName, n.guildNameForChannel(channelID))
	}

	_, err := n.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// SyncRole applies one holiday state change to a guild. Activation creates
// or recolors the holiday role and assigns it to the given members;
// deactivation strips it from every current holder. The role itself is kept
// so next year's activation reuses it.
func (n *Notifier) SyncRole(ctx context.Context, guildID string, change entity.HolidayStateChange, assignees []string) error {
	guild, err := n.guild(guildID)
	if err != nil {
		return err
	}

	if change.BecameActive {
		return n.activate(ctx, guild, change, assignees)
	}
	return n.deactivate(ctx, guild, change)
}

func (n *Notifier) activate(ctx context.Context, guild *discordgo.Guild, change entity.HolidayStateChange, assignees []string) error {
	names := make([]string, len(guild.Roles))
	for i, r := range guild.Roles {
		names[i] = r.Name
	}

	action, roleName := role.Decide(change.Holiday.Name, change.Holiday.Date, names)

	color, err := parseColor(change.Holiday.Color)
	if err != nil {
		return err
	}
	params := &discordgo.RoleParams{
		Name:  roleName,
		Color: &color,
	}

	var guildRole *discordgo.Role
	existing := findRoleByHoliday(guild.Roles, change.Holiday.Name)
	if action == entity.RoleActionUpdate && existing != nil {
		guildRole, err = n.session.GuildRoleEdit(guild.ID, existing.ID, params, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to update role %q in guild %s: %w", roleName, guild.ID, err)
		}
	} else {
		guildRole, err = n.session.GuildRoleCreate(guild.ID, params, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to create role %q in guild %s: %w", roleName, guild.ID, err)
		}
	}

	assigned := 0
	for _, memberID := range assignees {
		if err := n.session.GuildMemberRoleAdd(guild.ID, memberID, guildRole.ID, discordgo.WithContext(ctx)); err != nil {
			n.log.Warn().Str("guild_id", guild.ID).Str("member_id", memberID).Err(err).Msg("failed to assign holiday role")
			continue
		}
		assigned++
	}

	n.log.Info().
		Str("guild_id", guild.ID).
		Str("role", roleName).
		Str("action", string(action)).
		Int("assigned", assigned).
		Msg("holiday role activated")
	return nil
}

func (n *Notifier) deactivate(ctx context.Context, guild *discordgo.Guild, change entity.HolidayStateChange) error {
	guildRole := findRoleByHoliday(guild.Roles, change.Holiday.Name)
	if guildRole == nil {
		n.log.Debug().Str("guild_id", guild.ID).Str("holiday", change.Holiday.Name).Msg("no role to deactivate")
		return nil
	}

	members, err := n.members(guild)
	if err != nil {
		return err
	}

	removed := 0
	for _, member := range members {
		if !memberHasRole(member, guildRole.ID) {
			continue
		}
		if err := n.session.GuildMemberRoleRemove(guild.ID, member.User.ID, guildRole.ID, discordgo.WithContext(ctx)); err != nil {
			n.log.Warn().Str("guild_id", guild.ID).Str("member_id", member.User.ID).Err(err).Msg("failed to remove holiday role")
			continue
		}
		removed++
	}

	n.log.Info().
		Str("guild_id", guild.ID).
		Str("role", guildRole.Name).
		Int("removed", removed).
		Msg("holiday role deactivated")
	return nil
}

func (n *Notifier) guild(guildID string) (*discordgo.Guild, error) {
	guild, err := n.session.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}
	guild, err = n.session.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild %s: %w", guildID, err)
	}
	return guild, nil
}

// members returns the guild member list, fetching from the API when the
// state cache is cold.
func (n *Notifier) members(guild *discordgo.Guild) ([]*discordgo.Member, error) {
	if len(guild.Members) > 0 {
		return guild.Members, nil
	}
	members, err := n.session.GuildMembers(guild.ID, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of guild %s: %w", guild.ID, err)
	}
	return members, nil
}

func (n *Notifier) guildNameForChannel(channelID string) string {
	channel, err := n.session.State.Channel(channelID)
	if err != nil {
		channel, err = n.session.Channel(channelID)
		if err != nil {
			return "the server"
		}
	}
	guild, err := n.guild(channel.GuildID)
	if err != nil {
		return "the server"
	}
	return guild.Name
}

// findRoleByHoliday matches the managed role by its holiday-name prefix, the
// same correlation rule the decision logic uses, so a role whose trailing
// date is from a prior year is still found.
func findRoleByHoliday(roles []*discordgo.Role, holidayName string) *discordgo.Role {
	prefix := strings.ToLower(holidayName)
	for _, r := range roles {
		if strings.HasPrefix(strings.ToLower(r.Name), prefix) {
			return r
		}
	}
	return nil
}

func memberHasRole(member *discordgo.Member, roleID string) bool {
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

func parseColor(hex string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid role color %q: %w", hex, err)
	}
	return int(value), nil
}
