package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Source exposes the session's guild and member views to the evaluation
// loop.
type Source struct {
	session *discordgo.Session
}

func NewSource(session *discordgo.Session) *Source {
	return &Source{session: session}
}

func (s *Source) GuildIDs() []string {
	guilds := s.session.State.Guilds
	ids := make([]string, len(guilds))
	for i, guild := range guilds {
		ids[i] = guild.ID
	}
	return ids
}

func (s *Source) MemberIDs(guildID string) ([]string, error) {
	guild, err := s.session.State.Guild(guildID)
	if err == nil && len(guild.Members) > 0 {
		ids := make([]string, len(guild.Members))
		for i, member := range guild.Members {
			ids[i] = member.User.ID
		}
		return ids, nil
	}

	members, err := s.session.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of guild %s: %w", guildID, err)
	}
	ids := make([]string, len(members))
	for i, member := range members {
		ids[i] = member.User.ID
	}
	return ids, nil
}
