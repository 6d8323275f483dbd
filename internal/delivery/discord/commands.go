package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/role"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/service"
)

const scheduleTimeFormat = "2006-01-02 15:04"

var botCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "holiday",
		Description: "Manage this server's seasonal holidays.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Add a holiday.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Holiday name.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "Date as MM-DD.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "color", Description: "Role color as #RRGGBB.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "banner", Description: "Banner image URL.", Required: false},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "edit",
				Description: "Edit a holiday. Omitted fields keep their value.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Holiday name.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "date", Description: "New date as MM-DD.", Required: false},
					{Type: discordgo.ApplicationCommandOptionString, Name: "color", Description: "New role color as #RRGGBB.", Required: false},
					{Type: discordgo.ApplicationCommandOptionString, Name: "banner", Description: "New banner image URL.", Required: false},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove a holiday and its history.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Holiday name.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List holidays by how soon they occur.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "force",
				Description: "Activate a holiday's role right now.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Holiday name.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "template",
				Description: "Set a custom announcement template for a phase.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Holiday name.", Required: true},
					{
						Type: discordgo.ApplicationCommandOptionString, Name: "phase", Description: "Announcement phase.", Required: true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "before", Value: string(domain.PhaseBefore)},
							{Name: "start", Value: string(domain.PhaseStart)},
							{Name: "end", Value: string(domain.PhaseEnd)},
						},
					},
					{Type: discordgo.ApplicationCommandOptionString, Name: "template", Description: "Template text; empty resets to default.", Required: false},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "import",
				Description: "Import the default holiday catalog.",
			},
		},
	},
	{
		Name:        "seasonal",
		Description: "Configure seasonal role behavior.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "optout",
				Description: "Stop receiving seasonal roles.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "optin",
				Description: "Receive seasonal roles again.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channel",
				Description: "Set the announcement channel.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Channel for announcements.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "announcements",
				Description: "Turn announcements on or off.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "Whether to send announcements.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "dryrun",
				Description: "Toggle dry-run mode: log decisions without applying them.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionBoolean, Name: "enabled", Description: "Whether dry-run is on.", Required: true},
				},
			},
		},
	},
	{
		Name:        "announce",
		Description: "Schedule standalone announcements.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "once",
				Description: "Schedule a one-time announcement.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Target channel.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "content", Description: "Message content.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "at", Description: "UTC time: YYYY-MM-DD HH:MM.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "recurring",
				Description: "Schedule a recurring announcement.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Target channel.", Required: true},
					{Type: discordgo.ApplicationCommandOptionString, Name: "content", Description: "Message content.", Required: true},
					{
						Type: discordgo.ApplicationCommandOptionString, Name: "every", Description: "Recurrence interval.", Required: true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "daily", Value: string(domain.RecurrenceDaily)},
							{Name: "weekly", Value: string(domain.RecurrenceWeekly)},
							{Name: "monthly", Value: string(domain.RecurrenceMonthly)},
						},
					},
					{Type: discordgo.ApplicationCommandOptionString, Name: "starting", Description: "UTC anchor: YYYY-MM-DD HH:MM.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List scheduled announcements.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cancel",
				Description: "Cancel a scheduled announcement.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Job id from /announce list.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disable",
				Description: "Pause a scheduled announcement without deleting it.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Job id from /announce list.", Required: true},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "enable",
				Description: "Resume a paused announcement.",
				Options: []*discordgo.ApplicationCommandOption{
					{Type: discordgo.ApplicationCommandOptionString, Name: "id", Description: "Job id from /announce list.", Required: true},
				},
			},
		},
	},
}

// Commands registers the slash-command surface and routes interactions to
// the services. It stays a thin translation layer: option parsing in,
// service call, one-line reply out.
type Commands struct {
	session  *discordgo.Session
	services *service.Instance
	notifier *Notifier
	source   *Source
	log      zerolog.Logger

	registered []*discordgo.ApplicationCommand
}

func NewCommands(session *discordgo.Session, services *service.Instance, notifier *Notifier, source *Source, log zerolog.Logger) *Commands {
	return &Commands{
		session:  session,
		services: services,
		notifier: notifier,
		source:   source,
		log:      log.With().Str("component", "discord-commands").Logger(),
	}
}

// Register creates the application commands globally and hooks the
// interaction handler.
func (c *Commands) Register() error {
	c.session.AddHandler(c.handleInteraction)

	appID := c.session.State.User.ID
	for _, command := range botCommands {
		created, err := c.session.ApplicationCommandCreate(appID, "", command)
		if err != nil {
			return fmt.Errorf("failed to register command %q: %w", command.Name, err)
		}
		c.registered = append(c.registered, created)
	}
	c.log.Info().Int("commands", len(c.registered)).Msg("slash commands registered")
	return nil
}

// Unregister removes the commands created by Register.
func (c *Commands) Unregister() {
	appID := c.session.State.User.ID
	for _, command := range c.registered {
		if err := c.session.ApplicationCommandDelete(appID, "", command.ID); err != nil {
			c.log.Warn().Str("command", command.Name).Err(err).Msg("failed to delete command")
		}
	}
}

func (c *Commands) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := optionMap(sub.Options)
	ctx := context.Background()

	var reply string
	var err error
	switch data.Name + " " + sub.Name {
	case "holiday add":
		reply, err = c.holidayAdd(ctx, i.GuildID, opts)
	case "holiday edit":
		reply, err = c.holidayEdit(ctx, i.GuildID, opts)
	case "holiday remove":
		reply, err = c.holidayRemove(ctx, i.GuildID, opts)
	case "holiday list":
		reply, err = c.holidayList(ctx, i.GuildID)
	case "holiday force":
		reply, err = c.holidayForce(ctx, i.GuildID, opts)
	case "holiday template":
		reply, err = c.holidayTemplate(ctx, i.GuildID, opts)
	case "holiday import":
		reply, err = c.holidayImport(ctx, i.GuildID)
	case "seasonal optout":
		err = c.services.Holiday.OptOutAdd(ctx, i.GuildID, i.Member.User.ID)
		reply = "You are opted out of seasonal roles."
	case "seasonal optin":
		err = c.services.Holiday.OptOutRemove(ctx, i.GuildID, i.Member.User.ID)
		reply = "You will receive seasonal roles again."
	case "seasonal channel":
		channel := opts["channel"].ChannelValue(nil)
		err = c.services.Holiday.SetAnnounceChannel(ctx, i.GuildID, channel.ID)
		reply = fmt.Sprintf("Announcements will go to <#%s>.", channel.ID)
	case "seasonal announcements":
		enabled := opts["enabled"].BoolValue()
		err = c.services.Holiday.SetAnnounceEnabled(ctx, i.GuildID, enabled)
		reply = fmt.Sprintf("Announcements %s.", onOff(enabled))
	case "seasonal dryrun":
		enabled := opts["enabled"].BoolValue()
		err = c.services.Holiday.SetDryRun(ctx, i.GuildID, enabled)
		reply = fmt.Sprintf("Dry-run mode %s.", onOff(enabled))
	case "announce once":
		reply, err = c.announceOnce(ctx, i.GuildID, opts)
	case "announce recurring":
		reply, err = c.announceRecurring(ctx, i.GuildID, opts)
	case "announce list":
		reply, err = c.announceList(ctx, i.GuildID)
	case "announce cancel":
		err = c.services.Scheduler.CancelJob(ctx, opts["id"].StringValue())
		reply = "Announcement cancelled."
	case "announce disable":
		err = c.services.Scheduler.SetJobEnabled(ctx, opts["id"].StringValue(), false)
		reply = "Announcement paused. `/announce enable` resumes it."
	case "announce enable":
		err = c.services.Scheduler.SetJobEnabled(ctx, opts["id"].StringValue(), true)
		reply = "Announcement resumed."
	default:
		return
	}

	if err != nil {
		c.log.Warn().Str("command", data.Name+" "+sub.Name).Err(err).Msg("command failed")
		reply = userFacing(err)
	}
	c.respond(i.Interaction, reply)
}

func (c *Commands) holidayAdd(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	h := entity.Holiday{
		Name:  opts["name"].StringValue(),
		Date:  opts["date"].StringValue(),
		Color: opts["color"].StringValue(),
	}
	if banner, ok := opts["banner"]; ok {
		h.Banner = banner.StringValue()
	}
	if err := c.services.Holiday.AddHoliday(ctx, guildID, h); err != nil {
		return "", err
	}
	return fmt.Sprintf("Added **%s** on %s.", h.Name, h.Date), nil
}

func (c *Commands) holidayEdit(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	name := opts["name"].StringValue()
	var update entity.Holiday
	if v, ok := opts["date"]; ok {
		update.Date = v.StringValue()
	}
	if v, ok := opts["color"]; ok {
		update.Color = v.StringValue()
	}
	if v, ok := opts["banner"]; ok {
		update.Banner = v.StringValue()
	}
	if err := c.services.Holiday.EditHoliday(ctx, guildID, name, update); err != nil {
		return "", err
	}
	return fmt.Sprintf("Updated **%s**.", name), nil
}

func (c *Commands) holidayRemove(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	name := opts["name"].StringValue()
	if err := c.services.Holiday.RemoveHoliday(ctx, guildID, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed **%s**.", name), nil
}

func (c *Commands) holidayList(ctx context.Context, guildID string) (string, error) {
	holidays, daysUntil, err := c.services.Holiday.ListHolidays(ctx, guildID)
	if err != nil {
		return "", err
	}
	if len(holidays) == 0 {
		return "No holidays configured. Try `/holiday import`.", nil
	}

	var b strings.Builder
	b.WriteString("Upcoming holidays:\n")
	for _, h := range holidays {
		switch days := daysUntil[h.Name]; days {
		case 0:
			fmt.Fprintf(&b, "- **%s** (%s) is today!\n", h.Name, h.Date)
		case 1:
			fmt.Fprintf(&b, "- **%s** (%s) is tomorrow\n", h.Name, h.Date)
		default:
			fmt.Fprintf(&b, "- **%s** (%s) in %d days\n", h.Name, h.Date, days)
		}
	}
	return b.String(), nil
}

// holidayForce activates one holiday's role immediately and commits the
// resulting status, using the same execute-then-commit path as the periodic
// check.
func (c *Commands) holidayForce(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	name := opts["name"].StringValue()
	change, err := c.services.Holiday.ForceHoliday(ctx, guildID, name)
	if err != nil {
		return "", err
	}

	members, err := c.source.MemberIDs(guildID)
	if err != nil {
		return "", err
	}
	optOuts, err := c.services.Holiday.OptOuts(ctx, guildID)
	if err != nil {
		return "", err
	}
	if err := c.notifier.SyncRole(ctx, guildID, *change, role.Assignees(members, optOuts)); err != nil {
		return "", err
	}

	settings, err := c.services.Holiday.Settings(ctx, guildID)
	if err != nil {
		return "", err
	}
	eval := &entity.Evaluation{
		GuildID:     guildID,
		AsOf:        time.Now().UTC(),
		SettingsVer: settings.Version,
	}
	outcome := entity.EvaluationOutcome{AppliedChanges: []entity.HolidayStateChange{*change}}
	if err := c.services.Holiday.CommitEvaluation(ctx, eval, outcome); err != nil {
		return "", err
	}
	return fmt.Sprintf("Activated **%s**.", change.RoleName), nil
}

func (c *Commands) holidayTemplate(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	name := opts["name"].StringValue()
	phase := domain.Phase(opts["phase"].StringValue())
	template := ""
	if v, ok := opts["template"]; ok {
		template = v.StringValue()
	}
	if err := c.services.Holiday.SetTemplate(ctx, guildID, name, phase, template); err != nil {
		return "", err
	}
	if template == "" {
		return fmt.Sprintf("Reset the %s template for **%s**.", phase, name), nil
	}
	return fmt.Sprintf("Set the %s template for **%s**.", phase, name), nil
}

func (c *Commands) holidayImport(ctx context.Context, guildID string) (string, error) {
	added, err := c.services.Holiday.ImportDefaults(ctx, guildID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Imported %d holidays.", added), nil
}

func (c *Commands) announceOnce(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	fireAt, err := parseScheduleTime(opts["at"].StringValue())
	if err != nil {
		return "", err
	}
	channel := opts["channel"].ChannelValue(nil)
	job, err := c.services.Scheduler.ScheduleOneTime(ctx, guildID, channel.ID, opts["content"].StringValue(), fireAt)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Scheduled for %s UTC (id `%s`).", job.NextFireAt.Format(scheduleTimeFormat), job.ID), nil
}

func (c *Commands) announceRecurring(ctx context.Context, guildID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	anchor, err := parseScheduleTime(opts["starting"].StringValue())
	if err != nil {
		return "", err
	}
	channel := opts["channel"].ChannelValue(nil)
	recurrence := domain.Recurrence(opts["every"].StringValue())
	job, err := c.services.Scheduler.ScheduleRecurring(ctx, guildID, channel.ID, opts["content"].StringValue(), recurrence, anchor)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Scheduled %s, next fire %s UTC (id `%s`).", recurrence, job.NextFireAt.Format(scheduleTimeFormat), job.ID), nil
}

func (c *Commands) announceList(ctx context.Context, guildID string) (string, error) {
	jobs, err := c.services.Scheduler.ListJobs(ctx, guildID)
	if err != nil {
		return "", err
	}
	if len(jobs) == 0 {
		return "No scheduled announcements.", nil
	}

	var b strings.Builder
	b.WriteString("Scheduled announcements:\n")
	for _, job := range jobs {
		cadence := "once"
		if !job.OneTime() {
			cadence = string(job.Recurrence)
		}
		state := ""
		if !job.Enabled {
			state = ", disabled"
		}
		fmt.Fprintf(&b, "- `%s` in <#%s>, %s at %s UTC%s\n", job.ID, job.ChannelID, cadence, job.NextFireAt.Format(scheduleTimeFormat), state)
	}
	return b.String(), nil
}

func (c *Commands) respond(interaction *discordgo.Interaction, content string) {
	err := c.session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to respond to interaction")
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func parseScheduleTime(value string) (time.Time, error) {
	t, err := time.ParseInLocation(scheduleTimeFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: "time", Value: value, Rule: "must be YYYY-MM-DD HH:MM (UTC)"}
	}
	return t, nil
}

// userFacing turns service errors into replies. Validation and not-found
// errors carry safe detail; anything else gets a generic line.
func userFacing(err error) string {
	switch {
	case domain.IsValidation(err):
		return "That didn't work: " + err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "I couldn't find that one."
	case errors.Is(err, domain.ErrDuplicateName):
		return "A holiday with that name already exists."
	}
	return "Something went wrong, please try again."
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
