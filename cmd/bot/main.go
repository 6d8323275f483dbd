package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/zaneriley/seasonal-roles-bot/internal/config"
	"github.com/zaneriley/seasonal-roles-bot/internal/database"
	"github.com/zaneriley/seasonal-roles-bot/internal/delivery"
	"github.com/zaneriley/seasonal-roles-bot/internal/delivery/discord"
	"github.com/zaneriley/seasonal-roles-bot/internal/delivery/slackbridge"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/service"
	"github.com/zaneriley/seasonal-roles-bot/internal/runner"
	"github.com/zaneriley/seasonal-roles-bot/migrator/sqlite"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg := config.Load()
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	if cfg.DiscordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN is required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create discord session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("bot is up")
	})

	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed to open discord session")
	}
	defer session.Close()

	dm := database.NewInstance(db)
	services := service.NewInstance(dm, log)

	discordNotifier := discord.New(session, log)
	source := discord.NewSource(session)

	var notifier contract.Notifier = discordNotifier
	if cfg.SlackBotToken != "" && cfg.SlackMirrorChannel != "" {
		slackClient := slack.New(cfg.SlackBotToken)
		mirror := slackbridge.New(slackClient, cfg.SlackMirrorChannel, log)
		notifier = delivery.NewFanout(discordNotifier, log, mirror)
		log.Info().Str("channel", cfg.SlackMirrorChannel).Msg("mirroring announcements to slack")
	}

	commands := discord.NewCommands(session, services, discordNotifier, source, log)
	if err := commands.Register(); err != nil {
		log.Fatal().Err(err).Msg("failed to register commands")
	}
	defer commands.Unregister()

	loop := runner.New(services, notifier, source, cfg.CheckInterval, log)
	loop.Start()
	defer loop.Stop()

	log.Info().Dur("check_interval", cfg.CheckInterval).Msg("seasonal roles bot running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")
}
