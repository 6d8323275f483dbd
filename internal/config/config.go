package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DiscordToken       string
	SlackBotToken      string
	SlackMirrorChannel string
	DatabasePath       string
	CheckInterval      time.Duration
	LogLevel           string
}

func Load() *Config {
	return &Config{
		DiscordToken:       getEnv("DISCORD_TOKEN", ""),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackMirrorChannel: getEnv("SLACK_MIRROR_CHANNEL", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./holidays.db"),
		CheckInterval:      getDurationEnv("CHECK_INTERVAL", time.Hour),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	// Plain numbers mean minutes
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return time.Duration(n) * time.Minute
	}
	return defaultValue
}
