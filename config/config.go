package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Riot API configuration
	RiotAPIToken string
	RiotRegion   string

	// Bot configuration
	PushupsPerDeath int64 // Pushups owed per in-game death

	// Slacker Role configuration
	SlackerRoleID  string
	SlackerEnabled bool

	// Environment
	Environment string // "development" or "production"
}

// Load reads configuration from environment variables.
// The result is passed explicitly to everything that needs it; there is no
// package-level instance.
func Load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Riot API
		RiotAPIToken: os.Getenv("RIOT_API_TOKEN"),
		RiotRegion:   os.Getenv("RIOT_REGION"),

		// Bot settings with defaults
		PushupsPerDeath: 5,

		// Slacker Role
		SlackerRoleID:  os.Getenv("SLACKER_ROLE_ID"),
		SlackerEnabled: os.Getenv("SLACKER_ROLE_ENABLED") == "true",

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if perDeath := os.Getenv("PUSHUPS_PER_DEATH"); perDeath != "" {
		if parsed, err := strconv.ParseInt(perDeath, 10, 64); err == nil {
			config.PushupsPerDeath = parsed
		}
	}

	if config.RiotRegion == "" {
		config.RiotRegion = "euw1"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.RiotAPIToken == "" {
			return nil, fmt.Errorf("RIOT_API_TOKEN is required")
		}
	}

	return config, nil
}
