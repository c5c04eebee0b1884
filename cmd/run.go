package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"fitbot/bot"
	"fitbot/config"
	"fitbot/database"
	"fitbot/events"
	"fitbot/repository"
	"fitbot/riotapi"
	"fitbot/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting fitbot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)

	// Initialize Riot API client
	riotClient := riotapi.NewClient(cfg.RiotAPIToken, cfg.RiotRegion)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, ledgerRepo, riotClient, eventBus)
	syncService := service.NewSyncService(memberRepo, ledgerRepo, riotClient, eventBus, cfg.PushupsPerDeath)
	log.Info("Services initialized successfully")

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		GuildID:        cfg.DiscordGuildID,
		SlackerRoleID:  cfg.SlackerRoleID,
		SlackerEnabled: cfg.SlackerEnabled,
	}
	discordBot, err := bot.New(botConfig, memberService, syncService, ledgerRepo, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Infof("Bot is running in %s mode...", cfg.Environment)

	// Wait for context cancellation
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
