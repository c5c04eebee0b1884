package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"fitbot/bot/features/link"
	"fitbot/bot/features/membership"
	"fitbot/bot/features/pushups"
	"fitbot/events"
	"fitbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	SlackerRoleID  string
	SlackerEnabled bool
}

type Bot struct {
	config     Config
	session    *discordgo.Session
	ledger     service.LedgerRepository
	eventBus   *events.Bus
	membership *membership.Feature
	pushups    *pushups.Feature
	link       *link.Feature
}

func New(config Config, memberService service.MemberService, syncService service.SyncService, ledger service.LedgerRepository, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsAll

	bot := &Bot{
		config:     config,
		session:    dg,
		ledger:     ledger,
		eventBus:   eventBus,
		membership: membership.New(memberService),
		pushups:    pushups.New(memberService),
		link:       link.New(memberService, syncService),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Subscribe to ledger change events for slacker role updates
	if bot.config.SlackerEnabled {
		eventBus.Subscribe(events.EventTypeLedgerChange, func(ctx context.Context, event events.Event) {
			if _, ok := event.(events.LedgerChangeEvent); ok {
				if err := bot.updateSlackerRole(ctx); err != nil {
					log.Errorf("Failed to update slacker role: %v", err)
				}
			}
		})
		log.Info("Slacker role management enabled")

		// Perform initial sync of slacker role
		go func() {
			// Wait a moment for Discord connection to be fully established
			time.Sleep(2 * time.Second)
			ctx := context.Background()
			if err := bot.updateSlackerRole(ctx); err != nil {
				log.Errorf("Failed to sync slacker role on startup: %v", err)
			} else {
				log.Info("Slacker role synced on startup")
			}
		}()
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "join":
		b.membership.HandleCommand(s, i)
	case "done":
		b.pushups.HandleDone(s, i)
	case "todo":
		b.pushups.HandleTodo(s, i)
	case "status":
		b.pushups.HandleStatus(s, i)
	case "pair":
		b.link.HandlePair(s, i)
	case "sync":
		b.link.HandleSync(s, i)
	}
}

// updateSlackerRole moves the slacker role to whoever owes the most pushups.
// Nobody behind schedule means nobody wears the role.
func (b *Bot) updateSlackerRole(ctx context.Context) error {
	if !b.config.SlackerEnabled || b.config.SlackerRoleID == "" {
		return nil
	}

	slackerID, net, err := b.ledger.WorstNet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get worst net balance: %w", err)
	}

	members, err := b.session.GuildMembers(b.config.GuildID, "", 1000)
	if err != nil {
		return fmt.Errorf("failed to get guild members: %w", err)
	}

	// Find who currently has the role
	var currentHolders []string
	slackerDiscordID := strconv.FormatInt(slackerID, 10)

	for _, member := range members {
		for _, roleID := range member.Roles {
			if roleID == b.config.SlackerRoleID {
				currentHolders = append(currentHolders, member.User.ID)
				break
			}
		}
	}

	// Remove role from anyone who shouldn't have it
	for _, holderID := range currentHolders {
		if slackerID == 0 || holderID != slackerDiscordID {
			if err := b.session.GuildMemberRoleRemove(b.config.GuildID, holderID, b.config.SlackerRoleID); err != nil {
				log.Errorf("Failed to remove slacker role from user %s: %v", holderID, err)
			} else {
				log.Infof("Removed slacker role from user %s", holderID)
			}
		}
	}

	if slackerID == 0 {
		return nil
	}

	// Add role to the slacker if they don't have it
	hasRole := false
	for _, holderID := range currentHolders {
		if holderID == slackerDiscordID {
			hasRole = true
			break
		}
	}

	if !hasRole {
		if err := b.session.GuildMemberRoleAdd(b.config.GuildID, slackerDiscordID, b.config.SlackerRoleID); err != nil {
			log.Errorf("Failed to add slacker role to user %s: %v", slackerDiscordID, err)
		} else {
			log.Infof("Added slacker role to %s (behind by %d)", GetDisplayNameInt64(b.session, b.config.GuildID, slackerID), net)
		}
	}

	return nil
}
