package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "join",
			Description: "Join the fitbot community",
		},
		{
			Name:        "done",
			Description: "Log pushups you have done today",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of pushups done",
					Required:    true,
				},
			},
		},
		{
			Name:        "todo",
			Description: "Add pushups you owe for today",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of pushups owed",
					Required:    true,
				},
			},
		},
		{
			Name:        "status",
			Description: "Check your pushup balance",
		},
		{
			Name:        "pair",
			Description: "Link your League of Legends account",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "summoner",
					Description: "Your summoner name",
					Required:    true,
				},
			},
		},
		{
			Name:        "sync",
			Description: "Turn your recent League deaths into pushups owed",
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
