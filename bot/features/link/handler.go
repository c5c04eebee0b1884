package link

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"fitbot/bot/common"
	"fitbot/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const notJoinedReply = "you have not joined the community yet"

func (f *Feature) handlePair(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	mention := i.Member.User.Mention()

	var summoner string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "summoner" {
			summoner = opt.StringValue()
		}
	}
	if summoner == "" {
		common.RespondWithError(s, i, "Please provide a summoner name.")
		return
	}

	err = f.memberService.Pair(ctx, discordID, summoner)
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, %s", mention, notJoinedReply))
	case errors.Is(err, service.ErrAlreadyPaired):
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, you already paired a League account!", mention))
	case errors.Is(err, service.ErrAccountNotFound):
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, I could not find a summoner named **%s**.", mention, summoner))
	case errors.Is(err, service.ErrAccountAlreadyPaired):
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, **%s** is already paired to someone else.", mention, summoner))
	case err != nil:
		log.Errorf("Error pairing account for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to pair right now. Please try again.")
	default:
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, you paired **%s**. Every death now costs you push-ups!", mention, summoner))
	}
}

func (f *Feature) handleSync(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	mention := i.Member.User.Mention()

	// Paging through match history can take a while, so defer the reply.
	if err := common.DeferResponse(s, i); err != nil {
		log.Errorf("Error deferring sync response for %d: %v", discordID, err)
		return
	}

	summary, err := f.syncService.SyncMember(ctx, discordID)
	switch {
	case errors.Is(err, service.ErrMemberNotFound):
		common.FollowUp(s, i, fmt.Sprintf("%s, %s", mention, notJoinedReply))
		return
	case errors.Is(err, service.ErrNotPaired):
		common.FollowUp(s, i, fmt.Sprintf("%s, you have no League account paired. Use /pair first.", mention))
		return
	case err != nil:
		log.Errorf("Error syncing member %d: %v", discordID, err)
		common.FollowUpWithError(s, i, "Unable to sync right now. Please try again.")
		return
	}

	msg := fmt.Sprintf("%s, you died **%d** times since your last sync. Now %s.",
		mention, summary.TotalDeaths, common.FormatNetBalance(summary.Net))
	if summary.RateLimited {
		msg += " The Riot API cut me off, so run /sync again later to pick up the rest."
	}
	common.FollowUp(s, i, msg)
}
