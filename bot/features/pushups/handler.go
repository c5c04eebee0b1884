package pushups

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

func parseAuthor(i *discordgo.InteractionCreate) (int64, string, error) {
	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, "", err
	}
	return discordID, i.Member.User.Mention(), nil
}

// amountOption extracts the required integer "amount" option
func amountOption(i *discordgo.InteractionCreate) int64 {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			return opt.IntValue()
		}
	}
	return 0
}

func (f *Feature) handleDone(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, mention, err := parseAuthor(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	amount := amountOption(i)

	todayTotal, net, err := f.memberService.AddPushupsDone(ctx, discordID, amount)
	if errors.Is(err, service.ErrMemberNotFound) {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, %s", mention, notJoinedReply))
		return
	}
	if err != nil {
		log.Errorf("Error adding pushups done for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to log pushups. Please try again.")
		return
	}

	netStr := fmt.Sprintf(" Now %s.", common.FormatNetBalance(net))
	if amount > 0 {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, nice job, you have done **%s** today!%s",
			mention, common.FormatPushups(todayTotal), netStr))
	} else {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, if that is really what you call an achievement... Your counter for today now is: **%s**.%s",
			mention, common.FormatPushups(todayTotal), netStr))
	}
}

func (f *Feature) handleTodo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, mention, err := parseAuthor(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	net, err := f.memberService.AddPushupsOwed(ctx, discordID, amountOption(i))
	if errors.Is(err, service.ErrMemberNotFound) {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, %s", mention, notJoinedReply))
		return
	}
	if err != nil {
		log.Errorf("Error adding pushups owed for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to update your total. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("%s, your new total is **%s**!", mention, common.FormatPushups(net)))
}

func (f *Feature) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, mention, err := parseAuthor(i)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	status, err := f.memberService.Status(ctx, discordID)
	if errors.Is(err, service.ErrMemberNotFound) {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, %s", mention, notJoinedReply))
		return
	}
	if err != nil {
		log.Errorf("Error getting status for %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to retrieve your status. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("%s, the standings are... **%s**! (%s done, %s owed all-time)",
		mention, common.FormatPushups(status.Net), common.FormatPushups(status.TotalDone), common.FormatPushups(status.TotalOwed)))
}
