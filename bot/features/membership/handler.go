package membership

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

func (f *Feature) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	mention := i.Member.User.Mention()

	_, err = f.memberService.Join(ctx, discordID)
	if errors.Is(err, service.ErrMemberAlreadyExists) {
		common.RespondWithMessage(s, i, fmt.Sprintf("%s, you already joined in the past!", mention))
		return
	}
	if err != nil {
		log.Errorf("Error joining member %d: %v", discordID, err)
		common.RespondWithError(s, i, "Unable to join right now. Please try again.")
		return
	}

	common.RespondWithMessage(s, i, fmt.Sprintf("%s, you joined the fitbot community!", mention))
}
