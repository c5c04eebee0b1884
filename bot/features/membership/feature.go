package membership

import (
	"fitbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	memberService service.MemberService
}

func New(memberService service.MemberService) *Feature {
	return &Feature{
		memberService: memberService,
	}
}

func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleJoin(s, i)
}
