package pushups

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

// HandleDone logs completed pushups
func (f *Feature) HandleDone(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleDone(s, i)
}

// HandleTodo adds pushups owed for today
func (f *Feature) HandleTodo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleTodo(s, i)
}

// HandleStatus reports the member's standing
func (f *Feature) HandleStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStatus(s, i)
}
