package link

import (
	"fitbot/service"

	"github.com/bwmarrin/discordgo"
)

type Feature struct {
	memberService service.MemberService
	syncService   service.SyncService
}

func New(memberService service.MemberService, syncService service.SyncService) *Feature {
	return &Feature{
		memberService: memberService,
		syncService:   syncService,
	}
}

// HandlePair links a League account to the member
func (f *Feature) HandlePair(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handlePair(s, i)
}

// HandleSync reconciles the member's match history into pushups owed
func (f *Feature) HandleSync(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleSync(s, i)
}
