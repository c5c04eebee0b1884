package service

import (
	"context"
	"fmt"
	"time"

	"fitbot/events"
	"fitbot/models"
)

// memberService implements the MemberService interface
type memberService struct {
	members  MemberRepository
	ledger   LedgerRepository
	matches  MatchHistory
	eventBus *events.Bus
}

// NewMemberService creates a new member service
func NewMemberService(members MemberRepository, ledger LedgerRepository, matches MatchHistory, eventBus *events.Bus) MemberService {
	return &memberService{
		members:  members,
		ledger:   ledger,
		matches:  matches,
		eventBus: eventBus,
	}
}

// requireMember loads the member or fails with ErrMemberNotFound
func (s *memberService) requireMember(ctx context.Context, discordID int64) (*models.Member, error) {
	member, err := s.members.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %d: %w", discordID, err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Join registers the Discord user as a community member
func (s *memberService) Join(ctx context.Context, discordID int64) (*models.Member, error) {
	exists, err := s.members.Exists(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership for %d: %w", discordID, err)
	}
	if exists {
		return nil, ErrMemberAlreadyExists
	}

	member, err := s.members.Create(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to create member %d: %w", discordID, err)
	}

	s.eventBus.Emit(ctx, events.MemberJoinedEvent{DiscordID: discordID})

	return member, nil
}

// AddPushupsDone logs pushups completed today. Negative amounts are accepted
// as-is and subtract from the day's entry; the bot replies differently but
// the ledger does not judge.
func (s *memberService) AddPushupsDone(ctx context.Context, discordID int64, amount int64) (int64, int64, error) {
	member, err := s.requireMember(ctx, discordID)
	if err != nil {
		return 0, 0, err
	}

	today := time.Now().UTC()
	if err := s.ledger.Add(ctx, member.ID, models.LedgerDone, amount, today); err != nil {
		return 0, 0, err
	}

	todayTotal, err := s.ledger.AmountOn(ctx, member.ID, models.LedgerDone, today)
	if err != nil {
		return 0, 0, err
	}

	net, err := s.ledger.NetStatus(ctx, member.ID)
	if err != nil {
		return 0, 0, err
	}

	s.eventBus.Emit(ctx, events.LedgerChangeEvent{DiscordID: discordID, Net: net})

	return todayTotal, net, nil
}

// AddPushupsOwed adds pushups owed for today and returns the new net balance
func (s *memberService) AddPushupsOwed(ctx context.Context, discordID int64, amount int64) (int64, error) {
	member, err := s.requireMember(ctx, discordID)
	if err != nil {
		return 0, err
	}

	if err := s.ledger.Add(ctx, member.ID, models.LedgerOwed, amount, time.Now().UTC()); err != nil {
		return 0, err
	}

	net, err := s.ledger.NetStatus(ctx, member.ID)
	if err != nil {
		return 0, err
	}

	s.eventBus.Emit(ctx, events.LedgerChangeEvent{DiscordID: discordID, Net: net})

	return net, nil
}

// Status returns the member's net balance and per-ledger totals
func (s *memberService) Status(ctx context.Context, discordID int64) (*MemberStatus, error) {
	member, err := s.requireMember(ctx, discordID)
	if err != nil {
		return nil, err
	}

	done, err := s.ledger.Total(ctx, member.ID, models.LedgerDone)
	if err != nil {
		return nil, err
	}
	owed, err := s.ledger.Total(ctx, member.ID, models.LedgerOwed)
	if err != nil {
		return nil, err
	}

	return &MemberStatus{
		Net:       owed - done,
		TotalDone: done,
		TotalOwed: owed,
	}, nil
}

// Pair links the summoner's Riot account to the member. Checks run in order:
// member exists, member unpaired, summoner resolves, account unclaimed.
func (s *memberService) Pair(ctx context.Context, discordID int64, summonerName string) error {
	member, err := s.requireMember(ctx, discordID)
	if err != nil {
		return err
	}
	if member.HasPairedAccount() {
		return ErrAlreadyPaired
	}

	accountID, err := s.matches.FindAccountID(ctx, summonerName)
	if err != nil {
		return fmt.Errorf("failed to resolve summoner %q: %w", summonerName, err)
	}
	if accountID == "" {
		return ErrAccountNotFound
	}

	paired, err := s.members.AccountIsPaired(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to check pairing for account %s: %w", accountID, err)
	}
	if paired {
		return ErrAccountAlreadyPaired
	}

	if err := s.members.PairAccount(ctx, discordID, accountID); err != nil {
		return err
	}

	return nil
}
