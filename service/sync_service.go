package service

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"fitbot/events"
	"fitbot/models"
)

// syncService implements the SyncService interface
type syncService struct {
	members         MemberRepository
	ledger          LedgerRepository
	matches         MatchHistory
	eventBus        *events.Bus
	pushupsPerDeath int64

	// Overlapping syncs for one member would race on the watermark, so runs
	// are serialized per member. Different members sync in parallel.
	mu          sync.Mutex
	memberLocks map[int64]*sync.Mutex
}

// NewSyncService creates a new reconciliation service
func NewSyncService(members MemberRepository, ledger LedgerRepository, matches MatchHistory, eventBus *events.Bus, pushupsPerDeath int64) SyncService {
	return &syncService{
		members:         members,
		ledger:          ledger,
		matches:         matches,
		eventBus:        eventBus,
		pushupsPerDeath: pushupsPerDeath,
		memberLocks:     make(map[int64]*sync.Mutex),
	}
}

func (s *syncService) lockFor(discordID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.memberLocks[discordID]
	if !ok {
		lock = &sync.Mutex{}
		s.memberLocks[discordID] = lock
	}
	return lock
}

// SyncMember ingests the member's match history since their watermark,
// converts each day's deaths to pushups owed and advances the watermark.
// A rate-limited run keeps its partial results and a conservative watermark
// so the next sync resumes without gaps or double counting.
func (s *syncService) SyncMember(ctx context.Context, discordID int64) (*SyncSummary, error) {
	lock := s.lockFor(discordID)
	lock.Lock()
	defer lock.Unlock()

	member, err := s.members.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %d: %w", discordID, err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	if !member.HasPairedAccount() {
		return nil, ErrNotPaired
	}

	watermark := member.SyncWatermark()
	result := s.matches.DeathsByDate(ctx, *member.RiotAccountID, watermark)

	log.WithFields(log.Fields{
		"discordID":   discordID,
		"since":       watermark,
		"days":        len(result.DeathsPerDate),
		"deaths":      result.TotalDeaths(),
		"rateLimited": result.RateLimited,
	}).Info("Fetched match history")

	for date, deaths := range result.DeathsPerDate {
		if deaths <= 0 {
			continue
		}
		owed := int64(deaths) * s.pushupsPerDeath
		if err := s.ledger.Add(ctx, member.ID, models.LedgerOwed, owed, date); err != nil {
			// Watermark stays put, so a retry re-counts this run's matches.
			// At-least-once per run: the watermark only moves once every
			// ledger write for the run has landed.
			return nil, fmt.Errorf("failed to record owed pushups for %s: %w", date.Format("2006-01-02"), err)
		}
	}

	// A conservative watermark is always safe to save, even for a
	// rate-limited run: it never skips unprocessed matches.
	if err := s.members.SaveSyncWatermark(ctx, discordID, result.NewWatermark); err != nil {
		return nil, err
	}

	net, err := s.ledger.NetStatus(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	s.eventBus.Emit(ctx, events.LedgerChangeEvent{DiscordID: discordID, Net: net})
	s.eventBus.Emit(ctx, events.SyncCompletedEvent{
		DiscordID:   discordID,
		TotalDeaths: result.TotalDeaths(),
		RateLimited: result.RateLimited,
	})

	return &SyncSummary{
		TotalDeaths: result.TotalDeaths(),
		Net:         net,
		RateLimited: result.RateLimited,
	}, nil
}
