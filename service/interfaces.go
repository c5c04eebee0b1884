package service

import (
	"context"
	"time"

	"fitbot/models"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	// GetByDiscordID retrieves a member by their Discord ID, or nil if absent
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Member, error)

	// Exists reports whether a member with the given Discord ID has joined
	Exists(ctx context.Context, discordID int64) (bool, error)

	// Create registers a new member with a join timestamp of now (UTC)
	Create(ctx context.Context, discordID int64) (*models.Member, error)

	// AccountIsPaired reports whether the Riot account is linked to any member
	AccountIsPaired(ctx context.Context, accountID string) (bool, error)

	// PairAccount links a Riot account to the member
	PairAccount(ctx context.Context, discordID int64, accountID string) error

	// SaveSyncWatermark overwrites the member's match-history watermark
	SaveSyncWatermark(ctx context.Context, discordID int64, watermark time.Time) error
}

// LedgerRepository defines the interface for the per-day pushup ledgers
type LedgerRepository interface {
	// Add accumulates amount into the member's entry for the given day
	Add(ctx context.Context, memberID int64, kind models.LedgerKind, amount int64, date time.Time) error

	// AmountOn returns the member's accumulated amount for one day
	AmountOn(ctx context.Context, memberID int64, kind models.LedgerKind, date time.Time) (int64, error)

	// Total returns the member's sum across all days in one ledger
	Total(ctx context.Context, memberID int64, kind models.LedgerKind) (int64, error)

	// NetStatus returns owed minus done across all days
	NetStatus(ctx context.Context, memberID int64) (int64, error)

	// WorstNet returns the Discord ID and net balance of the member furthest
	// behind, or zeros when nobody is behind
	WorstNet(ctx context.Context) (int64, int64, error)
}

// MatchHistory defines the interface for the external match-history API
type MatchHistory interface {
	// FindAccountID resolves a summoner name to an account ID; an unknown
	// summoner returns ("", nil)
	FindAccountID(ctx context.Context, summonerName string) (string, error)

	// DeathsByDate collects per-day death counts from the account's match
	// history starting at from. Failures are soft: the result carries
	// partial counts, a conservative watermark and the RateLimited flag.
	DeathsByDate(ctx context.Context, accountID string, from time.Time) *models.SyncResult
}

// MemberStatus summarizes a member's standing
type MemberStatus struct {
	Net       int64
	TotalDone int64
	TotalOwed int64
}

// MemberService defines the interface for member operations
type MemberService interface {
	// Join registers the Discord user as a community member
	Join(ctx context.Context, discordID int64) (*models.Member, error)

	// AddPushupsDone logs pushups completed today and returns today's done
	// total and the new net balance
	AddPushupsDone(ctx context.Context, discordID int64, amount int64) (todayTotal int64, net int64, err error)

	// AddPushupsOwed adds pushups owed for today and returns the new net
	// balance
	AddPushupsOwed(ctx context.Context, discordID int64, amount int64) (net int64, err error)

	// Status returns the member's net balance and per-ledger totals
	Status(ctx context.Context, discordID int64) (*MemberStatus, error)

	// Pair links the summoner's Riot account to the member
	Pair(ctx context.Context, discordID int64, summonerName string) error
}

// SyncSummary is what a reconciliation run reports back to the caller
type SyncSummary struct {
	TotalDeaths int
	Net         int64
	RateLimited bool
}

// SyncService defines the interface for the match-history reconciliation
type SyncService interface {
	// SyncMember ingests the member's new match history, converts deaths to
	// pushups owed and advances the sync watermark
	SyncMember(ctx context.Context, discordID int64) (*SyncSummary, error)
}
