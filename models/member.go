package models

import (
	"time"
)

// Member represents a Discord user who joined the accountability community
type Member struct {
	ID              int64      `db:"id"`
	DiscordID       int64      `db:"discord_id"`
	JoinedAt        time.Time  `db:"joined_at"`
	RiotAccountID   *string    `db:"riot_account_id"`   // nil until the member pairs an account
	LastMatchSyncAt *time.Time `db:"last_match_sync_at"` // nil until the first sync
}

// HasPairedAccount reports whether the member linked a League account
func (m *Member) HasPairedAccount() bool {
	return m.RiotAccountID != nil && *m.RiotAccountID != ""
}

// SyncWatermark returns where match-history ingestion should resume from.
// Members who never synced start at their join time.
func (m *Member) SyncWatermark() time.Time {
	if m.LastMatchSyncAt != nil {
		return m.LastMatchSyncAt.UTC()
	}
	return m.JoinedAt.UTC()
}
