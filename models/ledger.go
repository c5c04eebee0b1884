package models

import (
	"time"
)

// LedgerKind selects one of the two per-day pushup accumulators
type LedgerKind string

const (
	LedgerDone LedgerKind = "done"
	LedgerOwed LedgerKind = "owed"
)

// LedgerEntry represents one day's accumulated pushups for a member in one ledger
type LedgerEntry struct {
	ID       int64      `db:"id"`
	MemberID int64      `db:"member_id"`
	Kind     LedgerKind `db:"-"` // implied by the table the row lives in
	Date     time.Time  `db:"date"`
	Amount   int64      `db:"amount"`
}

// SyncResult is the outcome of one reconciliation run against the match API
type SyncResult struct {
	DeathsPerDate map[time.Time]int // keys truncated to UTC day boundaries
	NewWatermark  time.Time
	RateLimited   bool
}

// TotalDeaths sums deaths across all dates in the run
func (r *SyncResult) TotalDeaths() int {
	total := 0
	for _, deaths := range r.DeathsPerDate {
		total += deaths
	}
	return total
}

// DayOf truncates a timestamp to its UTC calendar day
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
