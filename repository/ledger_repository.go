package repository

import (
	"context"
	"fmt"
	"time"

	"fitbot/database"
	"fitbot/models"
	"github.com/jackc/pgx/v5"
)

// LedgerRepository provides access to the two per-day pushup ledgers
type LedgerRepository struct {
	q queryable
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *database.DB) *LedgerRepository {
	return &LedgerRepository{q: db.Pool}
}

// tableFor maps a ledger kind to its table. Table names are never built from
// user input.
func tableFor(kind models.LedgerKind) (string, error) {
	switch kind {
	case models.LedgerDone:
		return "pushups_done", nil
	case models.LedgerOwed:
		return "pushups_owed", nil
	default:
		return "", fmt.Errorf("unknown ledger kind %q", kind)
	}
}

// Add accumulates amount into the member's ledger entry for the given day.
// The first contribution for a day creates the entry; later contributions
// add to it. Timestamps are truncated to their UTC calendar day.
func (r *LedgerRepository) Add(ctx context.Context, memberID int64, kind models.LedgerKind, amount int64, date time.Time) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (member_id, date, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (member_id, date)
		DO UPDATE SET amount = %s.amount + EXCLUDED.amount
	`, table, table)

	if _, err := r.q.Exec(ctx, query, memberID, models.DayOf(date), amount); err != nil {
		return fmt.Errorf("failed to add %d to %s ledger for member %d: %w", amount, kind, memberID, err)
	}

	return nil
}

// AmountOn returns the member's accumulated amount for one day, 0 if the day
// has no entry
func (r *LedgerRepository) AmountOn(ctx context.Context, memberID int64, kind models.LedgerKind, date time.Time) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)
		FROM %s
		WHERE member_id = $1 AND date = $2
	`, table)

	var amount int64
	if err := r.q.QueryRow(ctx, query, memberID, models.DayOf(date)).Scan(&amount); err != nil {
		return 0, fmt.Errorf("failed to get %s amount for member %d: %w", kind, memberID, err)
	}
	return amount, nil
}

// Total returns the member's sum across all days in one ledger
func (r *LedgerRepository) Total(ctx context.Context, memberID int64, kind models.LedgerKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(amount), 0)
		FROM %s
		WHERE member_id = $1
	`, table)

	var total int64
	if err := r.q.QueryRow(ctx, query, memberID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to get %s total for member %d: %w", kind, memberID, err)
	}
	return total, nil
}

// NetStatus returns owed minus done across all days, recomputed fresh from
// the ledger entries. Positive means the member is behind.
func (r *LedgerRepository) NetStatus(ctx context.Context, memberID int64) (int64, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM pushups_owed WHERE member_id = $1), 0) -
			COALESCE((SELECT SUM(amount) FROM pushups_done WHERE member_id = $1), 0)
	`

	var net int64
	if err := r.q.QueryRow(ctx, query, memberID).Scan(&net); err != nil {
		return 0, fmt.Errorf("failed to compute net status for member %d: %w", memberID, err)
	}
	return net, nil
}

// WorstNet returns the Discord ID and net balance of the member furthest
// behind. Returns (0, 0, nil) when no member has a positive net balance.
func (r *LedgerRepository) WorstNet(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT m.discord_id,
			COALESCE((SELECT SUM(amount) FROM pushups_owed WHERE member_id = m.id), 0) -
			COALESCE((SELECT SUM(amount) FROM pushups_done WHERE member_id = m.id), 0) AS net
		FROM members m
		ORDER BY net DESC
		LIMIT 1
	`

	var discordID, net int64
	err := r.q.QueryRow(ctx, query).Scan(&discordID, &net)
	if err == pgx.ErrNoRows {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to find worst net balance: %w", err)
	}

	if net <= 0 {
		return 0, 0, nil
	}
	return discordID, net, nil
}
