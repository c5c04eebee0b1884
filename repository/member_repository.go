package repository

import (
	"context"
	"fmt"
	"time"

	"fitbot/database"
	"fitbot/models"
	"github.com/jackc/pgx/v5"
)

// MemberRepository provides access to community members
type MemberRepository struct {
	q queryable
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{q: db.Pool}
}

// GetByDiscordID retrieves a member by their Discord ID, or nil if absent
func (r *MemberRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Member, error) {
	query := `
		SELECT id, discord_id, joined_at, riot_account_id, last_match_sync_at
		FROM members
		WHERE discord_id = $1
	`

	var member models.Member
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&member.ID,
		&member.DiscordID,
		&member.JoinedAt,
		&member.RiotAccountID,
		&member.LastMatchSyncAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member by discord ID %d: %w", discordID, err)
	}

	return &member, nil
}

// Exists reports whether a member with the given Discord ID has joined
func (r *MemberRepository) Exists(ctx context.Context, discordID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE discord_id = $1)`

	var exists bool
	if err := r.q.QueryRow(ctx, query, discordID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check member %d: %w", discordID, err)
	}
	return exists, nil
}

// Create registers a new member with a join timestamp of now (UTC)
func (r *MemberRepository) Create(ctx context.Context, discordID int64) (*models.Member, error) {
	query := `
		INSERT INTO members (discord_id, joined_at)
		VALUES ($1, NOW())
		RETURNING id, discord_id, joined_at, riot_account_id, last_match_sync_at
	`

	var member models.Member
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&member.ID,
		&member.DiscordID,
		&member.JoinedAt,
		&member.RiotAccountID,
		&member.LastMatchSyncAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create member with discord ID %d: %w", discordID, err)
	}

	return &member, nil
}

// AccountIsPaired reports whether the Riot account is linked to any member
func (r *MemberRepository) AccountIsPaired(ctx context.Context, accountID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE riot_account_id = $1)`

	var paired bool
	if err := r.q.QueryRow(ctx, query, accountID).Scan(&paired); err != nil {
		return false, fmt.Errorf("failed to check account pairing %s: %w", accountID, err)
	}
	return paired, nil
}

// PairAccount links a Riot account to the member. The caller pre-checks that
// the member is unpaired and the account unclaimed; the WHERE guards repeat
// those checks in one statement so concurrent pair attempts cannot both win.
func (r *MemberRepository) PairAccount(ctx context.Context, discordID int64, accountID string) error {
	query := `
		UPDATE members
		SET riot_account_id = $1
		WHERE discord_id = $2
		  AND riot_account_id IS NULL
		  AND NOT EXISTS (SELECT 1 FROM members WHERE riot_account_id = $1)
	`

	result, err := r.q.Exec(ctx, query, accountID, discordID)
	if err != nil {
		return fmt.Errorf("failed to pair account for member %d: %w", discordID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("pairing conflict for member %d: member missing, already paired, or account claimed", discordID)
	}

	return nil
}

// SaveSyncWatermark overwrites the member's match-history watermark
func (r *MemberRepository) SaveSyncWatermark(ctx context.Context, discordID int64, watermark time.Time) error {
	query := `
		UPDATE members
		SET last_match_sync_at = $1
		WHERE discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, watermark.UTC(), discordID)
	if err != nil {
		return fmt.Errorf("failed to save sync watermark for member %d: %w", discordID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("member with discord ID %d not found", discordID)
	}

	return nil
}
