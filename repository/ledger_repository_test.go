package repository

import (
	"context"
	"testing"
	"time"

	"fitbot/models"
	"fitbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_AddAccumulates(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	member, err := members.Create(ctx, 100)
	require.NoError(t, err)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, 3, day))
	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, 4, day))

	// One entry with the summed amount, not two entries
	amount, err := ledger.AmountOn(ctx, member.ID, models.LedgerDone, day)
	require.NoError(t, err)
	assert.Equal(t, int64(7), amount)

	var rows int
	err = testDB.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM pushups_done WHERE member_id = $1 AND date = $2`,
		member.ID, day).Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
}

func TestLedgerRepository_TimestampTruncatedToDay(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	member, err := members.Create(ctx, 100)
	require.NoError(t, err)

	morning := time.Date(2024, 1, 15, 8, 12, 0, 0, time.UTC)
	night := time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)

	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerOwed, 5, morning))
	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerOwed, 10, night))

	// Same UTC day, single accumulated bucket
	amount, err := ledger.AmountOn(ctx, member.ID, models.LedgerOwed, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(15), amount)
}

func TestLedgerRepository_LedgersAreIndependent(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	member, err := members.Create(ctx, 100)
	require.NoError(t, err)

	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, 30, day))
	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerOwed, 45, day))

	done, err := ledger.Total(ctx, member.ID, models.LedgerDone)
	require.NoError(t, err)
	assert.Equal(t, int64(30), done)

	owed, err := ledger.Total(ctx, member.ID, models.LedgerOwed)
	require.NoError(t, err)
	assert.Equal(t, int64(45), owed)
}

func TestLedgerRepository_NetStatus(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	member, err := members.Create(ctx, 100)
	require.NoError(t, err)

	t.Run("zero for fresh member", func(t *testing.T) {
		net, err := ledger.NetStatus(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), net)
	})

	t.Run("owed minus done across days", func(t *testing.T) {
		day1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		day2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

		require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerOwed, 50, day1))
		require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerOwed, 25, day2))
		require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, 60, day2))

		net, err := ledger.NetStatus(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(15), net)
	})

	t.Run("negative when ahead", func(t *testing.T) {
		require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, 100, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)))

		net, err := ledger.NetStatus(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(-85), net)
	})
}

func TestLedgerRepository_NegativeAmounts(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	member, err := members.Create(ctx, 100)
	require.NoError(t, err)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// Negative entries are accepted and recorded as-is
	require.NoError(t, ledger.Add(ctx, member.ID, models.LedgerDone, -5, day))

	amount, err := ledger.AmountOn(ctx, member.ID, models.LedgerDone, day)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), amount)

	net, err := ledger.NetStatus(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), net)
}

func TestLedgerRepository_WorstNet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	members := NewMemberRepository(testDB.DB)
	ledger := NewLedgerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("no members", func(t *testing.T) {
		discordID, net, err := ledger.WorstNet(ctx)
		require.NoError(t, err)
		assert.Zero(t, discordID)
		assert.Zero(t, net)
	})

	ahead, err := members.Create(ctx, 401)
	require.NoError(t, err)
	behind, err := members.Create(ctx, 402)
	require.NoError(t, err)

	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.Add(ctx, ahead.ID, models.LedgerDone, 100, day))
	require.NoError(t, ledger.Add(ctx, behind.ID, models.LedgerOwed, 40, day))
	require.NoError(t, ledger.Add(ctx, behind.ID, models.LedgerDone, 10, day))

	t.Run("member furthest behind wins", func(t *testing.T) {
		discordID, net, err := ledger.WorstNet(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(402), discordID)
		assert.Equal(t, int64(30), net)
	})

	t.Run("nobody behind yields zeros", func(t *testing.T) {
		require.NoError(t, ledger.Add(ctx, behind.ID, models.LedgerDone, 50, day))

		discordID, net, err := ledger.WorstNet(ctx)
		require.NoError(t, err)
		assert.Zero(t, discordID)
		assert.Zero(t, net)
	})
}
