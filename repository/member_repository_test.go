package repository

import (
	"context"
	"testing"
	"time"

	"fitbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMemberRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent member is nil", func(t *testing.T) {
		member, err := repo.GetByDiscordID(ctx, 111)
		require.NoError(t, err)
		assert.Nil(t, member)

		exists, err := repo.Exists(ctx, 111)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("create and fetch", func(t *testing.T) {
		created, err := repo.Create(ctx, 111)
		require.NoError(t, err)
		assert.Equal(t, int64(111), created.DiscordID)
		assert.WithinDuration(t, time.Now(), created.JoinedAt, 10*time.Second)
		assert.Nil(t, created.RiotAccountID)
		assert.Nil(t, created.LastMatchSyncAt)

		member, err := repo.GetByDiscordID(ctx, 111)
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, created.ID, member.ID)

		exists, err := repo.Exists(ctx, 111)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("duplicate discord id rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, 111)
		assert.Error(t, err)
	})
}

func TestMemberRepository_Pairing(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMemberRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, 201)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 202)
	require.NoError(t, err)

	t.Run("pair succeeds for unpaired member and unclaimed account", func(t *testing.T) {
		require.NoError(t, repo.PairAccount(ctx, 201, "acc-one"))

		member, err := repo.GetByDiscordID(ctx, 201)
		require.NoError(t, err)
		require.NotNil(t, member.RiotAccountID)
		assert.Equal(t, "acc-one", *member.RiotAccountID)
		assert.True(t, member.HasPairedAccount())

		paired, err := repo.AccountIsPaired(ctx, "acc-one")
		require.NoError(t, err)
		assert.True(t, paired)
	})

	t.Run("claimed account cannot be paired again", func(t *testing.T) {
		err := repo.PairAccount(ctx, 202, "acc-one")
		assert.Error(t, err)

		member, err := repo.GetByDiscordID(ctx, 202)
		require.NoError(t, err)
		assert.Nil(t, member.RiotAccountID)
	})

	t.Run("paired member cannot re-pair", func(t *testing.T) {
		err := repo.PairAccount(ctx, 201, "acc-two")
		assert.Error(t, err)

		member, err := repo.GetByDiscordID(ctx, 201)
		require.NoError(t, err)
		assert.Equal(t, "acc-one", *member.RiotAccountID)
	})

	t.Run("unclaimed account is unpaired", func(t *testing.T) {
		paired, err := repo.AccountIsPaired(ctx, "acc-nobody")
		require.NoError(t, err)
		assert.False(t, paired)
	})
}

func TestMemberRepository_SyncWatermark(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMemberRepository(testDB.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, 301)
	require.NoError(t, err)

	t.Run("defaults to join time before first sync", func(t *testing.T) {
		member, err := repo.GetByDiscordID(ctx, 301)
		require.NoError(t, err)
		assert.Nil(t, member.LastMatchSyncAt)
		assert.Equal(t, created.JoinedAt.UTC(), member.SyncWatermark())
	})

	t.Run("save and read back", func(t *testing.T) {
		watermark := time.Date(2024, 2, 14, 18, 30, 0, 0, time.UTC)
		require.NoError(t, repo.SaveSyncWatermark(ctx, 301, watermark))

		member, err := repo.GetByDiscordID(ctx, 301)
		require.NoError(t, err)
		require.NotNil(t, member.LastMatchSyncAt)
		assert.Equal(t, watermark, member.SyncWatermark())
	})

	t.Run("overwrite", func(t *testing.T) {
		later := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, repo.SaveSyncWatermark(ctx, 301, later))

		member, err := repo.GetByDiscordID(ctx, 301)
		require.NoError(t, err)
		assert.Equal(t, later, member.SyncWatermark())
	})

	t.Run("unknown member fails", func(t *testing.T) {
		err := repo.SaveSyncWatermark(ctx, 999, time.Now())
		assert.Error(t, err)
	})
}
