package service

import (
	"context"
	"time"

	"fitbot/models"

	"github.com/stretchr/testify/mock"
)

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Member, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) Exists(ctx context.Context, discordID int64) (bool, error) {
	args := m.Called(ctx, discordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Create(ctx context.Context, discordID int64) (*models.Member, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) AccountIsPaired(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) PairAccount(ctx context.Context, discordID int64, accountID string) error {
	args := m.Called(ctx, discordID, accountID)
	return args.Error(0)
}

func (m *MockMemberRepository) SaveSyncWatermark(ctx context.Context, discordID int64, watermark time.Time) error {
	args := m.Called(ctx, discordID, watermark)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of LedgerRepository
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Add(ctx context.Context, memberID int64, kind models.LedgerKind, amount int64, date time.Time) error {
	args := m.Called(ctx, memberID, kind, amount, date)
	return args.Error(0)
}

func (m *MockLedgerRepository) AmountOn(ctx context.Context, memberID int64, kind models.LedgerKind, date time.Time) (int64, error) {
	args := m.Called(ctx, memberID, kind, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) Total(ctx context.Context, memberID int64, kind models.LedgerKind) (int64, error) {
	args := m.Called(ctx, memberID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) NetStatus(ctx context.Context, memberID int64) (int64, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) WorstNet(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockMatchHistory is a mock implementation of the MatchHistory client
type MockMatchHistory struct {
	mock.Mock
}

func (m *MockMatchHistory) FindAccountID(ctx context.Context, summonerName string) (string, error) {
	args := m.Called(ctx, summonerName)
	return args.String(0), args.Error(1)
}

func (m *MockMatchHistory) DeathsByDate(ctx context.Context, accountID string, from time.Time) *models.SyncResult {
	args := m.Called(ctx, accountID, from)
	return args.Get(0).(*models.SyncResult)
}
