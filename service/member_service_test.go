package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitbot/events"
	"fitbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testMember(id, discordID int64) *models.Member {
	return &models.Member{
		ID:        id,
		DiscordID: discordID,
		JoinedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testPairedMember(id, discordID int64, accountID string) *models.Member {
	member := testMember(id, discordID)
	member.RiotAccountID = &accountID
	return member
}

func TestMemberService_Join_NewMember(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockLedger := new(MockLedgerRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, mockLedger, mockMatches, events.NewBus())

	created := testMember(1, 123456)
	mockMembers.On("Exists", ctx, int64(123456)).Return(false, nil)
	mockMembers.On("Create", ctx, int64(123456)).Return(created, nil)

	member, err := svc.Join(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, created, member)
	mockMembers.AssertExpectations(t)
}

func TestMemberService_Join_AlreadyExists(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), new(MockMatchHistory), events.NewBus())

	mockMembers.On("Exists", ctx, int64(123456)).Return(true, nil)

	_, err := svc.Join(ctx, 123456)

	assert.ErrorIs(t, err, ErrMemberAlreadyExists)
	mockMembers.AssertNotCalled(t, "Create")
}

func TestMemberService_AddPushupsDone(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockLedger := new(MockLedgerRepository)
	svc := NewMemberService(mockMembers, mockLedger, new(MockMatchHistory), events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockLedger.On("Add", ctx, int64(1), models.LedgerDone, int64(20), mock.AnythingOfType("time.Time")).Return(nil)
	mockLedger.On("AmountOn", ctx, int64(1), models.LedgerDone, mock.AnythingOfType("time.Time")).Return(int64(35), nil)
	mockLedger.On("NetStatus", ctx, int64(1)).Return(int64(-5), nil)

	todayTotal, net, err := svc.AddPushupsDone(ctx, 123456, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(35), todayTotal)
	assert.Equal(t, int64(-5), net)
	mockLedger.AssertExpectations(t)
}

// Negative amounts pass straight through; the source system accepted them
// and the ledger records them as-is.
func TestMemberService_AddPushupsDone_NegativeAmount(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockLedger := new(MockLedgerRepository)
	svc := NewMemberService(mockMembers, mockLedger, new(MockMatchHistory), events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockLedger.On("Add", ctx, int64(1), models.LedgerDone, int64(-5), mock.AnythingOfType("time.Time")).Return(nil)
	mockLedger.On("AmountOn", ctx, int64(1), models.LedgerDone, mock.AnythingOfType("time.Time")).Return(int64(-5), nil)
	mockLedger.On("NetStatus", ctx, int64(1)).Return(int64(5), nil)

	todayTotal, net, err := svc.AddPushupsDone(ctx, 123456, -5)

	assert.NoError(t, err)
	assert.Equal(t, int64(-5), todayTotal)
	assert.Equal(t, int64(5), net)
	mockLedger.AssertExpectations(t)
}

func TestMemberService_AddPushupsDone_NotJoined(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), new(MockMatchHistory), events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(999)).Return(nil, nil)

	_, _, err := svc.AddPushupsDone(ctx, 999, 10)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemberService_Status(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockLedger := new(MockLedgerRepository)
	svc := NewMemberService(mockMembers, mockLedger, new(MockMatchHistory), events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockLedger.On("Total", ctx, int64(1), models.LedgerDone).Return(int64(40), nil)
	mockLedger.On("Total", ctx, int64(1), models.LedgerOwed).Return(int64(55), nil)

	status, err := svc.Status(ctx, 123456)

	assert.NoError(t, err)
	assert.Equal(t, int64(15), status.Net)
	assert.Equal(t, int64(40), status.TotalDone)
	assert.Equal(t, int64(55), status.TotalOwed)
}

func TestMemberService_Pair_Success(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), mockMatches, events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockMatches.On("FindAccountID", ctx, "SummonerName").Return("acc-xyz", nil)
	mockMembers.On("AccountIsPaired", ctx, "acc-xyz").Return(false, nil)
	mockMembers.On("PairAccount", ctx, int64(123456), "acc-xyz").Return(nil)

	err := svc.Pair(ctx, 123456, "SummonerName")

	assert.NoError(t, err)
	mockMembers.AssertExpectations(t)
	mockMatches.AssertExpectations(t)
}

func TestMemberService_Pair_AlreadyPaired(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), mockMatches, events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testPairedMember(1, 123456, "acc-old"), nil)

	err := svc.Pair(ctx, 123456, "AnotherName")

	// Re-pairing fails regardless of the target account
	assert.ErrorIs(t, err, ErrAlreadyPaired)
	mockMatches.AssertNotCalled(t, "FindAccountID")
}

func TestMemberService_Pair_AccountNotFound(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), mockMatches, events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockMatches.On("FindAccountID", ctx, "Ghost").Return("", nil)

	err := svc.Pair(ctx, 123456, "Ghost")

	assert.ErrorIs(t, err, ErrAccountNotFound)
	mockMembers.AssertNotCalled(t, "PairAccount")
}

func TestMemberService_Pair_AccountClaimedElsewhere(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), mockMatches, events.NewBus())

	mockMembers.On("GetByDiscordID", ctx, int64(222)).Return(testMember(2, 222), nil)
	mockMatches.On("FindAccountID", ctx, "Shared").Return("acc-shared", nil)
	mockMembers.On("AccountIsPaired", ctx, "acc-shared").Return(true, nil)

	err := svc.Pair(ctx, 222, "Shared")

	assert.ErrorIs(t, err, ErrAccountAlreadyPaired)
	mockMembers.AssertNotCalled(t, "PairAccount")
}

func TestMemberService_Pair_ResolveError(t *testing.T) {
	ctx := context.Background()

	mockMembers := new(MockMemberRepository)
	mockMatches := new(MockMatchHistory)
	svc := NewMemberService(mockMembers, new(MockLedgerRepository), mockMatches, events.NewBus())

	resolveErr := errors.New("riot api returned status 500")
	mockMembers.On("GetByDiscordID", ctx, int64(123456)).Return(testMember(1, 123456), nil)
	mockMatches.On("FindAccountID", ctx, "Name").Return("", resolveErr)

	err := svc.Pair(ctx, 123456, "Name")

	assert.ErrorIs(t, err, resolveErr)
	mockMembers.AssertNotCalled(t, "PairAccount")
}
