package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports/mocks"
	"wager-tracker/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type statsTestDeps struct {
	svc        *StatisticsServiceImpl
	ledgerRepo *mocks.MockLedgerRepository
	wagerRepo  *mocks.MockWagerRepository
	ctrl       *gomock.Controller
}

func setupStatisticsService(t *testing.T) *statsTestDeps {
	ctrl := gomock.NewController(t)
	d := &statsTestDeps{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		wagerRepo:  mocks.NewMockWagerRepository(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewStatisticsService(d.ledgerRepo, d.wagerRepo, strictRoster(), zerolog.Nop())
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func int64Ptr(v int64) *int64 { return &v }

func TestStatisticsService_Statistics(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	from := fixedNow.Add(-48 * time.Hour)
	to := fixedNow

	d.ledgerRepo.EXPECT().Stats(ctx, alice.ID, &from, &to).Return(&domain.Statistics{
		Balance: dec("-500"), Count: 3, Wins: 1, Losses: 2,
	}, nil)

	stats, err := d.svc.Statistics(ctx, alice.ID, &from, &to)
	require.NoError(t, err)
	assert.True(t, stats.Balance.Equal(dec("-500")))
	assert.Equal(t, int64(3), stats.Count)
	assert.Equal(t, int64(1), stats.Wins)
	assert.Equal(t, int64(2), stats.Losses)
}

func TestStatisticsService_Statistics_InvertedRange(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	_, err := d.svc.Statistics(context.Background(), alice.ID, &from, &to)
	assertAppError(t, err, apperror.CodeInvalidInput)
}

func TestStatisticsService_Statistics_StorageFailure(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledgerRepo.EXPECT().Stats(ctx, alice.ID, gomock.Nil(), gomock.Nil()).Return(nil, errors.New("timeout"))

	_, err := d.svc.Statistics(ctx, alice.ID, nil, nil)
	assertAppError(t, err, apperror.CodeStorageFailure)
}

func TestStatisticsService_Standings(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	weekAgo := fixedNow.AddDate(0, 0, -7)

	// alice resolved from the ledger, bob only ever appeared on a wager
	d.ledgerRepo.EXPECT().LatestParticipantID(ctx, "alice").Return(int64Ptr(alice.ID), nil)
	d.ledgerRepo.EXPECT().Stats(ctx, alice.ID, &weekAgo, gomock.Nil()).Return(&domain.Statistics{
		Balance: dec("500"), Count: 1, Wins: 1,
	}, nil)
	d.ledgerRepo.EXPECT().LatestParticipantID(ctx, "bob").Return(nil, nil)
	d.wagerRepo.EXPECT().FindParticipantID(ctx, "bob").Return(int64Ptr(bob.ID), nil)
	d.ledgerRepo.EXPECT().Stats(ctx, bob.ID, &weekAgo, gomock.Nil()).Return(&domain.Statistics{
		Balance: dec("-500"), Count: 1, Losses: 1,
	}, nil)

	standings, err := d.svc.Standings(ctx, domain.PeriodWeek)
	require.NoError(t, err)
	require.Len(t, standings, 2)

	assert.Equal(t, "alice", standings[0].Handle)
	assert.Equal(t, alice.ID, *standings[0].ParticipantID)
	assert.True(t, standings[0].Balance.Equal(dec("500")))
	assert.Equal(t, "bob", standings[1].Handle)
	assert.True(t, standings[0].Balance.Add(standings[1].Balance).IsZero())
}

func TestStatisticsService_Standings_UnknownParticipant(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	d.ledgerRepo.EXPECT().LatestParticipantID(ctx, gomock.Any()).Return(nil, nil).Times(2)
	d.wagerRepo.EXPECT().FindParticipantID(ctx, gomock.Any()).Return(nil, nil).Times(2)

	standings, err := d.svc.Standings(ctx, domain.PeriodAll)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	for _, s := range standings {
		assert.Nil(t, s.ParticipantID)
		assert.True(t, s.Balance.IsZero())
		assert.Zero(t, s.Count)
	}
}

func TestStatisticsService_Standings_StorageFailure(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledgerRepo.EXPECT().LatestParticipantID(ctx, "alice").Return(nil, errors.New("down"))

	_, err := d.svc.Standings(ctx, domain.PeriodToday)
	assertAppError(t, err, apperror.CodeStorageFailure)
}

func TestStatisticsService_Reset(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledgerRepo.EXPECT().Reset(ctx).Return(int64(12), nil)

	n, err := d.svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestStatisticsService_Reset_Failure(t *testing.T) {
	d := setupStatisticsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.ledgerRepo.EXPECT().Reset(ctx).Return(int64(0), errors.New("permission denied"))

	_, err := d.svc.Reset(ctx)
	assertAppError(t, err, apperror.CodeStorageFailure)
}
