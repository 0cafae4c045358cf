package postgres

import (
	"context"
	"testing"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWagerEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerEventRepo(mock)
	e := &domain.WagerEvent{
		WagerID:     7,
		Action:      domain.WagerActionResettle,
		ActorID:     1001,
		ActorHandle: "alice",
		Details:     `{"result":"B"}`,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wager_events").
		WithArgs(int64(7), "RESETTLE", int64(1001), "alice", strPtr(`{"result":"B"}`), e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Create(context.Background(), dbTx, e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerEventRepo_Create_NoDetails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerEventRepo(mock)
	e := &domain.WagerEvent{WagerID: 7, Action: domain.WagerActionCancel, ActorID: 1, ActorHandle: "alice", CreatedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wager_events").
		WithArgs(int64(7), "CANCEL", int64(1), "alice", (*string)(nil), e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Create(context.Background(), dbTx, e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWagerEventRepo_ListByWager(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWagerEventRepo(mock)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT .+ FROM wager_events WHERE wager_id").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "wager_id", "action", "actor_id", "actor_handle", "details", "created_at"}).
			AddRow(int64(1), int64(7), domain.WagerActionSettle, int64(1002), "bob", `{"result":"A"}`, now).
			AddRow(int64(2), int64(7), domain.WagerActionResettle, int64(1001), "alice", `{"result":"B"}`, now))

	events, err := repo.ListByWager(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.WagerActionSettle, events[0].Action)
	assert.Equal(t, domain.WagerActionResettle, events[1].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
