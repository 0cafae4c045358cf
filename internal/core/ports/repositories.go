package ports

import (
	"context"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WagerRepository defines persistence operations for wagers.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WagerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wager *domain.Wager) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Wager, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Wager, error)
	// Update applies the non-nil fields of upd. Returns domain.ErrWagerNotFound
	// when no row matches id.
	Update(ctx context.Context, tx pgx.Tx, id int64, upd WagerUpdate) error
	List(ctx context.Context, filter WagerFilter) ([]domain.Wager, error)
	// FindParticipantID resolves a handle to the id it last used as maker,
	// falling back to taker. Returns nil when the handle never appeared.
	FindParticipantID(ctx context.Context, handle string) (*int64, error)
}

// WagerUpdate is a partial update; nil fields are left untouched.
type WagerUpdate struct {
	OddsA       *decimal.Decimal
	OddsB       *decimal.Decimal
	Stake       *decimal.Decimal
	TakerID     *int64
	TakerHandle *string
	Status      *domain.WagerStatus
	ChosenSide  *domain.Side
	Result      *domain.Result
	MakerPayout *decimal.Decimal
	TakerPayout *decimal.Decimal
	FinishedAt  *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u WagerUpdate) IsEmpty() bool {
	return u == WagerUpdate{}
}

// ApplyTo copies the set fields onto w.
func (u WagerUpdate) ApplyTo(w *domain.Wager) {
	if u.OddsA != nil {
		w.OddsA = u.OddsA
	}
	if u.OddsB != nil {
		w.OddsB = u.OddsB
	}
	if u.Stake != nil {
		w.Stake = u.Stake
	}
	if u.TakerID != nil {
		w.TakerID = u.TakerID
	}
	if u.TakerHandle != nil {
		w.TakerHandle = *u.TakerHandle
	}
	if u.Status != nil {
		w.Status = *u.Status
	}
	if u.ChosenSide != nil {
		w.ChosenSide = u.ChosenSide
	}
	if u.Result != nil {
		w.Result = u.Result
	}
	if u.MakerPayout != nil {
		w.MakerPayout = *u.MakerPayout
	}
	if u.TakerPayout != nil {
		w.TakerPayout = *u.TakerPayout
	}
	if u.FinishedAt != nil {
		w.FinishedAt = u.FinishedAt
	}
}

// WagerFilter selects wagers for listing. Results are newest first: by
// finished_at when FinishedSince is set, by created_at otherwise.
type WagerFilter struct {
	Statuses      []domain.WagerStatus
	FinishedSince *time.Time
	Limit         int
}

// LedgerRepository defines persistence operations for ledger entries.
type LedgerRepository interface {
	Append(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error
	// ReplaceForWager deletes the wager's rows and inserts entries within tx.
	ReplaceForWager(ctx context.Context, tx pgx.Tx, wagerID int64, entries []domain.LedgerEntry) error
	ListByWager(ctx context.Context, wagerID int64) ([]domain.LedgerEntry, error)
	// Stats aggregates a participant's rows, optionally bounded (inclusive).
	Stats(ctx context.Context, participantID int64, from, to *time.Time) (*domain.Statistics, error)
	// LatestParticipantID returns the participant id on the handle's most
	// recent ledger row, or nil.
	LatestParticipantID(ctx context.Context, handle string) (*int64, error)
	// Reset deletes every ledger row and returns how many were removed.
	Reset(ctx context.Context) (int64, error)
}

// WagerEventRepository defines persistence for the wager audit trail.
type WagerEventRepository interface {
	Create(ctx context.Context, tx pgx.Tx, event *domain.WagerEvent) error
	ListByWager(ctx context.Context, wagerID int64) ([]domain.WagerEvent, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
