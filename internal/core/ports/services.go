package ports

import (
	"context"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Infrastructure Ports ---

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(actor domain.Actor) (string, time.Time, error)
	Validate(tokenString string) (*domain.Actor, error)
}

// SessionStore keeps per-user chat dialogue state with expiry.
type SessionStore interface {
	// Get returns the user's dialogue, or nil when none is active.
	Get(ctx context.Context, userID int64) (*domain.Dialogue, error)
	Save(ctx context.Context, dialogue *domain.Dialogue) error
	Delete(ctx context.Context, userID int64) error
}

// MetricsRecorder counts lifecycle outcomes.
type MetricsRecorder interface {
	ObserveTransition(action domain.WagerAction, err error)
	ObserveSettlement(result domain.Result, resettle bool)
}

// --- Service Ports (Business Logic) ---

// WagerService is the wager lifecycle controller. It is the single source
// of truth for which transitions are legal.
type WagerService interface {
	Create(ctx context.Context, req CreateWagerRequest) (*domain.Wager, error)
	SetOdds(ctx context.Context, actor domain.Actor, wagerID int64, odds domain.Odds) (*domain.Wager, error)
	Publish(ctx context.Context, actor domain.Actor, wagerID int64, stake decimal.Decimal) (*domain.Wager, error)
	EditTerms(ctx context.Context, actor domain.Actor, wagerID int64, odds domain.Odds, stake decimal.Decimal) (*domain.Wager, error)
	Cancel(ctx context.Context, actor domain.Actor, wagerID int64) (*domain.Wager, error)
	Accept(ctx context.Context, actor domain.Actor, wagerID int64, side domain.Side) (*domain.Wager, error)
	Settle(ctx context.Context, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error)
	Resettle(ctx context.Context, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error)
	Get(ctx context.Context, wagerID int64) (*domain.Wager, error)
	ListActive(ctx context.Context) ([]domain.Wager, error)
	ListRecent(ctx context.Context, window time.Duration) ([]domain.Wager, error)
	History(ctx context.Context, wagerID int64) ([]domain.WagerEvent, error)
}

// CreateWagerRequest holds input for a new draft wager.
type CreateWagerRequest struct {
	Maker    domain.Actor
	OutcomeA string
	OutcomeB string
	Label    *string
}

// StatisticsService reports ledger aggregates.
type StatisticsService interface {
	Statistics(ctx context.Context, participantID int64, from, to *time.Time) (*domain.Statistics, error)
	Standings(ctx context.Context, period domain.StatsPeriod) ([]domain.Statistics, error)
	Reset(ctx context.Context) (int64, error)
}
