package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// mutation validates a locked wager and returns the fields to persist plus
// audit details. It may write ledger rows through tx.
type mutation func(ctx context.Context, tx pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error)

// WagerServiceImpl implements ports.WagerService.
type WagerServiceImpl struct {
	wagerRepo  ports.WagerRepository
	ledgerRepo ports.LedgerRepository
	eventRepo  ports.WagerEventRepository
	transactor ports.DBTransactor
	metrics    ports.MetricsRecorder
	roster     domain.Roster
	log        zerolog.Logger
	now        func() time.Time
}

// NewWagerService creates a new WagerServiceImpl. metrics may be nil.
func NewWagerService(
	wagerRepo ports.WagerRepository,
	ledgerRepo ports.LedgerRepository,
	eventRepo ports.WagerEventRepository,
	transactor ports.DBTransactor,
	metrics ports.MetricsRecorder,
	roster domain.Roster,
	log zerolog.Logger,
) *WagerServiceImpl {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &WagerServiceImpl{
		wagerRepo:  wagerRepo,
		ledgerRepo: ledgerRepo,
		eventRepo:  eventRepo,
		transactor: transactor,
		metrics:    metrics,
		roster:     roster,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a DRAFT wager for a registered participant.
func (s *WagerServiceImpl) Create(ctx context.Context, req ports.CreateWagerRequest) (*domain.Wager, error) {
	w, err := s.create(ctx, req)
	s.metrics.ObserveTransition(domain.WagerActionCreate, err)
	if err != nil {
		s.logFailure(err, domain.WagerActionCreate, 0, req.Maker)
		return nil, err
	}
	s.logTransition(domain.WagerActionCreate, w, req.Maker)
	return w, nil
}

func (s *WagerServiceImpl) create(ctx context.Context, req ports.CreateWagerRequest) (*domain.Wager, error) {
	if !s.roster.IsRegistered(req.Maker.Handle) {
		return nil, apperror.ErrAccessDenied("Only registered participants can create wagers")
	}

	outcomeA := strings.TrimSpace(req.OutcomeA)
	outcomeB := strings.TrimSpace(req.OutcomeB)
	if outcomeA == "" || outcomeB == "" {
		return nil, apperror.Validation("Both outcome names are required")
	}

	var label *string
	if req.Label != nil {
		if l := strings.TrimSpace(*req.Label); l != "" {
			label = &l
		}
	}

	taker, _ := s.roster.Counterparty(req.Maker.Handle)
	w := &domain.Wager{
		MakerID:      req.Maker.ID,
		MakerHandle:  req.Maker.Handle,
		TakerHandle:  taker,
		Label:        label,
		OutcomeAName: outcomeA,
		OutcomeBName: outcomeB,
		Status:       domain.WagerStatusDraft,
		MakerPayout:  decimal.Zero,
		TakerPayout:  decimal.Zero,
		CreatedAt:    s.now(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	id, err := s.wagerRepo.Create(ctx, dbTx, w)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("create wager: %w", err))
	}
	w.ID = id

	details := map[string]any{"outcome_a": outcomeA, "outcome_b": outcomeB}
	if err := s.recordEvent(ctx, dbTx, w.ID, domain.WagerActionCreate, req.Maker, details); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("commit tx: %w", err))
	}
	return w, nil
}

// SetOdds sets both odds on a DRAFT or OPEN wager.
func (s *WagerServiceImpl) SetOdds(ctx context.Context, actor domain.Actor, wagerID int64, odds domain.Odds) (*domain.Wager, error) {
	valid, err := domain.NewOdds(odds.A, odds.B)
	if err != nil {
		return s.reject(domain.WagerActionSetOdds, wagerID, actor, apperror.ErrInvalidInput(err))
	}

	return s.transition(ctx, domain.WagerActionSetOdds, actor, wagerID,
		func(_ context.Context, _ pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.MakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only the maker can set odds")
			}
			if w.Status != domain.WagerStatusDraft && w.Status != domain.WagerStatusOpen {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Odds can only be set on a draft or open wager")
			}
			return ports.WagerUpdate{OddsA: &valid.A, OddsB: &valid.B},
				map[string]any{"odds_a": valid.A, "odds_b": valid.B}, nil
		})
}

// Publish freezes the stake and taker on a DRAFT wager and opens it.
func (s *WagerServiceImpl) Publish(ctx context.Context, actor domain.Actor, wagerID int64, stake decimal.Decimal) (*domain.Wager, error) {
	rounded, err := domain.NormalizeStake(stake)
	if err != nil {
		return s.reject(domain.WagerActionPublish, wagerID, actor, apperror.ErrInvalidInput(err))
	}

	return s.transition(ctx, domain.WagerActionPublish, actor, wagerID,
		func(_ context.Context, _ pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.MakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only the maker can publish")
			}
			if w.Status != domain.WagerStatusDraft {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only a draft wager can be published")
			}
			if _, ok := w.Odds(); !ok {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Odds must be set before publishing")
			}

			taker := s.roster.TakerFor(w.MakerHandle)
			status := domain.WagerStatusOpen
			return ports.WagerUpdate{Stake: &rounded, TakerHandle: &taker, Status: &status},
				map[string]any{"stake": rounded, "taker_handle": taker}, nil
		})
}

// EditTerms replaces the odds and stake of an OPEN wager.
func (s *WagerServiceImpl) EditTerms(ctx context.Context, actor domain.Actor, wagerID int64, odds domain.Odds, stake decimal.Decimal) (*domain.Wager, error) {
	valid, err := domain.NewOdds(odds.A, odds.B)
	if err != nil {
		return s.reject(domain.WagerActionEdit, wagerID, actor, apperror.ErrInvalidInput(err))
	}
	rounded, err := domain.NormalizeStake(stake)
	if err != nil {
		return s.reject(domain.WagerActionEdit, wagerID, actor, apperror.ErrInvalidInput(err))
	}

	return s.transition(ctx, domain.WagerActionEdit, actor, wagerID,
		func(_ context.Context, _ pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.MakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only the maker can edit")
			}
			if w.Status != domain.WagerStatusOpen {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only an open wager can be edited")
			}
			return ports.WagerUpdate{OddsA: &valid.A, OddsB: &valid.B, Stake: &rounded},
				map[string]any{"odds_a": valid.A, "odds_b": valid.B, "stake": rounded}, nil
		})
}

// Cancel withdraws an OPEN wager.
func (s *WagerServiceImpl) Cancel(ctx context.Context, actor domain.Actor, wagerID int64) (*domain.Wager, error) {
	return s.transition(ctx, domain.WagerActionCancel, actor, wagerID,
		func(_ context.Context, _ pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.MakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only the maker can cancel")
			}
			if w.Status != domain.WagerStatusOpen {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only an open wager can be canceled")
			}
			status := domain.WagerStatusCanceled
			return ports.WagerUpdate{Status: &status}, nil, nil
		})
}

// Accept records the taker's side on an OPEN wager.
func (s *WagerServiceImpl) Accept(ctx context.Context, actor domain.Actor, wagerID int64, side domain.Side) (*domain.Wager, error) {
	if side != domain.SideA && side != domain.SideB {
		return s.reject(domain.WagerActionAccept, wagerID, actor, apperror.Validation("Side must be A or B"))
	}

	return s.transition(ctx, domain.WagerActionAccept, actor, wagerID,
		func(_ context.Context, _ pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.TakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only the invited taker can accept")
			}
			if w.Status != domain.WagerStatusOpen {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only an open wager can be accepted")
			}
			takerID := actor.ID
			status := domain.WagerStatusTaken
			return ports.WagerUpdate{TakerID: &takerID, ChosenSide: &side, Status: &status},
				map[string]any{"side": side}, nil
		})
}

// Settle records the result of a TAKEN wager and writes its two ledger rows.
func (s *WagerServiceImpl) Settle(ctx context.Context, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error) {
	return s.settle(ctx, domain.WagerActionSettle, actor, wagerID, result)
}

// Resettle corrects the result of a FINISHED wager, replacing its ledger rows.
func (s *WagerServiceImpl) Resettle(ctx context.Context, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error) {
	return s.settle(ctx, domain.WagerActionResettle, actor, wagerID, result)
}

func (s *WagerServiceImpl) settle(ctx context.Context, action domain.WagerAction, actor domain.Actor, wagerID int64, result domain.Result) (*domain.Payout, error) {
	result, err := domain.ParseResult(string(result))
	if err != nil {
		_, rerr := s.reject(action, wagerID, actor, apperror.ErrInvalidInput(err))
		return nil, rerr
	}

	resettle := action == domain.WagerActionResettle
	required := domain.WagerStatusTaken
	if resettle {
		required = domain.WagerStatusFinished
	}

	var payout domain.Payout
	_, err = s.transition(ctx, action, actor, wagerID,
		func(ctx context.Context, tx pgx.Tx, w *domain.Wager) (ports.WagerUpdate, map[string]any, error) {
			if !s.roster.Authorize(actor.Handle, w.MakerHandle) && !s.roster.Authorize(actor.Handle, w.TakerHandle) {
				return ports.WagerUpdate{}, nil, apperror.ErrAccessDenied("Only a party to the wager can record the result")
			}
			if w.Status != required {
				if resettle {
					return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only a finished wager can be resettled")
				}
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Only a taken wager can be settled")
			}

			p, err := w.Payout(result)
			if err != nil {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Wager terms are incomplete")
			}

			now := s.now()
			entries, err := domain.SettlementEntries(w, p, now)
			if err != nil {
				return ports.WagerUpdate{}, nil, apperror.ErrInvalidState("Wager has no taker")
			}

			if resettle {
				err = s.ledgerRepo.ReplaceForWager(ctx, tx, w.ID, entries)
			} else {
				err = s.ledgerRepo.Append(ctx, tx, entries)
			}
			if err != nil {
				return ports.WagerUpdate{}, nil, apperror.ErrStorageFailure(fmt.Errorf("write ledger: %w", err))
			}

			payout = p
			details := map[string]any{"result": result, "maker_payout": p.Maker, "taker_payout": p.Taker}
			if w.Result != nil {
				details["previous_result"] = *w.Result
			}
			status := domain.WagerStatusFinished
			return ports.WagerUpdate{
				Status:      &status,
				Result:      &result,
				MakerPayout: &p.Maker,
				TakerPayout: &p.Taker,
				FinishedAt:  &now,
			}, details, nil
		})
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveSettlement(result, resettle)
	return &payout, nil
}

// Get fetches a wager by id.
func (s *WagerServiceImpl) Get(ctx context.Context, wagerID int64) (*domain.Wager, error) {
	w, err := s.wagerRepo.GetByID(ctx, wagerID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("get wager: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWagerNotFound()
	}
	return w, nil
}

// ListActive returns OPEN and TAKEN wagers, newest first.
func (s *WagerServiceImpl) ListActive(ctx context.Context) ([]domain.Wager, error) {
	wagers, err := s.wagerRepo.List(ctx, ports.WagerFilter{
		Statuses: []domain.WagerStatus{domain.WagerStatusOpen, domain.WagerStatusTaken},
	})
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("list active wagers: %w", err))
	}
	return wagers, nil
}

// ListRecent returns wagers finished within window, most recently finished first.
func (s *WagerServiceImpl) ListRecent(ctx context.Context, window time.Duration) ([]domain.Wager, error) {
	if window <= 0 {
		return nil, apperror.Validation("Window must be positive")
	}
	since := s.now().Add(-window)
	wagers, err := s.wagerRepo.List(ctx, ports.WagerFilter{
		Statuses:      []domain.WagerStatus{domain.WagerStatusFinished},
		FinishedSince: &since,
	})
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("list recent wagers: %w", err))
	}
	return wagers, nil
}

// History returns the audit trail of a wager, oldest first.
func (s *WagerServiceImpl) History(ctx context.Context, wagerID int64) ([]domain.WagerEvent, error) {
	if _, err := s.Get(ctx, wagerID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListByWager(ctx, wagerID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("list wager events: %w", err))
	}
	return events, nil
}

// transition runs mutate against the locked wager inside one database
// transaction and records the outcome.
func (s *WagerServiceImpl) transition(ctx context.Context, action domain.WagerAction, actor domain.Actor, wagerID int64, mutate mutation) (*domain.Wager, error) {
	w, err := s.applyLocked(ctx, action, actor, wagerID, mutate)
	s.metrics.ObserveTransition(action, err)
	if err != nil {
		s.logFailure(err, action, wagerID, actor)
		return nil, err
	}
	s.logTransition(action, w, actor)
	return w, nil
}

func (s *WagerServiceImpl) applyLocked(ctx context.Context, action domain.WagerAction, actor domain.Actor, wagerID int64, mutate mutation) (*domain.Wager, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	w, err := s.wagerRepo.GetByIDForUpdate(ctx, dbTx, wagerID)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("lock wager: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWagerNotFound()
	}

	upd, details, err := mutate(ctx, dbTx, w)
	if err != nil {
		return nil, err
	}

	if err := s.wagerRepo.Update(ctx, dbTx, w.ID, upd); err != nil {
		if errors.Is(err, domain.ErrWagerNotFound) {
			return nil, apperror.ErrWagerNotFound()
		}
		return nil, apperror.ErrStorageFailure(fmt.Errorf("update wager: %w", err))
	}

	if err := s.recordEvent(ctx, dbTx, w.ID, action, actor, details); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("commit tx: %w", err))
	}

	upd.ApplyTo(w)
	return w, nil
}

func (s *WagerServiceImpl) recordEvent(ctx context.Context, tx pgx.Tx, wagerID int64, action domain.WagerAction, actor domain.Actor, details map[string]any) error {
	event := &domain.WagerEvent{
		WagerID:     wagerID,
		Action:      action,
		ActorID:     actor.ID,
		ActorHandle: actor.Handle,
		CreatedAt:   s.now(),
	}
	if len(details) > 0 {
		raw, err := json.Marshal(details)
		if err != nil {
			return apperror.ErrStorageFailure(fmt.Errorf("encode event details: %w", err))
		}
		event.Details = string(raw)
	}
	if err := s.eventRepo.Create(ctx, tx, event); err != nil {
		return apperror.ErrStorageFailure(fmt.Errorf("record wager event: %w", err))
	}
	return nil
}

// reject counts and logs an input error raised before any storage access.
func (s *WagerServiceImpl) reject(action domain.WagerAction, wagerID int64, actor domain.Actor, err error) (*domain.Wager, error) {
	s.metrics.ObserveTransition(action, err)
	s.logFailure(err, action, wagerID, actor)
	return nil, err
}

func (s *WagerServiceImpl) logTransition(action domain.WagerAction, w *domain.Wager, actor domain.Actor) {
	s.log.Info().
		Int64("wager_id", w.ID).
		Str("op", string(action)).
		Str("actor", actor.Handle).
		Str("status", string(w.Status)).
		Msg("wager transition")
}

func (s *WagerServiceImpl) logFailure(err error, action domain.WagerAction, wagerID int64, actor domain.Actor) {
	if apperror.IsUserRejection(err) {
		s.log.Debug().
			Err(err).
			Int64("wager_id", wagerID).
			Str("op", string(action)).
			Str("actor", actor.Handle).
			Msg("wager transition rejected")
		return
	}
	s.log.Error().
		Err(err).
		Int64("wager_id", wagerID).
		Str("op", string(action)).
		Str("actor", actor.Handle).
		Msg("wager transition failed")
}

type nopMetrics struct{}

func (nopMetrics) ObserveTransition(domain.WagerAction, error) {}
func (nopMetrics) ObserveSettlement(domain.Result, bool)       {}
