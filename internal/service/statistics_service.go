package service

import (
	"context"
	"fmt"
	"time"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"
	"wager-tracker/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StatisticsServiceImpl implements ports.StatisticsService on top of the
// ledger.
type StatisticsServiceImpl struct {
	ledgerRepo ports.LedgerRepository
	wagerRepo  ports.WagerRepository
	roster     domain.Roster
	log        zerolog.Logger
	now        func() time.Time
}

// NewStatisticsService creates a new StatisticsServiceImpl.
func NewStatisticsService(
	ledgerRepo ports.LedgerRepository,
	wagerRepo ports.WagerRepository,
	roster domain.Roster,
	log zerolog.Logger,
) *StatisticsServiceImpl {
	return &StatisticsServiceImpl{
		ledgerRepo: ledgerRepo,
		wagerRepo:  wagerRepo,
		roster:     roster,
		log:        log,
		now:        time.Now,
	}
}

// Statistics aggregates one participant's ledger rows within [from, to].
func (s *StatisticsServiceImpl) Statistics(ctx context.Context, participantID int64, from, to *time.Time) (*domain.Statistics, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperror.Validation("From must not be after to")
	}

	stats, err := s.ledgerRepo.Stats(ctx, participantID, from, to)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("ledger stats: %w", err))
	}
	return stats, nil
}

// Standings returns statistics for both configured participants over the
// named period, in roster order. A participant who never appeared on a
// wager gets zeroed statistics.
func (s *StatisticsServiceImpl) Standings(ctx context.Context, period domain.StatsPeriod) ([]domain.Statistics, error) {
	from := period.Since(s.now())

	standings := make([]domain.Statistics, 0, 2)
	for _, handle := range s.roster.Handles() {
		id, err := s.resolveParticipant(ctx, handle)
		if err != nil {
			return nil, err
		}
		if id == nil {
			standings = append(standings, domain.Statistics{Handle: handle, Balance: decimal.Zero})
			continue
		}

		stats, err := s.Statistics(ctx, *id, from, nil)
		if err != nil {
			return nil, err
		}
		stats.ParticipantID = id
		stats.Handle = handle
		standings = append(standings, *stats)
	}
	return standings, nil
}

// Reset clears the whole ledger. Wagers are left untouched.
func (s *StatisticsServiceImpl) Reset(ctx context.Context) (int64, error) {
	n, err := s.ledgerRepo.Reset(ctx)
	if err != nil {
		return 0, apperror.ErrStorageFailure(fmt.Errorf("reset ledger: %w", err))
	}
	s.log.Warn().Int64("rows", n).Msg("ledger reset")
	return n, nil
}

func (s *StatisticsServiceImpl) resolveParticipant(ctx context.Context, handle string) (*int64, error) {
	id, err := s.ledgerRepo.LatestParticipantID(ctx, handle)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("resolve participant %q: %w", handle, err))
	}
	if id != nil {
		return id, nil
	}

	id, err = s.wagerRepo.FindParticipantID(ctx, handle)
	if err != nil {
		return nil, apperror.ErrStorageFailure(fmt.Errorf("resolve participant %q: %w", handle, err))
	}
	return id, nil
}
