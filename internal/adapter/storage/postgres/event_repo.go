package postgres

import (
	"context"
	"fmt"

	"wager-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WagerEventRepo implements ports.WagerEventRepository.
type WagerEventRepo struct {
	pool Pool
}

// NewWagerEventRepo creates a new WagerEventRepo.
func NewWagerEventRepo(pool Pool) *WagerEventRepo {
	return &WagerEventRepo{pool: pool}
}

// Create records an audit event inside the transition's transaction.
func (r *WagerEventRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.WagerEvent) error {
	var details *string
	if e.Details != "" {
		details = &e.Details
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO wager_events (wager_id, action, actor_id, actor_handle, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.WagerID, string(e.Action), e.ActorID, e.ActorHandle, details, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wager event: %w", err)
	}
	return nil
}

func (r *WagerEventRepo) ListByWager(ctx context.Context, wagerID int64) ([]domain.WagerEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, wager_id, action, actor_id, actor_handle, COALESCE(details::text, ''), created_at
		 FROM wager_events WHERE wager_id = $1 ORDER BY id`,
		wagerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list wager events: %w", err)
	}
	defer rows.Close()

	var events []domain.WagerEvent
	for rows.Next() {
		var e domain.WagerEvent
		if err := rows.Scan(&e.ID, &e.WagerID, &e.Action, &e.ActorID, &e.ActorHandle, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wager event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wager events: %w", err)
	}
	return events, nil
}
