package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const wagerColumns = `id, maker_id, maker_handle, taker_id, taker_handle, label,
		outcome_a_name, outcome_b_name, odds_a, odds_b, stake, status, chosen_side,
		outcome_result, maker_payout, taker_payout, created_at, finished_at`

// WagerRepo implements ports.WagerRepository.
type WagerRepo struct {
	pool Pool
}

// NewWagerRepo creates a new WagerRepo.
func NewWagerRepo(pool Pool) *WagerRepo {
	return &WagerRepo{pool: pool}
}

// Create inserts a draft wager within a database transaction and returns its id.
func (r *WagerRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Wager) (int64, error) {
	query := `INSERT INTO wagers (maker_id, maker_handle, taker_handle, label,
		outcome_a_name, outcome_b_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := tx.QueryRow(ctx, query,
		w.MakerID, w.MakerHandle, w.TakerHandle, w.Label,
		w.OutcomeAName, w.OutcomeBName, w.Status, w.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert wager: %w", err)
	}
	return id, nil
}

// GetByID fetches a wager by id. Returns (nil, nil) if absent.
func (r *WagerRepo) GetByID(ctx context.Context, id int64) (*domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1`
	return scanWager(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a wager with SELECT ... FOR UPDATE (pessimistic lock).
// Must be called within a database transaction.
func (r *WagerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Wager, error) {
	query := `SELECT ` + wagerColumns + ` FROM wagers WHERE id = $1 FOR UPDATE`
	return scanWager(tx.QueryRow(ctx, query, id))
}

// Update applies a partial update within a database transaction.
func (r *WagerRepo) Update(ctx context.Context, tx pgx.Tx, id int64, upd ports.WagerUpdate) error {
	var sets []string
	var args []any
	argIdx := 1

	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if upd.OddsA != nil {
		set("odds_a", *upd.OddsA)
	}
	if upd.OddsB != nil {
		set("odds_b", *upd.OddsB)
	}
	if upd.Stake != nil {
		set("stake", *upd.Stake)
	}
	if upd.TakerID != nil {
		set("taker_id", *upd.TakerID)
	}
	if upd.TakerHandle != nil {
		set("taker_handle", *upd.TakerHandle)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.ChosenSide != nil {
		set("chosen_side", *upd.ChosenSide)
	}
	if upd.Result != nil {
		set("outcome_result", *upd.Result)
	}
	if upd.MakerPayout != nil {
		set("maker_payout", *upd.MakerPayout)
	}
	if upd.TakerPayout != nil {
		set("taker_payout", *upd.TakerPayout)
	}
	if upd.FinishedAt != nil {
		set("finished_at", *upd.FinishedAt)
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE wagers SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, id)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update wager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wager %d: %w", id, domain.ErrWagerNotFound)
	}
	return nil
}

// List fetches wagers matching the filter, newest first.
func (r *WagerRepo) List(ctx context.Context, filter ports.WagerFilter) ([]domain.Wager, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argIdx))
		args = append(args, statuses)
		argIdx++
	}

	orderBy := "created_at DESC, id DESC"
	if filter.FinishedSince != nil {
		conditions = append(conditions, fmt.Sprintf("finished_at >= $%d", argIdx))
		args = append(args, *filter.FinishedSince)
		argIdx++
		orderBy = "finished_at DESC, id DESC"
	}

	query := `SELECT ` + wagerColumns + ` FROM wagers`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY " + orderBy
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wagers: %w", err)
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		w, err := scanWager(rows)
		if err != nil {
			return nil, err
		}
		wagers = append(wagers, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wager rows: %w", err)
	}
	return wagers, nil
}

// FindParticipantID resolves a handle from the most recent wager it made,
// then from the most recent wager it took.
func (r *WagerRepo) FindParticipantID(ctx context.Context, handle string) (*int64, error) {
	query := `SELECT COALESCE(
		(SELECT maker_id FROM wagers WHERE lower(maker_handle) = lower($1)
			ORDER BY created_at DESC LIMIT 1),
		(SELECT taker_id FROM wagers WHERE lower(taker_handle) = lower($1) AND taker_id IS NOT NULL
			ORDER BY created_at DESC LIMIT 1)
	)`

	var id *int64
	if err := r.pool.QueryRow(ctx, query, handle).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find participant id: %w", err)
	}
	return id, nil
}

// scanWager scans a single row into a Wager. Returns (nil, nil) on no rows.
func scanWager(row pgx.Row) (*domain.Wager, error) {
	w := &domain.Wager{}
	err := row.Scan(
		&w.ID, &w.MakerID, &w.MakerHandle, &w.TakerID, &w.TakerHandle, &w.Label,
		&w.OutcomeAName, &w.OutcomeBName, &w.OddsA, &w.OddsB, &w.Stake, &w.Status, &w.ChosenSide,
		&w.Result, &w.MakerPayout, &w.TakerPayout, &w.CreatedAt, &w.FinishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wager: %w", err)
	}
	return w, nil
}
