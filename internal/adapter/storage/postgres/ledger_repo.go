package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LedgerRepo implements ports.LedgerRepository.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Append inserts entries within a database transaction.
func (r *LedgerRepo) Append(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (wager_id, participant_id, participant_handle, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	for _, e := range entries {
		_, err := tx.Exec(ctx, query, e.WagerID, e.ParticipantID, e.ParticipantHandle, e.Amount, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}
	return nil
}

// ReplaceForWager deletes the wager's entries and inserts the new ones in tx.
func (r *LedgerRepo) ReplaceForWager(ctx context.Context, tx pgx.Tx, wagerID int64, entries []domain.LedgerEntry) error {
	if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE wager_id = $1`, wagerID); err != nil {
		return fmt.Errorf("delete ledger entries: %w", err)
	}
	return r.Append(ctx, tx, entries)
}

// ListByWager fetches a wager's entries in insertion order.
func (r *LedgerRepo) ListByWager(ctx context.Context, wagerID int64) ([]domain.LedgerEntry, error) {
	query := `SELECT id, wager_id, participant_id, participant_handle, amount, created_at
		FROM ledger_entries WHERE wager_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, wagerID)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.WagerID, &e.ParticipantID, &e.ParticipantHandle, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return entries, nil
}

// Stats aggregates a participant's entries. Bounds are inclusive.
func (r *LedgerRepo) Stats(ctx context.Context, participantID int64, from, to *time.Time) (*domain.Statistics, error) {
	conditions := []string{"participant_id = $1"}
	args := []any{participantID}
	argIdx := 2

	if from != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIdx))
		args = append(args, *from)
		argIdx++
	}
	if to != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argIdx))
		args = append(args, *to)
	}

	query := fmt.Sprintf(`SELECT
		COALESCE(SUM(amount), 0) AS balance,
		COUNT(DISTINCT wager_id) AS count,
		COUNT(*) FILTER (WHERE amount > 0) AS wins,
		COUNT(*) FILTER (WHERE amount < 0) AS losses
		FROM ledger_entries WHERE %s`, strings.Join(conditions, " AND "))

	stats := &domain.Statistics{ParticipantID: &participantID}
	err := r.pool.QueryRow(ctx, query, args...).Scan(&stats.Balance, &stats.Count, &stats.Wins, &stats.Losses)
	if err != nil {
		return nil, fmt.Errorf("ledger stats: %w", err)
	}
	return stats, nil
}

// LatestParticipantID returns the participant id on the handle's newest entry.
func (r *LedgerRepo) LatestParticipantID(ctx context.Context, handle string) (*int64, error) {
	query := `SELECT participant_id FROM ledger_entries
		WHERE lower(participant_handle) = lower($1)
		ORDER BY created_at DESC, id DESC LIMIT 1`

	var id int64
	if err := r.pool.QueryRow(ctx, query, handle).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest participant id: %w", err)
	}
	return &id, nil
}

// Reset deletes every ledger entry.
func (r *LedgerRepo) Reset(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ledger_entries`)
	if err != nil {
		return 0, fmt.Errorf("reset ledger: %w", err)
	}
	return tag.RowsAffected(), nil
}
