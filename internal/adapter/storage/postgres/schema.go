package postgres

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS wagers (
		id              BIGSERIAL PRIMARY KEY,
		maker_id        BIGINT      NOT NULL,
		maker_handle    TEXT        NOT NULL,
		taker_id        BIGINT,
		taker_handle    TEXT        NOT NULL DEFAULT '',
		label           TEXT,
		outcome_a_name  TEXT        NOT NULL,
		outcome_b_name  TEXT        NOT NULL,
		odds_a          NUMERIC,
		odds_b          NUMERIC,
		stake           NUMERIC(14, 2),
		status          TEXT        NOT NULL DEFAULT 'DRAFT',
		chosen_side     TEXT,
		outcome_result  TEXT,
		maker_payout    NUMERIC     NOT NULL DEFAULT 0,
		taker_payout    NUMERIC     NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		finished_at     TIMESTAMPTZ,
		CONSTRAINT wagers_odds_pair CHECK ((odds_a IS NULL) = (odds_b IS NULL)),
		CONSTRAINT wagers_odds_positive CHECK (odds_a IS NULL OR (odds_a > 0 AND odds_b > 0)),
		CONSTRAINT wagers_stake_positive CHECK (stake IS NULL OR stake > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wagers_status ON wagers (status)`,
	`CREATE INDEX IF NOT EXISTS idx_wagers_maker ON wagers (maker_id)`,
	`CREATE INDEX IF NOT EXISTS idx_wagers_taker ON wagers (taker_id)`,
	`CREATE TABLE IF NOT EXISTS ledger_entries (
		id                 BIGSERIAL PRIMARY KEY,
		wager_id           BIGINT      NOT NULL REFERENCES wagers (id),
		participant_id     BIGINT      NOT NULL,
		participant_handle TEXT        NOT NULL,
		amount             NUMERIC     NOT NULL,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_participant ON ledger_entries (participant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_created ON ledger_entries (created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_ledger_wager ON ledger_entries (wager_id)`,
	`CREATE TABLE IF NOT EXISTS wager_events (
		id           BIGSERIAL PRIMARY KEY,
		wager_id     BIGINT      NOT NULL REFERENCES wagers (id),
		action       TEXT        NOT NULL,
		actor_id     BIGINT      NOT NULL,
		actor_handle TEXT        NOT NULL,
		details      JSONB,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wager_events_wager ON wager_events (wager_id)`,
}

// EnsureSchema creates the tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for i, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
