package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one participant's signed result on one settled wager.
type LedgerEntry struct {
	ID                int64           `json:"id"`
	WagerID           int64           `json:"wager_id"`
	ParticipantID     int64           `json:"participant_id"`
	ParticipantHandle string          `json:"participant_handle"`
	Amount            decimal.Decimal `json:"amount"`
	CreatedAt         time.Time       `json:"created_at"`
}

// SettlementEntries returns the maker and taker ledger rows for a payout.
func SettlementEntries(w *Wager, p Payout, at time.Time) ([]LedgerEntry, error) {
	if w.TakerID == nil {
		return nil, fmt.Errorf("wager %d has no taker: %w", w.ID, ErrIncompleteTerms)
	}
	return []LedgerEntry{
		{
			WagerID:           w.ID,
			ParticipantID:     w.MakerID,
			ParticipantHandle: w.MakerHandle,
			Amount:            p.Maker,
			CreatedAt:         at,
		},
		{
			WagerID:           w.ID,
			ParticipantID:     *w.TakerID,
			ParticipantHandle: w.TakerHandle,
			Amount:            p.Taker,
			CreatedAt:         at,
		},
	}, nil
}

// Statistics aggregates a participant's ledger rows.
type Statistics struct {
	ParticipantID *int64          `json:"participant_id,omitempty"`
	Handle        string          `json:"handle,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Count         int64           `json:"count"`
	Wins          int64           `json:"wins"`
	Losses        int64           `json:"losses"`
}

// StatsPeriod is a named reporting window.
type StatsPeriod string

const (
	PeriodToday StatsPeriod = "today"
	PeriodWeek  StatsPeriod = "7d"
	PeriodMonth StatsPeriod = "30d"
	PeriodAll   StatsPeriod = "all"
)

// ParseStatsPeriod validates a period name. Empty means all time.
func ParseStatsPeriod(s string) (StatsPeriod, error) {
	switch p := StatsPeriod(s); p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Since returns the lower bound of the period relative to now, or nil for
// all time. "today" starts at midnight in now's location.
func (p StatsPeriod) Since(now time.Time) *time.Time {
	var from time.Time
	switch p {
	case PeriodToday:
		y, m, d := now.Date()
		from = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		from = now.AddDate(0, 0, -7)
	case PeriodMonth:
		from = now.AddDate(0, 0, -30)
	default:
		return nil
	}
	return &from
}
