package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WagerStatus represents the lifecycle state of a wager.
type WagerStatus string

const (
	WagerStatusDraft    WagerStatus = "DRAFT"
	WagerStatusOpen     WagerStatus = "OPEN"
	WagerStatusTaken    WagerStatus = "TAKEN"
	WagerStatusFinished WagerStatus = "FINISHED"
	WagerStatusCanceled WagerStatus = "CANCELED"
)

// Side identifies one of the two outcomes of a wager.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// ParseSide accepts "A" or "B" (case-insensitive).
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideA:
		return SideA, nil
	case SideB:
		return SideB, nil
	}
	return "", fmt.Errorf("side must be A or B, got %q", s)
}

// Result is the recorded outcome of an event.
type Result string

const (
	ResultA    Result = "A"
	ResultB    Result = "B"
	ResultVoid Result = "VOID"
)

// ParseResult accepts "A", "B" or "VOID" (case-insensitive).
func ParseResult(s string) (Result, error) {
	switch Result(strings.ToUpper(strings.TrimSpace(s))) {
	case ResultA:
		return ResultA, nil
	case ResultB:
		return ResultB, nil
	case ResultVoid:
		return ResultVoid, nil
	}
	return "", fmt.Errorf("result must be A, B or VOID, got %q", s)
}

// ErrIncompleteTerms is returned when a wager lacks the odds, stake or side
// required for settlement.
var ErrIncompleteTerms = errors.New("wager terms are incomplete")

// ErrWagerNotFound is returned by storage when a wager id does not exist.
var ErrWagerNotFound = errors.New("wager not found")

// Wager is a two-party bet on an event with two named outcomes.
type Wager struct {
	ID           int64            `json:"id"`
	MakerID      int64            `json:"maker_id"`
	MakerHandle  string           `json:"maker_handle"`
	TakerID      *int64           `json:"taker_id,omitempty"`
	TakerHandle  string           `json:"taker_handle"`
	Label        *string          `json:"label,omitempty"`
	OutcomeAName string           `json:"outcome_a_name"`
	OutcomeBName string           `json:"outcome_b_name"`
	OddsA        *decimal.Decimal `json:"odds_a,omitempty"`
	OddsB        *decimal.Decimal `json:"odds_b,omitempty"`
	Stake        *decimal.Decimal `json:"stake,omitempty"`
	Status       WagerStatus      `json:"status"`
	ChosenSide   *Side            `json:"chosen_side,omitempty"`
	Result       *Result          `json:"outcome_result,omitempty"`
	MakerPayout  decimal.Decimal  `json:"maker_payout"`
	TakerPayout  decimal.Decimal  `json:"taker_payout"`
	CreatedAt    time.Time        `json:"created_at"`
	FinishedAt   *time.Time       `json:"finished_at,omitempty"`
}

// IsActive returns true while the wager is visible as open or taken.
func (w *Wager) IsActive() bool {
	return w.Status == WagerStatusOpen || w.Status == WagerStatusTaken
}

// IsTerminal returns true for canceled wagers. Finished wagers can still be
// resettled, so they are not terminal.
func (w *Wager) IsTerminal() bool {
	return w.Status == WagerStatusCanceled
}

// Odds returns the wager's odds pair if both sides are set.
func (w *Wager) Odds() (Odds, bool) {
	if w.OddsA == nil || w.OddsB == nil {
		return Odds{}, false
	}
	return Odds{A: *w.OddsA, B: *w.OddsB}, true
}

// OutcomeName returns the display name of the given side.
func (w *Wager) OutcomeName(side Side) string {
	if side == SideB {
		return w.OutcomeBName
	}
	return w.OutcomeAName
}

// Title is the "A vs B" matchup, prefixed with the label when present.
func (w *Wager) Title() string {
	title := w.OutcomeAName + " vs " + w.OutcomeBName
	if w.Label != nil && *w.Label != "" {
		return *w.Label + ": " + title
	}
	return title
}

// IsParty reports whether participantID is the maker or the taker.
func (w *Wager) IsParty(participantID int64) bool {
	if w.MakerID == participantID {
		return true
	}
	return w.TakerID != nil && *w.TakerID == participantID
}

// Payout computes the settlement of the frozen terms for result.
func (w *Wager) Payout(result Result) (Payout, error) {
	odds, ok := w.Odds()
	if !ok || w.Stake == nil || w.ChosenSide == nil {
		return Payout{}, ErrIncompleteTerms
	}
	return Settle(*w.Stake, odds.For(*w.ChosenSide), *w.ChosenSide, result), nil
}
