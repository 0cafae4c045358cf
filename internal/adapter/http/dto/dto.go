package dto

import (
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CreateWagerRequest is the request body for a new draft wager.
type CreateWagerRequest struct {
	OutcomeA string  `json:"outcome_a" binding:"required,max=100"`
	OutcomeB string  `json:"outcome_b" binding:"required,max=100"`
	Label    *string `json:"label,omitempty" binding:"omitempty,max=100"`
}

// OddsRequest sets both odds, either directly or from side A's win
// percentage. Exactly one form must be given.
type OddsRequest struct {
	OddsA   *decimal.Decimal `json:"odds_a,omitempty"`
	OddsB   *decimal.Decimal `json:"odds_b,omitempty"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
}

// PublishRequest is the request body for publishing a draft.
type PublishRequest struct {
	Stake *decimal.Decimal `json:"stake" binding:"required"`
}

// EditTermsRequest replaces odds and stake of an open wager.
type EditTermsRequest struct {
	OddsA *decimal.Decimal `json:"odds_a" binding:"required"`
	OddsB *decimal.Decimal `json:"odds_b" binding:"required"`
	Stake *decimal.Decimal `json:"stake" binding:"required"`
}

// AcceptRequest is the request body for taking a side.
type AcceptRequest struct {
	Side string `json:"side" binding:"required,wager_side"`
}

// SettleRequest is the request body for settle and resettle.
type SettleRequest struct {
	Result string `json:"result" binding:"required,wager_result"`
}

// WagerResponse is the API view of a wager.
type WagerResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	MakerID     int64            `json:"maker_id"`
	MakerHandle string           `json:"maker_handle"`
	TakerID     *int64           `json:"taker_id,omitempty"`
	TakerHandle string           `json:"taker_handle"`
	Label       *string          `json:"label,omitempty"`
	OutcomeA    string           `json:"outcome_a"`
	OutcomeB    string           `json:"outcome_b"`
	OddsA       *decimal.Decimal `json:"odds_a,omitempty"`
	OddsB       *decimal.Decimal `json:"odds_b,omitempty"`
	Stake       *decimal.Decimal `json:"stake,omitempty"`
	Status      string           `json:"status"`
	ChosenSide  *string          `json:"chosen_side,omitempty"`
	Result      *string          `json:"outcome_result,omitempty"`
	MakerPayout decimal.Decimal  `json:"maker_payout"`
	TakerPayout decimal.Decimal  `json:"taker_payout"`
	CreatedAt   string           `json:"created_at"`
	FinishedAt  *string          `json:"finished_at,omitempty"`
}

// PayoutResponse is returned by settle and resettle.
type PayoutResponse struct {
	WagerID     int64           `json:"wager_id"`
	Result      string          `json:"outcome_result"`
	MakerPayout decimal.Decimal `json:"maker_payout"`
	TakerPayout decimal.Decimal `json:"taker_payout"`
}

// WagerEventResponse is one audit trail entry.
type WagerEventResponse struct {
	Action      string  `json:"action"`
	ActorID     int64   `json:"actor_id"`
	ActorHandle string  `json:"actor_handle"`
	Details     *string `json:"details,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// StatisticsResponse is a participant's ledger aggregate.
type StatisticsResponse struct {
	ParticipantID *int64          `json:"participant_id,omitempty"`
	Handle        string          `json:"handle,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Count         int64           `json:"count"`
	Wins          int64           `json:"wins"`
	Losses        int64           `json:"losses"`
}

// ResetResponse reports how many ledger rows were removed.
type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}

// WagerFromDomain converts a domain wager to its API view.
func WagerFromDomain(w *domain.Wager) WagerResponse {
	resp := WagerResponse{
		ID:          w.ID,
		Title:       w.Title(),
		MakerID:     w.MakerID,
		MakerHandle: w.MakerHandle,
		TakerID:     w.TakerID,
		TakerHandle: w.TakerHandle,
		Label:       w.Label,
		OutcomeA:    w.OutcomeAName,
		OutcomeB:    w.OutcomeBName,
		OddsA:       w.OddsA,
		OddsB:       w.OddsB,
		Stake:       w.Stake,
		Status:      string(w.Status),
		MakerPayout: w.MakerPayout,
		TakerPayout: w.TakerPayout,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
	if w.ChosenSide != nil {
		s := string(*w.ChosenSide)
		resp.ChosenSide = &s
	}
	if w.Result != nil {
		r := string(*w.Result)
		resp.Result = &r
	}
	if w.FinishedAt != nil {
		f := w.FinishedAt.Format(time.RFC3339)
		resp.FinishedAt = &f
	}
	return resp
}

// WagersFromDomain converts a list, never returning nil.
func WagersFromDomain(wagers []domain.Wager) []WagerResponse {
	items := make([]WagerResponse, 0, len(wagers))
	for i := range wagers {
		items = append(items, WagerFromDomain(&wagers[i]))
	}
	return items
}

// EventsFromDomain converts an audit trail.
func EventsFromDomain(events []domain.WagerEvent) []WagerEventResponse {
	items := make([]WagerEventResponse, 0, len(events))
	for _, e := range events {
		item := WagerEventResponse{
			Action:      string(e.Action),
			ActorID:     e.ActorID,
			ActorHandle: e.ActorHandle,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.Details != "" {
			d := e.Details
			item.Details = &d
		}
		items = append(items, item)
	}
	return items
}

// StatisticsFromDomain converts a ledger aggregate.
func StatisticsFromDomain(s domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		ParticipantID: s.ParticipantID,
		Handle:        s.Handle,
		Balance:       s.Balance,
		Count:         s.Count,
		Wins:          s.Wins,
		Losses:        s.Losses,
	}
}
