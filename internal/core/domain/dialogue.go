package domain

import "time"

// DialogueStep is the input a chat user is expected to send next.
type DialogueStep string

const (
	StepAwaitMatchup DialogueStep = "AWAIT_MATCHUP"
	StepAwaitOdds    DialogueStep = "AWAIT_ODDS"
	StepAwaitStake   DialogueStep = "AWAIT_STAKE"
	StepEditOdds     DialogueStep = "EDIT_ODDS"
	StepEditStake    DialogueStep = "EDIT_STAKE"
)

// Valid reports whether s is a known step.
func (s DialogueStep) Valid() bool {
	switch s {
	case StepAwaitMatchup, StepAwaitOdds, StepAwaitStake, StepEditOdds, StepEditStake:
		return true
	}
	return false
}

// IsEdit reports whether the step belongs to editing an open wager.
func (s DialogueStep) IsEdit() bool {
	return s == StepEditOdds || s == StepEditStake
}

// Dialogue is the per-user state of a multi-step chat interaction.
type Dialogue struct {
	UserID      int64        `json:"user_id"`
	ChatID      int64        `json:"chat_id"`
	Step        DialogueStep `json:"step"`
	WagerID     int64        `json:"wager_id,omitempty"`
	MessageID   int          `json:"message_id,omitempty"` // prompt message edited in place
	PendingOdds *Odds        `json:"pending_odds,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
