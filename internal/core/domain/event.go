package domain

import "time"

// WagerAction names a successful lifecycle transition.
type WagerAction string

const (
	WagerActionCreate   WagerAction = "CREATE"
	WagerActionSetOdds  WagerAction = "SET_ODDS"
	WagerActionPublish  WagerAction = "PUBLISH"
	WagerActionEdit     WagerAction = "EDIT"
	WagerActionCancel   WagerAction = "CANCEL"
	WagerActionAccept   WagerAction = "ACCEPT"
	WagerActionSettle   WagerAction = "SETTLE"
	WagerActionResettle WagerAction = "RESETTLE"
)

// WagerEvent is an audit record written in the same transaction as the
// transition it describes.
type WagerEvent struct {
	ID          int64       `json:"id"`
	WagerID     int64       `json:"wager_id"`
	Action      WagerAction `json:"action"`
	ActorID     int64       `json:"actor_id"`
	ActorHandle string      `json:"actor_handle"`
	Details     string      `json:"details,omitempty"` // JSON string
	CreatedAt   time.Time   `json:"created_at"`
}
