package domain

import "strings"

// Actor is the authenticated caller of a lifecycle operation.
type Actor struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle"`
}

// SameHandle compares two handles case-insensitively, ignoring a leading "@".
func SameHandle(a, b string) bool {
	return normalizeHandle(a) == normalizeHandle(b) && normalizeHandle(a) != ""
}

func normalizeHandle(h string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h), "@"))
}

// Roster is the fixed pair of participants and the self-play switch.
// It is built once from configuration and injected where role checks
// happen.
type Roster struct {
	ParticipantA       string
	ParticipantB       string
	PermissiveSelfPlay bool
}

// Handles returns both configured handles in order.
func (r Roster) Handles() []string {
	return []string{r.ParticipantA, r.ParticipantB}
}

// IsRegistered reports whether handle is one of the two participants.
func (r Roster) IsRegistered(handle string) bool {
	return SameHandle(handle, r.ParticipantA) || SameHandle(handle, r.ParticipantB)
}

// Counterparty returns the configured handle paired with handle.
func (r Roster) Counterparty(handle string) (string, bool) {
	switch {
	case SameHandle(handle, r.ParticipantA):
		return r.ParticipantB, true
	case SameHandle(handle, r.ParticipantB):
		return r.ParticipantA, true
	}
	return "", false
}

// TakerFor resolves the taker handle frozen at publish time. Under
// permissive self-play the maker takes their own wager.
func (r Roster) TakerFor(makerHandle string) string {
	if r.PermissiveSelfPlay {
		return makerHandle
	}
	taker, _ := r.Counterparty(makerHandle)
	return taker
}

// Authorize reports whether an actor with actorHandle may act in the role
// held by roleHandle. Permissive self-play lets any registered participant
// act in either role.
func (r Roster) Authorize(actorHandle, roleHandle string) bool {
	if SameHandle(actorHandle, roleHandle) {
		return true
	}
	return r.PermissiveSelfPlay && r.IsRegistered(actorHandle)
}
