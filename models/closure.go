package models

import "github.com/samber/mo"

// ClosureKind is a tagged variant over the supported closure request types.
// The underlying value doubles as the modal callback ID so the kind can be
// recovered directly from a view submission.
type ClosureKind string

const (
	ClosureKindTemporary ClosureKind = "temp_closure"
	ClosureKindPermanent ClosureKind = "perm_closure"
)

// ClosureKindFromCallbackID maps a view callback ID back to its closure kind.
// Returns false for callback IDs that don't belong to a closure form.
func ClosureKindFromCallbackID(callbackID string) (ClosureKind, bool) {
	switch ClosureKind(callbackID) {
	case ClosureKindTemporary:
		return ClosureKindTemporary, true
	case ClosureKindPermanent:
		return ClosureKindPermanent, true
	default:
		return "", false
	}
}

// Header returns the notification header line for this closure kind
func (k ClosureKind) Header() string {
	if k == ClosureKindTemporary {
		return "Temporary Closure Request"
	}
	return "Permanent Closure Request"
}

// ClosureRequest is a validated store closure submission. It exists only
// transiently to build the outbound notification text and is never stored.
type ClosureRequest struct {
	Kind          ClosureKind
	StoreID       string
	ReasonCode    string
	ReopeningDate mo.Option[string] // ISO date, present only for temporary closures
	UserID        string
}

// SubmitterIdentity is the enriched identity of the submitting user.
// Email degrades to "Unavailable" when the profile lookup fails.
type SubmitterIdentity struct {
	Reference string
	Email     string
}

// CommandRequest represents an inbound slash command invocation
type CommandRequest struct {
	Command   string
	ChannelID string
	TriggerID string
	UserID    string
}

// ButtonClickEvent represents a block_actions interaction on a message button
type ButtonClickEvent struct {
	ActionID  string
	Value     string
	ChannelID string
	MessageTS string
	UserID    string
}
