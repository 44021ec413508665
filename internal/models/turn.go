// internal/models/turn.go
package models

import "strings"

// Intent names recognized by the dispatcher. Anything else falls through to
// the simplified fallback envelope.
const (
	IntentGreeting          = "GreetingIntent"
	IntentThankYou          = "ThankYouIntent"
	IntentDiningSuggestions = "DiningSuggestionsIntent"
	IntentFallback          = "FallbackIntent"
)

// Dialogue states
const (
	StateInProgress = "InProgress"
	StateFulfilled  = "Fulfilled"
)

// Dialog action types
const (
	ActionElicitSlot = "ElicitSlot"
	ActionClose      = "Close"
)

// Turn is one conversational turn as delivered by the intent recognizer.
// It mirrors the Lex V2 fulfillment event shape; only the fields this service
// reads are modeled.
type Turn struct {
	SessionState SessionState `json:"sessionState"`
}

type SessionState struct {
	Intent Intent `json:"intent"`
}

type Intent struct {
	Name  string           `json:"name"`
	Slots map[string]*Slot `json:"slots,omitempty"`
	State string           `json:"state,omitempty"`
}

// Slot carries the recognizer's interpretation of one collected value.
type Slot struct {
	Value *SlotValue `json:"value,omitempty"`
}

type SlotValue struct {
	OriginalValue    string `json:"originalValue,omitempty"`
	InterpretedValue string `json:"interpretedValue,omitempty"`
}

// SlotValue returns the interpreted value for the named slot, normalized so
// that a missing slot, a nil value, and a whitespace-only value all read as
// the empty string. This is the single place where "absent" is decided.
func (t *Turn) SlotValue(name string) string {
	slot, ok := t.SessionState.Intent.Slots[name]
	if !ok || slot == nil || slot.Value == nil {
		return ""
	}
	return strings.TrimSpace(slot.Value.InterpretedValue)
}

// IntentName returns the classified intent for this turn.
func (t *Turn) IntentName() string {
	return t.SessionState.Intent.Name
}
