// internal/models/turn_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurn_SlotValue(t *testing.T) {
	turn := &Turn{
		SessionState: SessionState{
			Intent: Intent{
				Name: IntentDiningSuggestions,
				Slots: map[string]*Slot{
					"Location":   {Value: &SlotValue{InterpretedValue: "Manhattan"}},
					"Cuisine":    {Value: &SlotValue{InterpretedValue: "   "}},
					"DiningTime": nil,
					"Padded":     {Value: &SlotValue{InterpretedValue: "  7pm  "}},
					"NoValue":    {},
				},
			},
		},
	}

	assert.Equal(t, "Manhattan", turn.SlotValue("Location"))
	assert.Equal(t, "", turn.SlotValue("Cuisine"), "whitespace-only reads as absent")
	assert.Equal(t, "", turn.SlotValue("DiningTime"), "nil slot reads as absent")
	assert.Equal(t, "", turn.SlotValue("NoValue"), "nil value reads as absent")
	assert.Equal(t, "", turn.SlotValue("NeverSeen"), "missing slot reads as absent")
	assert.Equal(t, "7pm", turn.SlotValue("Padded"), "values are trimmed")
}

func TestElicitSlot_EchoesSlots(t *testing.T) {
	var turn Turn
	err := json.Unmarshal([]byte(`{
		"sessionState": {
			"intent": {
				"name": "DiningSuggestionsIntent",
				"slots": {"Location": {"value": {"interpretedValue": "Manhattan"}}}
			}
		}
	}`), &turn)
	assert.NoError(t, err)

	resp := ElicitSlot(&turn, "Cuisine", "What type of cuisine would you like to try?")

	assert.Equal(t, ActionElicitSlot, resp.SessionState.DialogAction.Type)
	assert.Equal(t, "Cuisine", resp.SessionState.DialogAction.SlotToElicit)
	assert.Equal(t, StateInProgress, resp.SessionState.Intent.State)
	assert.Equal(t, turn.SessionState.Intent.Slots, resp.SessionState.Intent.Slots)
}

func TestCloseIntent(t *testing.T) {
	turn := &Turn{SessionState: SessionState{Intent: Intent{Name: IntentGreeting}}}

	resp := CloseIntent(turn, "Hi there! How can I assist you today?")

	assert.Equal(t, ActionClose, resp.SessionState.DialogAction.Type)
	assert.Equal(t, StateFulfilled, resp.SessionState.Intent.State)
	assert.Equal(t, IntentGreeting, resp.SessionState.Intent.Name)
	assert.Equal(t, "PlainText", resp.Messages[0].ContentType)
}
