// internal/models/response.go
package models

const contentTypePlainText = "PlainText"

// DialogAction tells the recognizer what to do next with the conversation.
type DialogAction struct {
	Type         string `json:"type"`
	SlotToElicit string `json:"slotToElicit,omitempty"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type ResponseSessionState struct {
	DialogAction DialogAction `json:"dialogAction"`
	Intent       Intent       `json:"intent"`
}

// DialogueResponse is the envelope returned to the recognizer for every
// recognized intent. It is constructed exactly once per turn, either as an
// elicitation (ElicitSlot/InProgress) or a closing (Close/Fulfilled), and is
// never mutated afterwards.
type DialogueResponse struct {
	SessionState ResponseSessionState `json:"sessionState"`
	Messages     []Message            `json:"messages"`
}

// ElicitSlot builds the response asking the user for exactly one slot.
// The turn's slot set is echoed back so the recognizer keeps what has already
// been filled.
func ElicitSlot(turn *Turn, slotName, prompt string) *DialogueResponse {
	return &DialogueResponse{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{
				Type:         ActionElicitSlot,
				SlotToElicit: slotName,
			},
			Intent: Intent{
				Name:  turn.IntentName(),
				Slots: turn.SessionState.Intent.Slots,
				State: StateInProgress,
			},
		},
		Messages: []Message{{ContentType: contentTypePlainText, Content: prompt}},
	}
}

// CloseIntent builds the terminal response carrying the final message.
func CloseIntent(turn *Turn, message string) *DialogueResponse {
	return &DialogueResponse{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{Type: ActionClose},
			Intent: Intent{
				Name:  turn.IntentName(),
				State: StateFulfilled,
			},
		},
		Messages: []Message{{ContentType: contentTypePlainText, Content: message}},
	}
}

// FallbackBody wraps the messages list inside the simplified envelope.
type FallbackBody struct {
	Messages []Message `json:"messages"`
}

// FallbackEnvelope is the simplified response used only when the intent name
// itself is unrecognized. Deliberately a different shape from DialogueResponse.
type FallbackEnvelope struct {
	StatusCode int          `json:"statusCode"`
	Body       FallbackBody `json:"body"`
}

// UnrecognizedIntent builds the fallback envelope for an unknown intent name.
func UnrecognizedIntent(message string) *FallbackEnvelope {
	return &FallbackEnvelope{
		StatusCode: 200,
		Body: FallbackBody{
			Messages: []Message{{ContentType: contentTypePlainText, Content: message}},
		},
	}
}
