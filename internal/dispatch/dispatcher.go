// internal/dispatch/dispatcher.go
package dispatch

import (
	"context"
	"time"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/common/observability"
	"dining-concierge/internal/models"
)

// Fixed replies for the stateless intents.
const (
	GreetingMessage     = "Hi there! How can I assist you today?"
	ThankYouMessage     = "You're welcome! Let me know if there's anything else I can help with."
	FallbackMessage     = "I'm sorry, I didn't understand that. Could you please rephrase or ask something else?"
	UnrecognizedMessage = "Sorry, I couldn't recognize that intent."
)

// IntentHandler processes a turn of one specific intent.
type IntentHandler interface {
	Handle(ctx context.Context, turn *models.Turn) *models.DialogueResponse
}

// Dispatcher routes each turn by intent name. Routing is total: every name,
// known or not, yields a response, and dispatch itself never returns an error.
type Dispatcher struct {
	dining IntentHandler
	obs    *observability.Observability
	logger logger.Logger
}

func NewDispatcher(dining IntentHandler, obs *observability.Observability, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		dining: dining,
		obs:    obs,
		logger: log,
	}
}

// HandleTurn returns either a *models.DialogueResponse for a recognized intent
// or a *models.FallbackEnvelope for an unknown one. The two shapes are
// deliberately distinct; callers serialize whichever they get.
func (d *Dispatcher) HandleTurn(ctx context.Context, turn *models.Turn) interface{} {
	start := time.Now()
	intent := turn.IntentName()

	d.logger.Info("turn received", map[string]interface{}{"intent": intent})
	metrics.TurnsProcessed.WithLabelValues(intent).Inc()
	defer func() {
		d.obs.RecordTurnProcessed(ctx, intent)
		d.obs.RecordTurnDuration(ctx, time.Since(start), intent)
	}()

	switch intent {
	case models.IntentGreeting:
		return models.CloseIntent(turn, GreetingMessage)
	case models.IntentThankYou:
		return models.CloseIntent(turn, ThankYouMessage)
	case models.IntentFallback:
		return models.CloseIntent(turn, FallbackMessage)
	case models.IntentDiningSuggestions:
		return d.dining.Handle(ctx, turn)
	default:
		d.logger.Warn("unrecognized intent", map[string]interface{}{"intent": intent})
		return models.UnrecognizedIntent(UnrecognizedMessage)
	}
}
