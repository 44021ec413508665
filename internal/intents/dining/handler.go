// internal/intents/dining/handler.go
package dining

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/common/metrics"
	"dining-concierge/internal/models"
)

// RestaurantStore defines the lookup the handler needs.
type RestaurantStore interface {
	FindByLocationCuisine(ctx context.Context, location, cuisine string) ([]models.Restaurant, error)
}

// Publisher defines the notification delivery the handler needs.
type Publisher interface {
	Publish(ctx context.Context, subject, body string) error
}

// Handler runs the dining suggestions intent: a strict sequential slot gate,
// then a single store lookup, a user-facing closing message, and a best-effort
// notification carrying the detailed listing.
type Handler struct {
	store     RestaurantStore
	publisher Publisher
	config    *Config
	logger    logger.Logger
}

func NewHandler(store RestaurantStore, publisher Publisher, config *Config, log logger.Logger) *Handler {
	if config == nil {
		config = DefaultConfig()
	}
	return &Handler{
		store:     store,
		publisher: publisher,
		config:    config,
		logger:    log.With(map[string]interface{}{"intent": models.IntentDiningSuggestions}),
	}
}

// Handle processes one turn of the dining suggestions intent. If any slot in
// the elicitation order is still absent, the response asks for exactly that
// slot; otherwise the intent is fulfilled and closed.
func (h *Handler) Handle(ctx context.Context, turn *models.Turn) *models.DialogueResponse {
	for _, name := range slotOrder {
		if turn.SlotValue(name) == "" {
			metrics.ElicitationsIssued.WithLabelValues(name).Inc()
			h.logger.Debug("eliciting slot", map[string]interface{}{"slot": name})
			return models.ElicitSlot(turn, name, slotPrompts[name])
		}
	}
	return h.fulfill(ctx, turn)
}

// fulfill runs once all five slots are present. Every outcome closes the
// intent as Fulfilled; only the message content differs.
func (h *Handler) fulfill(ctx context.Context, turn *models.Turn) *models.DialogueResponse {
	location := turn.SlotValue(SlotLocation)
	cuisine := turn.SlotValue(SlotCuisine)
	partySize := turn.SlotValue(SlotNumberOfPeople)
	diningTime := turn.SlotValue(SlotDiningTime)

	restaurants, err := h.store.FindByLocationCuisine(ctx, location, cuisine)
	if err != nil {
		metrics.StoreQueryFailures.Inc()
		h.logger.WithError(err).Error("restaurant lookup failed", map[string]interface{}{
			"location": location,
			"cuisine":  cuisine,
		})
		return models.CloseIntent(turn, fmt.Sprintf("An error occurred while retrieving restaurant suggestions: %s", err))
	}

	if len(restaurants) == 0 {
		h.logger.Info("no restaurants matched", map[string]interface{}{
			"location": location,
			"cuisine":  cuisine,
		})
		return models.CloseIntent(turn, fmt.Sprintf("Sorry, I couldn't find any %s restaurants in %s.", cuisine, location))
	}

	if len(restaurants) > h.config.MaxSuggestions {
		restaurants = restaurants[:h.config.MaxSuggestions]
	}
	metrics.SuggestionsServed.Add(float64(len(restaurants)))

	// Delivery is advisory. The user gets their suggestions either way.
	if err := h.publisher.Publish(ctx, NotificationSubject, notificationBody(restaurants)); err != nil {
		metrics.PublishFailures.Inc()
		h.logger.WithError(err).Error("suggestion notification failed", map[string]interface{}{
			"count": len(restaurants),
		})
	}

	return models.CloseIntent(turn, userSummary(restaurants, location, cuisine, partySize, diningTime))
}

// userSummary is the short numbered listing returned in the conversation.
func userSummary(restaurants []models.Restaurant, location, cuisine, partySize, diningTime string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are some %s restaurant suggestions in %s for %s people at %s:", cuisine, location, partySize, diningTime)
	for i, r := range restaurants {
		fmt.Fprintf(&b, "\n%d. %s, located at %s", i+1, r.Name, r.City)
	}
	return b.String()
}

// notificationBody is the detailed listing published to the suggestions topic.
func notificationBody(restaurants []models.Restaurant) string {
	var b strings.Builder
	b.WriteString("Here are the restaurant suggestions:\n\n")
	for i, r := range restaurants {
		fmt.Fprintf(&b, "Restaurant %d:\n", i+1)
		fmt.Fprintf(&b, "Name: %s\n", r.Name)
		fmt.Fprintf(&b, "Location: %s\n", r.City)
		fmt.Fprintf(&b, "Phone: %s\n", r.Phone)
		fmt.Fprintf(&b, "Rating: %s\n", strconv.FormatFloat(r.Rating, 'f', -1, 64))
		fmt.Fprintf(&b, "Cuisine: %s\n\n", r.Cuisine)
	}
	return b.String()
}
