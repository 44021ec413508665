// internal/intents/dining/handler_test.go
package dining

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"dining-concierge/internal/common/logger"
	"dining-concierge/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockRestaurantStore struct {
	FindFunc func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error)
}

func (m *MockRestaurantStore) FindByLocationCuisine(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
	return m.FindFunc(ctx, location, cuisine)
}

type MockPublisher struct {
	PublishFunc func(ctx context.Context, subject, body string) error
	Calls       []publishedMessage
}

type publishedMessage struct {
	Subject string
	Body    string
}

func (m *MockPublisher) Publish(ctx context.Context, subject, body string) error {
	m.Calls = append(m.Calls, publishedMessage{Subject: subject, Body: body})
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, subject, body)
	}
	return nil
}

// ==========================
// Test Helper Functions
// ==========================

func turnWithSlots(slots map[string]string) *models.Turn {
	intentSlots := make(map[string]*models.Slot, len(slots))
	for name, value := range slots {
		intentSlots[name] = &models.Slot{
			Value: &models.SlotValue{InterpretedValue: value},
		}
	}
	return &models.Turn{
		SessionState: models.SessionState{
			Intent: models.Intent{
				Name:  models.IntentDiningSuggestions,
				Slots: intentSlots,
			},
		},
	}
}

func fullSlots() map[string]string {
	return map[string]string{
		SlotLocation:       "Manhattan",
		SlotCuisine:        "Italian",
		SlotNumberOfPeople: "2",
		SlotDiningTime:     "7pm",
		SlotPhoneNumber:    "diner@example.com",
	}
}

func manhattanRestaurants(n int) []models.Restaurant {
	out := make([]models.Restaurant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Restaurant{
			ID:      fmt.Sprintf("r%d", i+1),
			Name:    fmt.Sprintf("Restaurant %d", i+1),
			City:    "Manhattan",
			Phone:   "+12125551234",
			Rating:  4.5,
			Cuisine: "Italian",
		})
	}
	return out
}

func newTestHandler(t *testing.T, store RestaurantStore, publisher Publisher) *Handler {
	return NewHandler(store, publisher, DefaultConfig(), logger.NewTestLogger(t))
}

// ==========================
// Slot Elicitation Tests
// ==========================

func TestHandler_Handle_ElicitationOrder(t *testing.T) {
	tests := []struct {
		name         string
		filled       []string
		expectedSlot string
	}{
		{
			name:         "no slots asks for location",
			filled:       nil,
			expectedSlot: SlotLocation,
		},
		{
			name:         "location asks for cuisine",
			filled:       []string{SlotLocation},
			expectedSlot: SlotCuisine,
		},
		{
			name:         "location and cuisine asks for party size",
			filled:       []string{SlotLocation, SlotCuisine},
			expectedSlot: SlotNumberOfPeople,
		},
		{
			name:         "party size filled asks for dining time",
			filled:       []string{SlotLocation, SlotCuisine, SlotNumberOfPeople},
			expectedSlot: SlotDiningTime,
		},
		{
			name:         "dining time filled asks for contact",
			filled:       []string{SlotLocation, SlotCuisine, SlotNumberOfPeople, SlotDiningTime},
			expectedSlot: SlotPhoneNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := map[string]string{}
			for _, name := range tt.filled {
				slots[name] = fullSlots()[name]
			}

			store := &MockRestaurantStore{
				FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
					t.Fatal("store must not be queried while slots are missing")
					return nil, nil
				},
			}
			publisher := &MockPublisher{}

			h := newTestHandler(t, store, publisher)
			resp := h.Handle(context.Background(), turnWithSlots(slots))

			assert.Equal(t, models.ActionElicitSlot, resp.SessionState.DialogAction.Type)
			assert.Equal(t, tt.expectedSlot, resp.SessionState.DialogAction.SlotToElicit)
			assert.Equal(t, models.StateInProgress, resp.SessionState.Intent.State)
			assert.Len(t, resp.Messages, 1)
			assert.Equal(t, slotPrompts[tt.expectedSlot], resp.Messages[0].Content)
			assert.Empty(t, publisher.Calls)
		})
	}
}

func TestHandler_Handle_EmptyStringSlotTreatedAsAbsent(t *testing.T) {
	slots := fullSlots()
	slots[SlotCuisine] = "   "

	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			t.Fatal("store must not be queried")
			return nil, nil
		},
	}

	h := newTestHandler(t, store, &MockPublisher{})
	resp := h.Handle(context.Background(), turnWithSlots(slots))

	assert.Equal(t, SlotCuisine, resp.SessionState.DialogAction.SlotToElicit)
}

func TestHandler_Handle_ElicitationEchoesFilledSlots(t *testing.T) {
	slots := map[string]string{SlotLocation: "Manhattan"}

	h := newTestHandler(t, &MockRestaurantStore{}, &MockPublisher{})
	turn := turnWithSlots(slots)
	resp := h.Handle(context.Background(), turn)

	assert.Equal(t, turn.SessionState.Intent.Slots, resp.SessionState.Intent.Slots)
}

func TestHandler_Handle_ExtraSlotsIgnored(t *testing.T) {
	slots := fullSlots()
	slots["FavoriteColor"] = "green"

	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			return manhattanRestaurants(1), nil
		},
	}

	h := newTestHandler(t, store, &MockPublisher{})
	resp := h.Handle(context.Background(), turnWithSlots(slots))

	assert.Equal(t, models.ActionClose, resp.SessionState.DialogAction.Type)
}

// ==========================
// Fulfillment Tests
// ==========================

func TestHandler_Handle_Fulfillment_Success(t *testing.T) {
	var queriedLocation, queriedCuisine string
	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			queriedLocation = location
			queriedCuisine = cuisine
			return []models.Restaurant{
				{ID: "r1", Name: "Luigi's", City: "Manhattan", Phone: "+12125551234", Rating: 4.5, Cuisine: "Italian"},
			}, nil
		},
	}
	publisher := &MockPublisher{}

	h := newTestHandler(t, store, publisher)
	resp := h.Handle(context.Background(), turnWithSlots(fullSlots()))

	assert.Equal(t, "Manhattan", queriedLocation)
	assert.Equal(t, "Italian", queriedCuisine)

	assert.Equal(t, models.ActionClose, resp.SessionState.DialogAction.Type)
	assert.Equal(t, models.StateFulfilled, resp.SessionState.Intent.State)

	content := resp.Messages[0].Content
	assert.True(t, strings.HasPrefix(content, "Here are some Italian restaurant suggestions in Manhattan for 2 people at 7pm:"))
	assert.Contains(t, content, "1. Luigi's, located at Manhattan")

	assert.Len(t, publisher.Calls, 1)
	assert.Equal(t, "Restaurant Suggestions", publisher.Calls[0].Subject)
	body := publisher.Calls[0].Body
	assert.True(t, strings.HasPrefix(body, "Here are the restaurant suggestions:\n\n"))
	assert.Contains(t, body, "Restaurant 1:\n")
	assert.Contains(t, body, "Name: Luigi's\n")
	assert.Contains(t, body, "Location: Manhattan\n")
	assert.Contains(t, body, "Phone: +12125551234\n")
	assert.Contains(t, body, "Rating: 4.5\n")
	assert.Contains(t, body, "Cuisine: Italian\n")
}

func TestHandler_Handle_Fulfillment_TruncatesToMax(t *testing.T) {
	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			return manhattanRestaurants(5), nil
		},
	}
	publisher := &MockPublisher{}

	h := newTestHandler(t, store, publisher)
	resp := h.Handle(context.Background(), turnWithSlots(fullSlots()))

	content := resp.Messages[0].Content
	assert.Contains(t, content, "1. Restaurant 1")
	assert.Contains(t, content, "2. Restaurant 2")
	assert.Contains(t, content, "3. Restaurant 3")
	assert.NotContains(t, content, "4. Restaurant 4")

	body := publisher.Calls[0].Body
	assert.Contains(t, body, "Restaurant 3:\n")
	assert.NotContains(t, body, "Restaurant 4:\n")
}

func TestHandler_Handle_Fulfillment_NoMatches(t *testing.T) {
	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			return nil, nil
		},
	}
	publisher := &MockPublisher{}

	h := newTestHandler(t, store, publisher)
	resp := h.Handle(context.Background(), turnWithSlots(fullSlots()))

	assert.Equal(t, models.ActionClose, resp.SessionState.DialogAction.Type)
	assert.Equal(t, models.StateFulfilled, resp.SessionState.Intent.State)
	assert.Equal(t, "Sorry, I couldn't find any Italian restaurants in Manhattan.", resp.Messages[0].Content)
	assert.Empty(t, publisher.Calls, "nothing is published when there are no matches")
}

func TestHandler_Handle_Fulfillment_StoreError(t *testing.T) {
	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			return nil, errors.New("scan yelp-restaurants: access denied")
		},
	}
	publisher := &MockPublisher{}

	h := newTestHandler(t, store, publisher)
	resp := h.Handle(context.Background(), turnWithSlots(fullSlots()))

	assert.Equal(t, models.ActionClose, resp.SessionState.DialogAction.Type)
	assert.Equal(t, models.StateFulfilled, resp.SessionState.Intent.State)
	assert.Equal(t, "An error occurred while retrieving restaurant suggestions: scan yelp-restaurants: access denied", resp.Messages[0].Content)
	assert.Empty(t, publisher.Calls)
}

func TestHandler_Handle_Fulfillment_PublishFailureNotSurfaced(t *testing.T) {
	store := &MockRestaurantStore{
		FindFunc: func(ctx context.Context, location, cuisine string) ([]models.Restaurant, error) {
			return manhattanRestaurants(2), nil
		},
	}
	publisher := &MockPublisher{
		PublishFunc: func(ctx context.Context, subject, body string) error {
			return errors.New("topic unreachable")
		},
	}

	h := newTestHandler(t, store, publisher)
	resp := h.Handle(context.Background(), turnWithSlots(fullSlots()))

	assert.Equal(t, models.ActionClose, resp.SessionState.DialogAction.Type)
	content := resp.Messages[0].Content
	assert.Contains(t, content, "Here are some Italian restaurant suggestions in Manhattan")
	assert.NotContains(t, content, "topic unreachable")
}
