// internal/intents/dining/models.go
package dining

// Slot names collected by the dining suggestions intent, in the exact order
// they must be elicited. The gate asks for the first absent one and never
// looks past it.
const (
	SlotLocation       = "Location"
	SlotCuisine        = "Cuisine"
	SlotNumberOfPeople = "NumberOfPeople"
	SlotDiningTime     = "DiningTime"
	SlotPhoneNumber    = "PhoneNumber"
)

var slotOrder = []string{
	SlotLocation,
	SlotCuisine,
	SlotNumberOfPeople,
	SlotDiningTime,
	SlotPhoneNumber,
}

var slotPrompts = map[string]string{
	SlotLocation:       "Great. I can help you with that. What city or city area are you looking to dine in?",
	SlotCuisine:        "What type of cuisine would you like to try?",
	SlotNumberOfPeople: "How many people will be in your party?",
	SlotDiningTime:     "What time would you like to dine?",
	SlotPhoneNumber:    "Please provide your email so I can send you the restaurant suggestions.",
}
