// internal/intents/dining/config.go
package dining

import "time"

// NotificationSubject is the fixed subject line for every suggestions
// notification.
const NotificationSubject = "Restaurant Suggestions"

// Config holds handler settings for the dining suggestions intent.
type Config struct {
	MaxSuggestions int
	Timeout        time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		MaxSuggestions: 3,
		Timeout:        30 * time.Second,
	}
}
