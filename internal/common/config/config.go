// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	AWS     AWSConfig     `mapstructure:"aws"`
	Lex     LexConfig     `mapstructure:"lex"`
	Yelp    YelpConfig    `mapstructure:"yelp"`
	Dining  DiningConfig  `mapstructure:"dining"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	CORSAllowOrigin string `mapstructure:"cors_allow_origin"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// AWSConfig holds region plus the managed-resource identifiers the service
// talks to: the restaurants table and the suggestions topic.
type AWSConfig struct {
	Region              string `mapstructure:"region"`
	RestaurantsTable    string `mapstructure:"restaurants_table"`
	SuggestionsTopicARN string `mapstructure:"suggestions_topic_arn"`
}

// LexConfig is the fixed bot/session identity the front-door relay uses for
// every recognizer call.
type LexConfig struct {
	BotID      string `mapstructure:"bot_id"`
	BotAliasID string `mapstructure:"bot_alias_id"`
	LocaleID   string `mapstructure:"locale_id"`
	SessionID  string `mapstructure:"session_id"`
}

type YelpConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	APIKey    string `mapstructure:"api_key"`
	PageLimit int    `mapstructure:"page_limit"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
}

type DiningConfig struct {
	MaxSuggestions int `mapstructure:"max_suggestions"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
