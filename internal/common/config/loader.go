// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like YELP_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// Secrets come in through the environment, never the yaml files.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Yelp.APIKey == "" {
		if val := os.Getenv("YELP_API_KEY"); val != "" {
			cfg.Yelp.APIKey = val
		}
	}
	if cfg.AWS.SuggestionsTopicARN == "" {
		if val := os.Getenv("SUGGESTIONS_TOPIC_ARN"); val != "" {
			cfg.AWS.SuggestionsTopicARN = val
		}
	}
	if cfg.Lex.BotID == "" {
		if val := os.Getenv("LEX_BOT_ID"); val != "" {
			cfg.Lex.BotID = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "dining-concierge"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.CORSAllowOrigin == "" {
		cfg.Server.CORSAllowOrigin = "*"
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10000
	}

	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.AWS.RestaurantsTable == "" {
		cfg.AWS.RestaurantsTable = "yelp-restaurants"
	}

	if cfg.Lex.BotAliasID == "" {
		cfg.Lex.BotAliasID = "TSTALIASID"
	}
	if cfg.Lex.LocaleID == "" {
		cfg.Lex.LocaleID = "en_US"
	}
	if cfg.Lex.SessionID == "" {
		cfg.Lex.SessionID = "concierge-web"
	}

	if cfg.Yelp.BaseURL == "" {
		cfg.Yelp.BaseURL = "https://api.yelp.com/v3"
	}
	if cfg.Yelp.PageLimit == 0 {
		cfg.Yelp.PageLimit = 50
	}
	if cfg.Yelp.Timeout == 0 {
		cfg.Yelp.Timeout = 10000
	}

	if cfg.Dining.MaxSuggestions == 0 {
		cfg.Dining.MaxSuggestions = 3
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.AWS.RestaurantsTable == "" {
		return fmt.Errorf("aws.restaurants_table is required")
	}
	if cfg.Yelp.PageLimit < 1 || cfg.Yelp.PageLimit > 50 {
		return fmt.Errorf("yelp.page_limit must be between 1 and 50")
	}
	if cfg.Dining.MaxSuggestions < 1 {
		return fmt.Errorf("dining.max_suggestions must be positive")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
