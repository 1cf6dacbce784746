package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Debug          bool     `mapstructure:"debug"`
}

// AIConfig holds conversation backend configuration. The backend is
// optional: with Enabled false the service runs template-only.
type AIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// MatchingConfig holds recommendation scoring configuration
type MatchingConfig struct {
	ScoreThreshold float64 `mapstructure:"score_threshold"`
	MaxResults     int     `mapstructure:"max_results"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/property-chat-agent/")

	v.SetEnvPrefix("PROPERTYCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.debug", false)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.model", "")

	v.SetDefault("matching.score_threshold", 0.6)
	v.SetDefault("matching.max_results", 5)

	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.AI.Enabled && config.AI.APIKey == "" {
		return fmt.Errorf("AI API key is required when the backend is enabled (set PROPERTYCHAT_AI_API_KEY)")
	}

	if config.Matching.ScoreThreshold < 0 || config.Matching.ScoreThreshold >= 1 {
		return fmt.Errorf("matching score threshold must be in [0, 1), got: %v", config.Matching.ScoreThreshold)
	}

	if config.Matching.MaxResults <= 0 {
		return fmt.Errorf("matching max results must be positive, got: %d", config.Matching.MaxResults)
	}

	return nil
}
