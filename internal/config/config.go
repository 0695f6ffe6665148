// Package config provides configuration loading, validation, and default
// management for the bot. Values come from defaults, an optional config.yaml
// in the working directory, and BOT_* environment variables, in that order.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config defines the application configuration for all components of the
// bot: logging, the gateway session, the upstream API clients, the daily
// challenge schedule, the liveness endpoint, and user-facing messages.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Discord  DiscordConfig  `mapstructure:"discord"`
	GitHub   GitHubConfig   `mapstructure:"github"`
	LeetCode LeetCodeConfig `mapstructure:"leetcode"`
	Daily    DailyConfig    `mapstructure:"daily"`
	Server   ServerConfig   `mapstructure:"server"`
	Messages MessagesConfig `mapstructure:"messages"`
}

// LogConfig controls log verbosity and output format.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// DiscordConfig holds the gateway credential and the command prefix.
type DiscordConfig struct {
	Token  string `mapstructure:"token"  validate:"required"`
	Prefix string `mapstructure:"prefix" validate:"required"`
}

// GitHubConfig holds settings for the GitHub REST client.
type GitHubConfig struct {
	BaseURL   string        `mapstructure:"base_url"   validate:"required,url"`
	Token     string        `mapstructure:"token"`
	UserAgent string        `mapstructure:"user_agent" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout"    validate:"required,min=1s,max=5m"`
}

// LeetCodeConfig holds settings for the LeetCode GraphQL client.
type LeetCodeConfig struct {
	URL     string        `mapstructure:"url"     validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"required,min=1s,max=5m"`
}

// DailyConfig controls the daily challenge announcement: where it is posted
// and when the scheduled job fires.
type DailyConfig struct {
	ChannelID string `mapstructure:"channel_id" validate:"required"`
	Schedule  string `mapstructure:"schedule"   validate:"required"`
	Timezone  string `mapstructure:"timezone"   validate:"required"`
}

// ServerConfig holds the listen address for the liveness endpoint.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" validate:"required"`
}

// MessagesConfig holds every user-facing message string the bot sends
// outside of rendered result payloads.
type MessagesConfig struct {
	PingAck          string `mapstructure:"ping_ack"           validate:"required"`
	DailyFetching    string `mapstructure:"daily_fetching"     validate:"required"`
	DailyFailed      string `mapstructure:"daily_failed"       validate:"required"`
	GitHubUsage      string `mapstructure:"github_usage"       validate:"required"`
	GitHubNotFound   string `mapstructure:"github_not_found"   validate:"required"`
	LeetCodeUsage    string `mapstructure:"leetcode_usage"     validate:"required"`
	LeetCodeNotFound string `mapstructure:"leetcode_not_found" validate:"required"`
	GeneralError     string `mapstructure:"general_error"      validate:"required"`
}

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file
// 3. BOT_* environment variables
func Load() (*Config, error) {
	setDefaults()

	if err := readConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// readConfig initializes and loads the configuration using viper. A missing
// config file is fine; defaults and environment variables still apply.
func readConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}
