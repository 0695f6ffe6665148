package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	// Discord defaults
	DefaultCommandPrefix = "!"

	// GitHub defaults
	DefaultGitHubBaseURL   = "https://api.github.com"
	DefaultGitHubUserAgent = "semibot"
	DefaultGitHubTimeout   = 10 * time.Second

	// LeetCode defaults
	DefaultLeetCodeURL     = "https://leetcode.com/graphql"
	DefaultLeetCodeTimeout = 10 * time.Second

	// Daily challenge defaults: 09:00 every day, Indian Standard Time
	DefaultDailySchedule = "0 9 * * *"
	DefaultDailyTimezone = "Asia/Kolkata"

	// Liveness endpoint defaults
	DefaultListenAddr = ":8080"
)

// Default user-facing message strings. Kept in configuration so operators
// can reword the bot without rebuilding it.
const (
	DefaultMsgPingAck          = "Pinging..."
	DefaultMsgDailyFetching    = "\U0001F4A1 On it! Fetching today's LeetCode challenge..."
	DefaultMsgDailyFailed      = "Sorry, I couldn't fetch the challenge. Please check the logs."
	DefaultMsgGitHubUsage      = "Usage: !github [username]"
	DefaultMsgGitHubNotFound   = "Couldn't find a GitHub user with that name."
	DefaultMsgLeetCodeUsage    = "Usage: !leetcode [username]"
	DefaultMsgLeetCodeNotFound = "Couldn't find a LeetCode user with that name."
	DefaultMsgGeneralError     = "Something went wrong. Please try again later."
)

// setDefaults registers the default value for every configuration key so
// that environment overrides resolve even without a config file.
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.json", DefaultLogJSON)

	// Discord defaults
	viper.SetDefault("discord.token", "")
	viper.SetDefault("discord.prefix", DefaultCommandPrefix)

	// GitHub defaults
	viper.SetDefault("github.base_url", DefaultGitHubBaseURL)
	viper.SetDefault("github.token", "")
	viper.SetDefault("github.user_agent", DefaultGitHubUserAgent)
	viper.SetDefault("github.timeout", DefaultGitHubTimeout)

	// LeetCode defaults
	viper.SetDefault("leetcode.url", DefaultLeetCodeURL)
	viper.SetDefault("leetcode.timeout", DefaultLeetCodeTimeout)

	// Daily challenge defaults
	viper.SetDefault("daily.channel_id", "")
	viper.SetDefault("daily.schedule", DefaultDailySchedule)
	viper.SetDefault("daily.timezone", DefaultDailyTimezone)

	// Liveness endpoint defaults
	viper.SetDefault("server.listen_addr", DefaultListenAddr)

	// Message defaults
	viper.SetDefault("messages.ping_ack", DefaultMsgPingAck)
	viper.SetDefault("messages.daily_fetching", DefaultMsgDailyFetching)
	viper.SetDefault("messages.daily_failed", DefaultMsgDailyFailed)
	viper.SetDefault("messages.github_usage", DefaultMsgGitHubUsage)
	viper.SetDefault("messages.github_not_found", DefaultMsgGitHubNotFound)
	viper.SetDefault("messages.leetcode_usage", DefaultMsgLeetCodeUsage)
	viper.SetDefault("messages.leetcode_not_found", DefaultMsgLeetCodeNotFound)
	viper.SetDefault("messages.general_error", DefaultMsgGeneralError)
}
