// Package tasks implements the bot's scheduled tasks and their registry.
package tasks

import (
	"log/slog"

	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/discord"
	"github.com/mrsemicolon/semibot/internal/leetcode"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Session  discord.Session
	LeetCode leetcode.Client
}
