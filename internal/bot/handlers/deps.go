// Package handlers implements the chat command handlers, one file per
// command, wired together by the registry.
package handlers

import (
	"context"
	"log/slog"

	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/discord"
	"github.com/mrsemicolon/semibot/internal/github"
	"github.com/mrsemicolon/semibot/internal/leetcode"
)

// HandlerDeps provides dependencies for command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Session  discord.Session
	GitHub   github.Client
	LeetCode leetcode.Client

	// PostDaily announces today's challenge in the configured channel. It is
	// the same function the scheduler runs, so the manual command and the
	// timer produce identical output.
	PostDaily func(ctx context.Context) error
}
