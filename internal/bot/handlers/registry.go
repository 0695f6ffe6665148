package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// CommandFunc handles one parsed command. args holds the whitespace-split
// tokens after the command name, case preserved.
type CommandFunc func(ctx context.Context, m *discordgo.MessageCreate, args []string)

// RegisterAllCommands initializes and returns the map of all recognized
// commands, keyed by lowercase command name. Aliases share one handler.
func RegisterAllCommands(deps HandlerDeps) map[string]CommandFunc {
	commands := make(map[string]CommandFunc)

	commands["ping"] = NewPingHandler(deps)
	commands["daily"] = NewDailyHandler(deps)
	commands["help"] = NewHelpHandler(deps)
	commands["avatar"] = NewAvatarHandler(deps)
	commands["github"] = NewGitHubHandler(deps)

	leetcodeHandler := NewLeetCodeHandler(deps)
	commands["leetcode"] = leetcodeHandler
	commands["lc"] = leetcodeHandler

	deps.Logger.Info("Registered commands", "count", len(commands))
	return commands
}
