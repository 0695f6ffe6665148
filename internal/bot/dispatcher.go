package bot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/bot/handlers"
)

// Dispatcher owns the prefix convention and the argument-splitting rule. It
// maps inbound text to a registered command handler and invokes it; it
// performs no I/O of its own.
type Dispatcher struct {
	prefix   string
	commands map[string]handlers.CommandFunc
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher over the given command registry.
func NewDispatcher(prefix string, commands map[string]handlers.CommandFunc, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		prefix:   prefix,
		commands: commands,
		log:      log.With("component", "dispatcher"),
	}
}

// HandleMessage is the entry point for inbound messages. Messages from bot
// accounts (including this one) are dropped before anything else to prevent
// feedback loops; non-prefixed text and unknown command names are ignored
// silently. Splitting on runs of whitespace means consecutive spaces
// collapse, so args never contain empty strings.
func (d *Dispatcher) HandleMessage(ctx context.Context, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, d.prefix) {
		return
	}

	parts := strings.Fields(strings.TrimPrefix(m.Content, d.prefix))
	if len(parts) == 0 {
		return
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	command, ok := d.commands[name]
	if !ok {
		d.log.DebugContext(ctx, "Ignoring unknown command", "command", name)
		return
	}

	d.log.InfoContext(ctx, "Dispatching command", "command", name, "args", len(args), "channel_id", m.ChannelID, "user_id", m.Author.ID)
	command(ctx, m, args)
}
