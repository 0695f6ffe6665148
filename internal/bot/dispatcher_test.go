package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/bot/handlers"
)

type recordedCall struct {
	name string
	args []string
}

// recordingRegistry returns a command map whose handlers record their
// invocations into calls.
func recordingRegistry(calls *[]recordedCall, names ...string) map[string]handlers.CommandFunc {
	commands := make(map[string]handlers.CommandFunc)
	for _, name := range names {
		name := name
		commands[name] = func(_ context.Context, _ *discordgo.MessageCreate, args []string) {
			*calls = append(*calls, recordedCall{name: name, args: args})
		}
	}
	return commands
}

func newTestDispatcher(calls *[]recordedCall, names ...string) *Dispatcher {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDispatcher("!", recordingRegistry(calls, names...), log)
}

func msg(content string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		Content: content,
		Author:  &discordgo.User{ID: "user-1", Bot: bot},
	}}
}

func TestDispatcherIgnoresNonPrefixedText(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "ping")

	for _, content := range []string{"hello", "ping", " !ping", ""} {
		d.HandleMessage(context.Background(), msg(content, false))
	}

	if len(calls) != 0 {
		t.Errorf("got %d dispatches for non-prefixed text, want 0", len(calls))
	}
}

func TestDispatcherIgnoresBotAuthors(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "ping")

	d.HandleMessage(context.Background(), msg("!ping", true))

	if len(calls) != 0 {
		t.Errorf("got %d dispatches for a bot author, want 0", len(calls))
	}
}

func TestDispatcherIgnoresUnknownCommands(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "ping")

	d.HandleMessage(context.Background(), msg("!unknown", false))

	if len(calls) != 0 {
		t.Errorf("got %d dispatches for an unknown command, want silent ignore", len(calls))
	}
}

func TestDispatcherCommandLookupIsCaseInsensitive(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "ping")

	d.HandleMessage(context.Background(), msg("!PING", false))
	d.HandleMessage(context.Background(), msg("!ping", false))

	if len(calls) != 2 {
		t.Fatalf("got %d dispatches, want 2", len(calls))
	}
	if calls[0].name != "ping" || calls[1].name != "ping" {
		t.Errorf("calls = %+v, want both routed to ping", calls)
	}
}

func TestDispatcherPreservesArgumentCase(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "github")

	d.HandleMessage(context.Background(), msg("!github Torvalds", false))

	if len(calls) != 1 {
		t.Fatalf("got %d dispatches, want 1", len(calls))
	}
	if len(calls[0].args) != 1 || calls[0].args[0] != "Torvalds" {
		t.Errorf("args = %v, want [Torvalds] verbatim", calls[0].args)
	}
}

func TestDispatcherCollapsesWhitespaceRuns(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "github")

	d.HandleMessage(context.Background(), msg("!github   torvalds", false))

	if len(calls) != 1 {
		t.Fatalf("got %d dispatches, want 1", len(calls))
	}
	if len(calls[0].args) != 1 || calls[0].args[0] != "torvalds" {
		t.Errorf("args = %v, want [torvalds] with no empty-string artifacts", calls[0].args)
	}
}

func TestDispatcherIgnoresBarePrefix(t *testing.T) {
	var calls []recordedCall
	d := newTestDispatcher(&calls, "ping")

	d.HandleMessage(context.Background(), msg("!", false))
	d.HandleMessage(context.Background(), msg("!   ", false))

	if len(calls) != 0 {
		t.Errorf("got %d dispatches for a bare prefix, want 0", len(calls))
	}
}

func TestDispatcherAliasesShareOneHandler(t *testing.T) {
	var calls []recordedCall
	commands := recordingRegistry(&calls, "leetcode")
	commands["lc"] = commands["leetcode"]
	d := NewDispatcher("!", commands, slog.New(slog.NewTextHandler(io.Discard, nil)))

	d.HandleMessage(context.Background(), msg("!lc someone", false))

	if len(calls) != 1 || calls[0].name != "leetcode" {
		t.Errorf("calls = %+v, want the alias routed to the leetcode handler", calls)
	}
}
