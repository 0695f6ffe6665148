// Package discord wraps construction of the gateway session and defines the
// narrow session surface the rest of the bot consumes. Handlers and tasks
// receive a Session by reference instead of touching the client globally, so
// tests can substitute a recording fake.
package discord

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Session is the subset of the gateway client used by handlers and tasks:
// sending, replying, editing, channel lookup, and heartbeat latency. It is
// satisfied by *discordgo.Session.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	HeartbeatLatency() time.Duration
}

var _ Session = (*discordgo.Session)(nil)

// New creates the gateway session with the intents the bot needs: guilds,
// guild messages, and message content. The session is not opened here; the
// orchestrator owns its lifecycle.
func New(token string, log *slog.Logger) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create gateway session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	sessionLog := log.With("component", "gateway_session")
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		sessionLog.Info("Logged in", "username", r.User.Username, "discriminator", r.User.Discriminator)
	})

	return s, nil
}
