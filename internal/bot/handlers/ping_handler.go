package handlers

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/render"
)

// NewPingHandler returns the handler for the ping command. It sends an
// acknowledgment reply, measures the gap between the command's and the
// acknowledgment's creation timestamps, reads the gateway heartbeat latency,
// and edits the acknowledgment in place with both figures.
func NewPingHandler(deps HandlerDeps) CommandFunc {
	return pingHandler{deps}.Handle
}

type pingHandler struct {
	deps HandlerDeps
}

func (h pingHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, _ []string) {
	log := h.deps.Logger.With("handler", "ping")

	ack, err := h.deps.Session.ChannelMessageSendReply(m.ChannelID, h.deps.Config.Messages.PingAck, m.Reference())
	if err != nil {
		log.ErrorContext(ctx, "Failed to send ping acknowledgment", "error", err, "channel_id", m.ChannelID)
		return
	}

	botMs := ack.Timestamp.Sub(m.Timestamp).Round(time.Millisecond).Milliseconds()
	if botMs < 0 {
		botMs = 0
	}
	apiMs := h.deps.Session.HeartbeatLatency().Round(time.Millisecond).Milliseconds()
	if apiMs < 0 {
		apiMs = 0
	}

	if _, err := h.deps.Session.ChannelMessageEdit(m.ChannelID, ack.ID, render.Latency(botMs, apiMs)); err != nil {
		log.ErrorContext(ctx, "Failed to edit ping acknowledgment", "error", err, "channel_id", m.ChannelID)
	}
}
