package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// NewDailyHandler returns the handler for the daily command. It acknowledges
// immediately, then posts today's challenge through the shared announcement
// path; on failure it sends a distinct apology in the same channel rather
// than editing the acknowledgment.
func NewDailyHandler(deps HandlerDeps) CommandFunc {
	return dailyHandler{deps}.Handle
}

type dailyHandler struct {
	deps HandlerDeps
}

func (h dailyHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, _ []string) {
	log := h.deps.Logger.With("handler", "daily")

	if _, err := h.deps.Session.ChannelMessageSendReply(m.ChannelID, h.deps.Config.Messages.DailyFetching, m.Reference()); err != nil {
		log.ErrorContext(ctx, "Failed to send daily acknowledgment", "error", err, "channel_id", m.ChannelID)
	}

	if err := h.deps.PostDaily(ctx); err != nil {
		log.ErrorContext(ctx, "Daily challenge post failed", "error", err)
		if _, sendErr := h.deps.Session.ChannelMessageSend(m.ChannelID, h.deps.Config.Messages.DailyFailed); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send daily apology", "error", sendErr, "channel_id", m.ChannelID)
		}
	}
}
