package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/render"
)

// NewHelpHandler returns the handler for the help command. The listing is
// static and has no failure mode beyond the send itself.
func NewHelpHandler(deps HandlerDeps) CommandFunc {
	return helpHandler{deps}.Handle
}

type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, _ []string) {
	log := h.deps.Logger.With("handler", "help")

	if _, err := h.deps.Session.ChannelMessageSendEmbed(m.ChannelID, render.Help(h.deps.Config.Discord.Prefix)); err != nil {
		log.ErrorContext(ctx, "Failed to send help message", "error", err, "channel_id", m.ChannelID)
	}
}
