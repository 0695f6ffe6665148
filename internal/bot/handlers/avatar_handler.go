package handlers

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/render"
)

// avatarSize is passed to the CDN; AvatarURL prefers the animated format
// when the user has one.
const avatarSize = "256"

// NewAvatarHandler returns the handler for the avatar command. The target is
// the first mentioned user, falling back to the message author.
func NewAvatarHandler(deps HandlerDeps) CommandFunc {
	return avatarHandler{deps}.Handle
}

type avatarHandler struct {
	deps HandlerDeps
}

func (h avatarHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, _ []string) {
	log := h.deps.Logger.With("handler", "avatar")

	user := m.Author
	if len(m.Mentions) > 0 {
		user = m.Mentions[0]
	}

	if _, err := h.deps.Session.ChannelMessageSendEmbed(m.ChannelID, render.Avatar(user.Username, user.AvatarURL(avatarSize))); err != nil {
		log.ErrorContext(ctx, "Failed to send avatar message", "error", err, "channel_id", m.ChannelID)
	}
}
