package handlers

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/render"
	"github.com/mrsemicolon/semibot/internal/upstream"
)

// NewLeetCodeHandler returns the handler shared by the leetcode and lc
// commands. A missing username is resolved with a usage reminder before any
// network call.
func NewLeetCodeHandler(deps HandlerDeps) CommandFunc {
	return leetcodeHandler{deps}.Handle
}

type leetcodeHandler struct {
	deps HandlerDeps
}

func (h leetcodeHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	log := h.deps.Logger.With("handler", "leetcode")

	if len(args) == 0 {
		if _, err := h.deps.Session.ChannelMessageSendReply(m.ChannelID, h.deps.Config.Messages.LeetCodeUsage, m.Reference()); err != nil {
			log.ErrorContext(ctx, "Failed to send usage reminder", "error", err, "channel_id", m.ChannelID)
		}
		return
	}

	username := args[0]
	profile, err := h.deps.LeetCode.Profile(ctx, username)
	if err != nil {
		apology := h.deps.Config.Messages.GeneralError
		if errors.Is(err, upstream.ErrNotFound) {
			apology = h.deps.Config.Messages.LeetCodeNotFound
		} else {
			log.ErrorContext(ctx, "LeetCode lookup failed", "username", username, "error", err)
		}
		if _, sendErr := h.deps.Session.ChannelMessageSend(m.ChannelID, apology); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send apology", "error", sendErr, "channel_id", m.ChannelID)
		}
		return
	}

	if _, err := h.deps.Session.ChannelMessageSendEmbed(m.ChannelID, render.LeetCodeProfile(profile)); err != nil {
		log.ErrorContext(ctx, "Failed to send profile card", "error", err, "channel_id", m.ChannelID)
	}
}
