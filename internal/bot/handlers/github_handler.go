package handlers

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/render"
	"github.com/mrsemicolon/semibot/internal/upstream"
)

// NewGitHubHandler returns the handler for the github command. A missing
// username is resolved with a usage reminder before any network call.
func NewGitHubHandler(deps HandlerDeps) CommandFunc {
	return githubHandler{deps}.Handle
}

type githubHandler struct {
	deps HandlerDeps
}

func (h githubHandler) Handle(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	log := h.deps.Logger.With("handler", "github")

	if len(args) == 0 {
		if _, err := h.deps.Session.ChannelMessageSendReply(m.ChannelID, h.deps.Config.Messages.GitHubUsage, m.Reference()); err != nil {
			log.ErrorContext(ctx, "Failed to send usage reminder", "error", err, "channel_id", m.ChannelID)
		}
		return
	}

	username := args[0]
	profile, err := h.deps.GitHub.User(ctx, username)
	if err != nil {
		apology := h.deps.Config.Messages.GeneralError
		if errors.Is(err, upstream.ErrNotFound) {
			apology = h.deps.Config.Messages.GitHubNotFound
		} else {
			// Raw upstream detail stays in the log.
			log.ErrorContext(ctx, "GitHub lookup failed", "username", username, "error", err)
		}
		if _, sendErr := h.deps.Session.ChannelMessageSend(m.ChannelID, apology); sendErr != nil {
			log.ErrorContext(ctx, "Failed to send apology", "error", sendErr, "channel_id", m.ChannelID)
		}
		return
	}

	if _, err := h.deps.Session.ChannelMessageSendEmbed(m.ChannelID, render.GitHubProfile(profile)); err != nil {
		log.ErrorContext(ctx, "Failed to send profile card", "error", err, "channel_id", m.ChannelID)
	}
}
