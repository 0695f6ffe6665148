package tasks

import (
	"context"
	"fmt"

	"github.com/mrsemicolon/semibot/internal/render"
)

// PostDailyChallenge fetches today's challenge and announces it in the
// configured channel. The daily command and the scheduled job both run this
// exact function, so their rendered output is identical; only the caller
// decides how to react to the returned error.
func PostDailyChallenge(ctx context.Context, deps TaskDeps) error {
	log := deps.Logger.With("task", "daily_challenge")

	challenge, err := deps.LeetCode.DailyChallenge(ctx)
	if err != nil {
		return fmt.Errorf("fetch daily challenge: %w", err)
	}

	channel, err := deps.Session.Channel(deps.Config.Daily.ChannelID)
	if err != nil {
		return fmt.Errorf("resolve announce channel %s: %w", deps.Config.Daily.ChannelID, err)
	}

	if _, err := deps.Session.ChannelMessageSend(channel.ID, render.Challenge(challenge)); err != nil {
		return fmt.Errorf("send daily challenge: %w", err)
	}

	log.InfoContext(ctx, "Posted daily challenge", "title", challenge.Title, "difficulty", challenge.Difficulty)
	return nil
}

// newDailyChallengeTask creates the scheduled task wrapper around
// PostDailyChallenge. Failures are logged by the scheduler; there is no
// requesting user to reply to.
func newDailyChallengeTask(deps TaskDeps) ScheduledTaskFunc {
	return func(ctx context.Context) error {
		return PostDailyChallenge(ctx, deps)
	}
}
