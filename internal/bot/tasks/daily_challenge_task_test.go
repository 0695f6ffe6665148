package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/leetcode"
	"github.com/mrsemicolon/semibot/internal/render"
)

type fakeSession struct {
	sends      []string
	sendChans  []string
	sendErr    error
	channelErr error
}

func (f *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sends = append(f.sends, content)
	f.sendChans = append(f.sendChans, channelID)
	return &discordgo.Message{ID: "sent-1", ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendEmbed(channelID string, _ *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "sent-1", ChannelID: channelID}, nil
}

func (f *fakeSession) ChannelMessageSendReply(channelID string, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "sent-1", ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageEdit(channelID, messageID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{ID: messageID, ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return &discordgo.Channel{ID: channelID}, nil
}

func (f *fakeSession) HeartbeatLatency() time.Duration { return 0 }

type fakeLeetCode struct {
	challenge *leetcode.Challenge
	err       error
}

func (f *fakeLeetCode) Profile(context.Context, string) (*leetcode.Profile, error) {
	return nil, errors.New("not used")
}

func (f *fakeLeetCode) DailyChallenge(context.Context) (*leetcode.Challenge, error) {
	return f.challenge, f.err
}

func testDeps(session *fakeSession, lc *fakeLeetCode) TaskDeps {
	return TaskDeps{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:   &config.Config{Daily: config.DailyConfig{ChannelID: "announce-channel"}},
		Session:  session,
		LeetCode: lc,
	}
}

func TestPostDailyChallenge(t *testing.T) {
	session := &fakeSession{}
	challenge := &leetcode.Challenge{Title: "Two Sum", Difficulty: "Easy", Slug: "two-sum"}

	err := PostDailyChallenge(context.Background(), testDeps(session, &fakeLeetCode{challenge: challenge}))
	if err != nil {
		t.Fatalf("PostDailyChallenge() returned error: %v", err)
	}

	if len(session.sends) != 1 {
		t.Fatalf("got %d sends, want 1", len(session.sends))
	}
	if session.sendChans[0] != "announce-channel" {
		t.Errorf("posted to channel %q, want the configured announce channel", session.sendChans[0])
	}
	// The announcement must be exactly what the renderer produces, since the
	// manual command path posts through this same function.
	if want := render.Challenge(challenge); session.sends[0] != want {
		t.Errorf("announcement = %q, want %q", session.sends[0], want)
	}
}

func TestPostDailyChallengeFetchFailure(t *testing.T) {
	session := &fakeSession{}

	err := PostDailyChallenge(context.Background(), testDeps(session, &fakeLeetCode{err: errors.New("leetcode: unexpected status 502")}))
	if err == nil {
		t.Fatal("PostDailyChallenge() succeeded despite a fetch failure")
	}
	if len(session.sends) != 0 {
		t.Errorf("got %d sends after a fetch failure, want 0", len(session.sends))
	}
}

func TestPostDailyChallengeChannelFailure(t *testing.T) {
	session := &fakeSession{channelErr: errors.New("unknown channel")}
	challenge := &leetcode.Challenge{Title: "Two Sum", Difficulty: "Easy", Slug: "two-sum"}

	if err := PostDailyChallenge(context.Background(), testDeps(session, &fakeLeetCode{challenge: challenge})); err == nil {
		t.Fatal("PostDailyChallenge() succeeded despite a channel lookup failure")
	}
}

func TestPostDailyChallengeSendFailure(t *testing.T) {
	session := &fakeSession{sendErr: errors.New("missing permissions")}
	challenge := &leetcode.Challenge{Title: "Two Sum", Difficulty: "Easy", Slug: "two-sum"}

	if err := PostDailyChallenge(context.Background(), testDeps(session, &fakeLeetCode{challenge: challenge})); err == nil {
		t.Fatal("PostDailyChallenge() succeeded despite a send failure")
	}
}
