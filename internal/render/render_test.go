package render

import (
	"strings"
	"testing"
	"time"

	"github.com/mrsemicolon/semibot/internal/github"
	"github.com/mrsemicolon/semibot/internal/leetcode"
)

func TestChallengeRendersCanonicalURL(t *testing.T) {
	got := Challenge(&leetcode.Challenge{Title: "Two Sum", Difficulty: "Easy", Slug: "two-sum"})

	if !strings.Contains(got, "https://leetcode.com/problems/two-sum") {
		t.Errorf("Challenge() = %q, want it to contain the canonical problem URL", got)
	}
	if !strings.Contains(got, "**Two Sum**") || !strings.Contains(got, "(Easy)") {
		t.Errorf("Challenge() = %q, want title and difficulty", got)
	}
}

func TestLatency(t *testing.T) {
	got := Latency(42, 87)
	if !strings.Contains(got, "**Bot Latency:** 42ms") {
		t.Errorf("Latency() = %q", got)
	}
	if !strings.Contains(got, "**API Latency:** 87ms") {
		t.Errorf("Latency() = %q", got)
	}
}

func TestGitHubProfileEmbed(t *testing.T) {
	embed := GitHubProfile(&github.Profile{
		DisplayName: "Linus Torvalds",
		ProfileURL:  "https://github.com/torvalds",
		AvatarURL:   "https://example.test/avatar.png",
		Bio:         "kernels",
		Followers:   200000,
		Following:   0,
		PublicRepos: 7,
		JoinedAt:    time.Date(2011, time.September, 3, 15, 26, 22, 0, time.UTC),
	})

	if embed.Title != "Linus Torvalds" || embed.URL != "https://github.com/torvalds" {
		t.Errorf("embed header = %q / %q", embed.Title, embed.URL)
	}
	if embed.Thumbnail == nil || embed.Thumbnail.URL != "https://example.test/avatar.png" {
		t.Error("embed is missing the avatar thumbnail")
	}
	if len(embed.Fields) != 3 {
		t.Fatalf("embed has %d fields, want 3", len(embed.Fields))
	}
	if embed.Footer == nil || embed.Footer.Text != "Joined September 3, 2011" {
		t.Errorf("embed footer = %+v, want a human-readable join date", embed.Footer)
	}
}

func TestLeetCodeProfileEmbed(t *testing.T) {
	embed := LeetCodeProfile(&leetcode.Profile{
		Username:   "someone",
		Ranking:    51234,
		Reputation: 12,
		Solved:     leetcode.SolvedCount{All: 240, Easy: 120, Medium: 100, Hard: 20},
	})

	if embed.Title != "someone" {
		t.Errorf("embed title = %q", embed.Title)
	}
	var solved string
	for _, f := range embed.Fields {
		if f.Name == "Solved" {
			solved = f.Value
		}
	}
	if !strings.Contains(solved, "240") || !strings.Contains(solved, "Hard 20") {
		t.Errorf("solved field = %q", solved)
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	embed := Help("!")

	if len(embed.Fields) != 6 {
		t.Fatalf("help embed has %d fields, want 6", len(embed.Fields))
	}
	for _, want := range []string{"!ping", "!daily", "!github <username>", "!leetcode <username>", "!avatar [@user]", "!help"} {
		found := false
		for _, f := range embed.Fields {
			if f.Name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("help embed is missing a field named %q", want)
		}
	}
}

func TestHelpUsesConfiguredPrefix(t *testing.T) {
	embed := Help("?")
	if embed.Fields[0].Name != "?ping" {
		t.Errorf("first field = %q, want prefix applied", embed.Fields[0].Name)
	}
}

func TestAvatarEmbed(t *testing.T) {
	embed := Avatar("someone", "https://cdn.example.test/a.gif")
	if embed.Title != "someone's Avatar" {
		t.Errorf("embed title = %q", embed.Title)
	}
	if embed.Image == nil || embed.Image.URL != "https://cdn.example.test/a.gif" {
		t.Error("embed is missing the avatar image")
	}
}
