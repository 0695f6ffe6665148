// Package render maps normalized fetch results to user-displayable message
// payloads. Everything here is a pure function; no I/O.
package render

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/mrsemicolon/semibot/internal/github"
	"github.com/mrsemicolon/semibot/internal/leetcode"
)

const embedColor = 0x0099FF

const problemsBaseURL = "https://leetcode.com/problems/"

// Latency renders the ping result.
func Latency(botMs, apiMs int64) string {
	return fmt.Sprintf("\U0001F3D3 Pong!\n**Bot Latency:** %dms\n**API Latency:** %dms", botMs, apiMs)
}

// ProblemURL derives the canonical problem page for a challenge slug.
func ProblemURL(slug string) string {
	return problemsBaseURL + slug
}

// Challenge renders the daily challenge announcement.
func Challenge(ch *leetcode.Challenge) string {
	return fmt.Sprintf("\U0001F4A1 **%s** (%s)\n\U0001F517 %s", ch.Title, ch.Difficulty, ProblemURL(ch.Slug))
}

// GitHubProfile renders a GitHub profile card.
func GitHubProfile(p *github.Profile) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       p.DisplayName,
		URL:         p.ProfileURL,
		Description: p.Bio,
		Color:       embedColor,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: p.AvatarURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Followers", Value: strconv.Itoa(p.Followers), Inline: true},
			{Name: "Following", Value: strconv.Itoa(p.Following), Inline: true},
			{Name: "Public Repos", Value: strconv.Itoa(p.PublicRepos), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Joined " + p.JoinedAt.Format("January 2, 2006"),
		},
	}
}

// LeetCodeProfile renders a LeetCode profile card.
func LeetCodeProfile(p *leetcode.Profile) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: p.Username,
		URL:   "https://leetcode.com/u/" + p.Username + "/",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Ranking", Value: strconv.Itoa(p.Ranking), Inline: true},
			{Name: "Reputation", Value: strconv.Itoa(p.Reputation), Inline: true},
			{
				Name: "Solved",
				Value: fmt.Sprintf("%d (Easy %d / Medium %d / Hard %d)",
					p.Solved.All, p.Solved.Easy, p.Solved.Medium, p.Solved.Hard),
			},
		},
	}
}

// Avatar renders a user's avatar image card.
func Avatar(username, avatarURL string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: username + "'s Avatar",
		Color: embedColor,
		Image: &discordgo.MessageEmbedImage{URL: avatarURL},
	}
}

// Help renders the command listing, one field per command.
func Help(prefix string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Mr.Semicolon's Commands",
		Description: "Here is what I can do:",
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: prefix + "ping", Value: "Checks my speed (latency)."},
			{Name: prefix + "daily", Value: "Manually posts the LeetCode daily challenge."},
			{Name: prefix + "github <username>", Value: "Shows a GitHub profile."},
			{Name: prefix + "leetcode <username>", Value: "Shows LeetCode stats (alias: " + prefix + "lc)."},
			{Name: prefix + "avatar [@user]", Value: "Shows your (or a mentioned user's) avatar."},
			{Name: prefix + "help", Value: "Shows this help message."},
		},
	}
}
