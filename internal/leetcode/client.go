// Package leetcode implements the LeetCode GraphQL client. One endpoint
// serves both named queries the bot uses: the matched-user profile with
// submission stats, and the currently active daily challenge.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/upstream"
)

const profileQuery = `query userProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      reputation
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

const dailyQuery = `query questionOfToday {
  activeDailyCodingChallengeQuestion {
    question {
      title
      titleSlug
      difficulty
    }
  }
}`

// SolvedCount holds accepted-submission counts per difficulty.
type SolvedCount struct {
	All    int
	Easy   int
	Medium int
	Hard   int
}

// Profile is the normalized summary of a LeetCode user.
type Profile struct {
	Username   string
	Ranking    int
	Reputation int
	Solved     SolvedCount
}

// Challenge is today's daily coding challenge.
type Challenge struct {
	Title      string
	Difficulty string
	Slug       string
}

// Client defines the LeetCode operations used by the bot.
type Client interface {
	Profile(ctx context.Context, username string) (*Profile, error)
	DailyChallenge(ctx context.Context) (*Challenge, error)
}

type client struct {
	httpClient *http.Client
	url        string
	log        *slog.Logger
}

// NewClient creates a LeetCode client from configuration.
func NewClient(cfg config.LeetCodeConfig, log *slog.Logger) Client {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.URL,
		log:        log.With("component", "leetcode_client"),
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// post sends one GraphQL request and decodes the response into out.
func (c *client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode leetcode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build leetcode request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("leetcode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leetcode: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode leetcode response: %w", err)
	}
	return nil
}

type profileResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				Ranking    int `json:"ranking"`
				Reputation int `json:"reputation"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// Profile fetches a user's stats. A null matchedUser means the username does
// not exist and yields upstream.ErrNotFound. A stats list missing one of the
// four expected difficulty entries is an upstream shape error, never a zero.
func (c *client) Profile(ctx context.Context, username string) (*Profile, error) {
	var body profileResponse
	if err := c.post(ctx, profileQuery, map[string]any{"username": username}, &body); err != nil {
		return nil, err
	}

	mu := body.Data.MatchedUser
	if mu == nil {
		return nil, fmt.Errorf("leetcode user %q: %w", username, upstream.ErrNotFound)
	}

	var solved SolvedCount
	seen := make(map[string]bool, 4)
	for _, entry := range mu.SubmitStatsGlobal.ACSubmissionNum {
		switch entry.Difficulty {
		case "All":
			solved.All = entry.Count
		case "Easy":
			solved.Easy = entry.Count
		case "Medium":
			solved.Medium = entry.Count
		case "Hard":
			solved.Hard = entry.Count
		default:
			continue
		}
		seen[entry.Difficulty] = true
	}
	for _, difficulty := range []string{"All", "Easy", "Medium", "Hard"} {
		if !seen[difficulty] {
			return nil, fmt.Errorf("leetcode: submission stats for %q are missing the %s entry", username, difficulty)
		}
	}

	c.log.DebugContext(ctx, "Fetched LeetCode profile", "username", mu.Username, "solved", solved.All)
	return &Profile{
		Username:   mu.Username,
		Ranking:    mu.Profile.Ranking,
		Reputation: mu.Profile.Reputation,
		Solved:     solved,
	}, nil
}

type dailyResponse struct {
	Data struct {
		ActiveDailyCodingChallengeQuestion *struct {
			Question struct {
				Title      string `json:"title"`
				TitleSlug  string `json:"titleSlug"`
				Difficulty string `json:"difficulty"`
			} `json:"question"`
		} `json:"activeDailyCodingChallengeQuestion"`
	} `json:"data"`
}

// DailyChallenge fetches the currently active daily question. The query
// takes no identifying parameter, so there is no not-found case; every
// failure is an upstream error.
func (c *client) DailyChallenge(ctx context.Context) (*Challenge, error) {
	var body dailyResponse
	if err := c.post(ctx, dailyQuery, nil, &body); err != nil {
		return nil, err
	}

	active := body.Data.ActiveDailyCodingChallengeQuestion
	if active == nil || active.Question.Title == "" || active.Question.TitleSlug == "" {
		return nil, fmt.Errorf("leetcode: daily challenge response is missing the question")
	}

	c.log.DebugContext(ctx, "Fetched daily challenge", "title", active.Question.Title)
	return &Challenge{
		Title:      active.Question.Title,
		Difficulty: active.Question.Difficulty,
		Slug:       active.Question.TitleSlug,
	}, nil
}
