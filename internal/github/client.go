// Package github implements the GitHub REST client used by the !github
// command. It fetches a single user and maps the response into the profile
// summary the renderer consumes.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mrsemicolon/semibot/internal/config"
	"github.com/mrsemicolon/semibot/internal/upstream"
)

// Profile is the normalized summary of a GitHub user.
type Profile struct {
	DisplayName string
	ProfileURL  string
	AvatarURL   string
	Bio         string
	Followers   int
	Following   int
	PublicRepos int
	JoinedAt    time.Time
}

// Client defines the GitHub operations used by the bot.
type Client interface {
	User(ctx context.Context, username string) (*Profile, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
	log        *slog.Logger
}

// NewClient creates a GitHub client from configuration. The token is
// optional; when present it is sent as an Authorization header to raise the
// rate limit.
func NewClient(cfg config.GitHubConfig, log *slog.Logger) Client {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		log:        log.With("component", "github_client"),
	}
}

// userResponse mirrors the subset of the REST user object the bot consumes.
type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

const noBioPlaceholder = "No bio provided."

// User fetches a single user by login. A confirmed-absent user yields
// upstream.ErrNotFound; any other failure is returned with its detail intact
// for the log.
func (c *client) User(ctx context.Context, username string) (*Profile, error) {
	reqURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("github user %q: %w", username, upstream.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("github: unexpected status %d for user %q", resp.StatusCode, username)
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}
	if body.Login == "" {
		return nil, fmt.Errorf("github: response for %q is missing the login field", username)
	}

	profile := &Profile{
		DisplayName: body.Name,
		ProfileURL:  body.HTMLURL,
		AvatarURL:   body.AvatarURL,
		Bio:         body.Bio,
		Followers:   body.Followers,
		Following:   body.Following,
		PublicRepos: body.PublicRepos,
		JoinedAt:    body.CreatedAt,
	}
	if profile.DisplayName == "" {
		profile.DisplayName = body.Login
	}
	if profile.Bio == "" {
		profile.Bio = noBioPlaceholder
	}

	c.log.DebugContext(ctx, "Fetched GitHub profile", "username", body.Login)
	return profile, nil
}
