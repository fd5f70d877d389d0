package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
)

const githubAPIURL = "https://api.github.com"

type githubUser struct {
	ID        int    `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type GitHubProvider struct {
	config *oauth2.Config
	apiURL string
}

func NewGitHubProvider(config *oauth2.Config) *GitHubProvider {
	return &GitHubProvider{config: config, apiURL: githubAPIURL}
}

// WithAPIURL points the provider at another GitHub API host.
func (p *GitHubProvider) WithAPIURL(url string) *GitHubProvider {
	p.apiURL = url
	return p
}

func (p *GitHubProvider) Name() string {
	return "github"
}

func (p *GitHubProvider) GetAuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (p *GitHubProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	logger := slog.With("provider", "github", "operation", "exchange_code")
	logger.Debug("Exchanging authorization code for GitHub access token")

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange GitHub authorization code", "error", err)
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// GetUserInfo reads the GitHub profile. GitHub hides private addresses from /user, so the
// email falls back to the primary verified entry of /user/emails.
func (p *GitHubProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	client := p.config.Client(ctx, token)
	logger := slog.With("provider", "github", "operation", "get_user_info")

	var user githubUser
	if err := p.getJSON(client, "/user", &user); err != nil {
		logger.Error("Failed to get GitHub user", "error", err)
		return nil, err
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("GitHub user info missing user ID")
	}

	var emails []githubEmail
	if err := p.getJSON(client, "/user/emails", &emails); err != nil {
		logger.Warn("Failed to fetch GitHub user emails", "error", err, "github_user_id", user.ID)
	}

	email, verified := pickEmail(user.Email, emails)
	name := user.Name
	if name == "" {
		name = user.Login
	}

	logger.Debug("Retrieved GitHub user info",
		"github_user_id", user.ID,
		"has_email", email != "",
		"email_verified", verified)

	return &OAuthUser{
		ID:            strconv.Itoa(user.ID),
		Email:         email,
		EmailVerified: verified,
		Name:          name,
		AvatarURL:     user.AvatarURL,
	}, nil
}

func (p *GitHubProvider) getJSON(client *http.Client, path string, out any) error {
	resp, err := client.Get(p.apiURL + path)
	if err != nil {
		return fmt.Errorf("failed to request %s from GitHub: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API %s returned status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode GitHub %s response: %w", path, err)
	}
	return nil
}

// pickEmail prefers the primary verified address, then any verified one. The public
// profile address counts as verified only when the email list confirms it.
func pickEmail(profileEmail string, emails []githubEmail) (string, bool) {
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, true
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, true
		}
	}
	return profileEmail, false
}
