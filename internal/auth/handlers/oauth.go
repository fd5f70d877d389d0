package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"planet-builder/internal/auth"
	"planet-builder/internal/auth/providers"
	"planet-builder/internal/designer"
	"planet-builder/internal/shared/cookies"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

const callbackTimeout = 30 * time.Second

type loginService interface {
	Login(ctx context.Context, provider string, user *providers.OAuthUser) (*designer.Designer, string, error)
}

type OAuthHandler struct {
	provider     providers.OAuthProvider
	states       *auth.StateManager
	logins       loginService
	frontendURL  string
	isConfigured bool
}

func NewOAuthHandler(provider providers.OAuthProvider, states *auth.StateManager, logins loginService, frontendURL string, isConfigured bool) *OAuthHandler {
	return &OAuthHandler{
		provider:     provider,
		states:       states,
		logins:       logins,
		frontendURL:  frontendURL,
		isConfigured: isConfigured,
	}
}

func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init", "ip", r.RemoteAddr)

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	state, err := h.states.GenerateState(name, r.UserAgent())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	logger.Info("Initiating OAuth flow", "provider", name)
	http.Redirect(w, r, h.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	query := r.URL.Query()
	code := query.Get("code")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"user_agent", r.UserAgent(),
		"ip", r.RemoteAddr,
		"has_code", code != "",
	)

	if errorParam := query.Get("error"); errorParam != "" {
		logger.Warn("OAuth authorization denied",
			"oauth_error", errorParam,
			"error_description", query.Get("error_description"))
		redirectWithError(w, r, h.frontendURL, "oauth_denied")
		return
	}

	if err := h.states.ValidateState(query.Get("state"), name, r.UserAgent()); err != nil {
		logger.Warn("OAuth state validation failed", "error", err)
		redirectWithError(w, r, h.frontendURL, "invalid_state")
		return
	}

	if code == "" {
		logger.Error("OAuth callback missing authorization code")
		redirectWithError(w, r, h.frontendURL, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), callbackTimeout)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		redirectWithError(w, r, h.frontendURL, "oauth_error")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info", "error", err)
		redirectWithError(w, r, h.frontendURL, "oauth_error")
		return
	}

	d, sessionToken, err := h.logins.Login(ctx, name, userInfo)
	if err != nil {
		logger.Error("Failed to sign in designer", "error", err, "provider_user_id", userInfo.ID)
		if errors.GetType(err) == errors.ErrorTypeUnauthorized {
			redirectWithError(w, r, h.frontendURL, "email_required")
			return
		}
		redirectWithError(w, r, h.frontendURL, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, sessionToken)

	logger.Info("OAuth authentication successful", "designer_id", d.ID, "username", d.Username)
	http.Redirect(w, r, h.frontendURL+"/auth/callback?success=true", http.StatusTemporaryRedirect)
}
