package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-builder/internal/auth"
	"planet-builder/internal/auth/providers"
	"planet-builder/internal/classification"
	"planet-builder/internal/designer"
	"planet-builder/internal/planet"

	"golang.org/x/oauth2"
)

func newTestRoutes(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	designers := designer.NewService(designer.NewRepository(nil, logger), logger)
	return NewRoutes(Dependencies{
		PlanetService:   planet.NewService(classification.New(), nil, planet.NewRepository(nil, logger), logger),
		DesignerService: designers,
		AuthService:     auth.NewService(auth.NewRepository(nil, logger), designers, tokens, logger),
		Tokens:          tokens,
		States:          auth.NewStateManager(),
		OAuthConfig: &auth.OAuthConfig{
			GitHubProvider: providers.NewGitHubProvider(&oauth2.Config{}),
		},
		FrontendURL: "http://localhost:3000",
	}).Setup()
}

func TestRoutes(t *testing.T) {
	mux := newTestRoutes(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/catalog", http.StatusOK},
		{http.MethodGet, "/api/presets", http.StatusOK},
		{http.MethodGet, "/api/presets/earth/assessment", http.StatusOK},
		{http.MethodGet, "/api/assess", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/designs", http.StatusUnauthorized},
		{http.MethodGet, "/api/designs/3f1c", http.StatusUnauthorized},
		{http.MethodGet, "/api/designers/me", http.StatusUnauthorized},
		{http.MethodGet, "/auth/github", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
