package server

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/auth"
	authHandlers "planet-builder/internal/auth/handlers"
	"planet-builder/internal/designer"
	designerHandlers "planet-builder/internal/designer/handlers"
	"planet-builder/internal/middleware"
	"planet-builder/internal/planet"
	planetHandlers "planet-builder/internal/planet/handlers"
	serverHandlers "planet-builder/internal/server/handlers"
	"planet-builder/internal/shared/database"
	"planet-builder/internal/shared/redis"
)

type Routes struct {
	db              *database.DB
	cache           *redis.Client
	planetService   *planet.Service
	designerService *designer.Service
	authService     *auth.Service
	tokens          *auth.TokenIssuer
	states          *auth.StateManager
	oauthConfig     *auth.OAuthConfig
	frontendURL     string
}

type Dependencies struct {
	DB              *database.DB
	Cache           *redis.Client
	PlanetService   *planet.Service
	DesignerService *designer.Service
	AuthService     *auth.Service
	Tokens          *auth.TokenIssuer
	States          *auth.StateManager
	OAuthConfig     *auth.OAuthConfig
	FrontendURL     string
}

func NewRoutes(deps Dependencies) *Routes {
	return &Routes{
		db:              deps.DB,
		cache:           deps.Cache,
		planetService:   deps.PlanetService,
		designerService: deps.DesignerService,
		authService:     deps.AuthService,
		tokens:          deps.Tokens,
		states:          deps.States,
		oauthConfig:     deps.OAuthConfig,
		frontendURL:     deps.FrontendURL,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()
	requireAuth := middleware.JWTMiddleware(r.tokens)

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	assessHandler := planetHandlers.NewAssessHandler(r.planetService)
	liveHandler := planetHandlers.NewLiveHandler(r.planetService, r.frontendURL)
	designHandler := planetHandlers.NewDesignHandler(r.planetService)
	meHandler := designerHandlers.NewMeHandler(r.designerService)

	githubAuthHandler := authHandlers.NewOAuthHandler(
		r.oauthConfig.GitHubProvider,
		r.states,
		r.authService,
		r.frontendURL,
		r.oauthConfig.GitHubConfigured,
	)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)
	mux.HandleFunc("/api/catalog", planetHandlers.Catalog)
	mux.HandleFunc("/api/presets", planetHandlers.Presets)
	mux.HandleFunc("/api/presets/{id}/assessment", assessHandler.AssessPreset)
	mux.HandleFunc("/api/assess", assessHandler.Assess)
	mux.Handle("/api/assess/live", liveHandler)

	// Protected endpoints
	mux.Handle("/api/designers/me", requireAuth(meHandler))
	mux.Handle("/api/designs", requireAuth(http.HandlerFunc(designHandler.Collection)))
	mux.Handle("/api/designs/{id}", requireAuth(http.HandlerFunc(designHandler.Item)))

	// OAuth endpoints
	mux.HandleFunc("/auth/github", githubAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/github/callback", githubAuthHandler.HandleCallback)
	mux.HandleFunc("/auth/logout", authHandlers.Logout)

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/catalog", "/api/presets", "/api/presets/{id}/assessment", "/api/assess", "/api/assess/live"},
		"protected_endpoints", []string{"/api/designers/me", "/api/designs", "/api/designs/{id}"},
		"auth_endpoints", []string{"/auth/github", "/auth/logout"},
	)

	return mux
}
