package auth

import (
	"context"
	"fmt"
	"log/slog"

	"planet-builder/internal/auth/providers"
	"planet-builder/internal/designer"
	"planet-builder/internal/shared/errors"
)

type linkStore interface {
	CreateAuthProvider(ctx context.Context, designerID int, provider, providerUserID, providerEmail string) error
	FindDesignerByAuthProvider(ctx context.Context, provider, providerUserID string) (int, error)
}

type designerStore interface {
	GetByID(ctx context.Context, id int) (*designer.Designer, error)
	FindOrCreateByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*designer.Designer, error)
}

type Service struct {
	repo      linkStore
	designers designerStore
	tokens    *TokenIssuer
	logger    *slog.Logger
}

func NewService(repo linkStore, designers designerStore, tokens *TokenIssuer, logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")

	return &Service{
		repo:      repo,
		designers: designers,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login resolves the designer behind a provider account and issues a session token.
// Accounts seen for the first time are matched by email or registered, then linked.
func (s *Service) Login(ctx context.Context, provider string, user *providers.OAuthUser) (*designer.Designer, string, error) {
	logger := s.logger.With(
		"component", "auth_service",
		"operation", "login",
		"provider", provider,
		"provider_user_id", user.ID,
	)

	if user.Email == "" || !user.EmailVerified {
		return nil, "", errors.Unauthorized("a verified email address is required")
	}

	existingID, err := s.repo.FindDesignerByAuthProvider(ctx, provider, user.ID)
	if err != nil && errors.GetType(err) != errors.ErrorTypeNotFound {
		return nil, "", fmt.Errorf("failed to check auth provider: %w", err)
	}

	var d *designer.Designer
	if existingID > 0 {
		logger.Debug("Found existing designer via OAuth provider", "designer_id", existingID)
		d, err = s.designers.GetByID(ctx, existingID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to get linked designer: %w", err)
		}
	} else {
		var avatarURL *string
		if user.AvatarURL != "" {
			avatarURL = &user.AvatarURL
		}

		d, err = s.designers.FindOrCreateByOAuth(ctx, provider, user.Email, user.Name, avatarURL)
		if err != nil {
			return nil, "", err
		}

		if err := s.repo.CreateAuthProvider(ctx, d.ID, provider, user.ID, user.Email); err != nil {
			return nil, "", fmt.Errorf("failed to link auth provider: %w", err)
		}
		logger.Info("Linked OAuth provider to designer", "designer_id", d.ID)
	}

	token, err := s.tokens.Generate(d.ID, d.Username, d.Email)
	if err != nil {
		return nil, "", errors.WrapInternal("failed to generate session token", err)
	}

	logger.Info("Designer signed in", "designer_id", d.ID, "username", d.Username)
	return d, token, nil
}
