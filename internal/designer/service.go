package designer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type store interface {
	Create(ctx context.Context, username, email, displayName string, avatarURL *string) (*Designer, error)
	FindByEmail(ctx context.Context, email string) (*Designer, error)
	GetByID(ctx context.Context, id int) (*Designer, error)
}

type Service struct {
	repo   store
	logger *slog.Logger
}

func NewService(repo store, logger *slog.Logger) *Service {
	logger.Debug("Initializing designer service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id int) (*Designer, error) {
	return s.repo.GetByID(ctx, id)
}

// FindOrCreateByOAuth returns the designer registered with email, creating one from the
// provider profile when there is none yet.
func (s *Service) FindOrCreateByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*Designer, error) {
	logger := s.logger.With(
		"component", "designer_service",
		"operation", "find_or_create_oauth",
		"provider", provider,
		"email", email,
	)
	logger.Debug("Finding or creating designer by OAuth")

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up designer: %w", err)
	}
	if existing != nil {
		logger.Info("Found existing designer by email", "designer_id", existing.ID)
		return existing, nil
	}

	username := usernameFromEmail(email)
	if displayName == "" {
		displayName = username
	}

	created, err := s.repo.Create(ctx, username, email, displayName, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create designer: %w", err)
	}

	logger.Info("Created designer from OAuth profile", "designer_id", created.ID, "username", created.Username)
	return created, nil
}

func usernameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return "designer"
}
