package auth

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"

	"planet-builder/internal/shared/database"
	"planet-builder/internal/shared/errors"
)

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateAuthProvider(ctx context.Context, designerID int, provider, providerUserID, providerEmail string) error {
	query := `
		INSERT INTO designer_auth_providers (designer_id, provider, provider_user_id, provider_email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_user_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, designerID, provider, providerUserID, providerEmail); err != nil {
		return errors.WrapInternal("failed to create auth provider", err)
	}

	r.logger.Debug("Linked auth provider",
		"designer_id", designerID,
		"provider", provider)
	return nil
}

func (r *Repository) FindDesignerByAuthProvider(ctx context.Context, provider, providerUserID string) (int, error) {
	query := `
		SELECT designer_id
		FROM designer_auth_providers
		WHERE provider = $1 AND provider_user_id = $2
	`

	var designerID int
	err := r.db.QueryRowContext(ctx, query, provider, providerUserID).Scan(&designerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return 0, errors.NotFoundf("designer not found for auth provider: %s", provider)
		}
		return 0, errors.WrapInternal("failed to find designer by auth provider", err)
	}

	return designerID, nil
}
