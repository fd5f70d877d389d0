package designer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"planet-builder/internal/shared/database"
	apperrors "planet-builder/internal/shared/errors"
)

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing designer repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const designerColumns = `id, username, email, display_name, avatar_url, created_at, updated_at`

func scanDesigner(row interface{ Scan(...any) error }) (*Designer, error) {
	var d Designer
	err := row.Scan(
		&d.ID,
		&d.Username,
		&d.Email,
		&d.DisplayName,
		&d.AvatarURL,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, username, email, displayName string, avatarURL *string) (*Designer, error) {
	logger := r.logger.With(
		"component", "designer_repository",
		"operation", "create",
		"username", username,
		"email", email,
	)
	logger.Info("Creating new designer")

	query := `
		INSERT INTO designers (username, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + designerColumns

	d, err := scanDesigner(r.db.QueryRowContext(ctx, query, username, email, displayName, avatarURL))
	if err != nil {
		logger.Error("Failed to create designer", "error", err)
		return nil, fmt.Errorf("failed to create designer: %w", err)
	}

	logger.Info("Designer created successfully", "designer_id", d.ID)
	return d, nil
}

// FindByEmail returns nil without an error when no designer uses email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Designer, error) {
	logger := r.logger.With("component", "designer_repository", "operation", "find_by_email", "email", email)
	logger.Debug("Finding designer by email")

	query := `SELECT ` + designerColumns + ` FROM designers WHERE email = $1`

	d, err := scanDesigner(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Debug("No designer found with email")
			return nil, nil
		}
		logger.Error("Database error finding designer by email", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	return d, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*Designer, error) {
	logger := r.logger.With("component", "designer_repository", "operation", "get_by_id", "designer_id", id)
	logger.Debug("Getting designer by ID")

	query := `SELECT ` + designerColumns + ` FROM designers WHERE id = $1`

	d, err := scanDesigner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("designer %d not found", id)
		}
		logger.Error("Database error getting designer by ID", "error", err)
		return nil, apperrors.WrapInternal("failed to get designer", err)
	}

	return d, nil
}
