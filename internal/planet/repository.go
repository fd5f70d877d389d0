package planet

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"planet-builder/internal/shared/database"
	"planet-builder/internal/shared/errors"

	"github.com/google/uuid"
)

type Repository struct {
	db     database.Executor
	logger *slog.Logger
}

func NewRepository(db database.Executor, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet design repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const designColumns = `id, owner_id, name, configuration, planet_type, total_score, created_at, updated_at`

func scanDesign(row interface{ Scan(...any) error }) (*Design, error) {
	var (
		d   Design
		raw []byte
	)
	err := row.Scan(
		&d.ID,
		&d.OwnerID,
		&d.Name,
		&raw,
		&d.PlanetType,
		&d.TotalScore,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &d.Configuration); err != nil {
		return nil, fmt.Errorf("failed to decode design configuration: %w", err)
	}
	return &d, nil
}

func (r *Repository) Create(ctx context.Context, d *Design) error {
	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "create_design",
		"design_id", d.ID,
		"owner_id", d.OwnerID,
	)

	configuration, err := json.Marshal(d.Configuration)
	if err != nil {
		return errors.WrapInternal("failed to encode design configuration", err)
	}

	query := `
		INSERT INTO planet_designs (id, owner_id, name, configuration, planet_type, total_score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.db.ExecContext(ctx, query,
		d.ID, d.OwnerID, d.Name, string(configuration), d.PlanetType, d.TotalScore, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		logger.Error("Failed to insert design", "error", err)
		return errors.WrapInternal("failed to create design", err)
	}

	logger.Debug("Design created")
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Design, error) {
	query := `SELECT ` + designColumns + ` FROM planet_designs WHERE id = $1`

	d, err := scanDesign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("design %s not found", id)
		}
		return nil, errors.WrapInternal("failed to get design", err)
	}
	return d, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID int) ([]Design, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "list_designs", "owner_id", ownerID)

	query := `
		SELECT ` + designColumns + `
		FROM planet_designs
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, errors.WrapInternal("failed to query designs", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	var designs []Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, errors.WrapInternal("failed to scan design", err)
		}
		designs = append(designs, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("error iterating designs", err)
	}

	logger.Debug("Designs retrieved", "count", len(designs))
	return designs, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM planet_designs WHERE id = $1`, id)
	if err != nil {
		return errors.WrapInternal("failed to delete design", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to confirm design deletion", err)
	}
	if affected == 0 {
		return errors.NotFoundf("design %s not found", id)
	}
	return nil
}
