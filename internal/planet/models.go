package planet

import (
	"time"

	"planet-builder/internal/classification"
	"planet-builder/internal/habitability"

	"github.com/google/uuid"
)

// Configuration is the full set of inputs a designer controls.
type Configuration = classification.Parameters

type Assessment struct {
	Configuration  Configuration                 `json:"configuration"`
	Classification classification.Classification `json:"classification"`
	Explanation    classification.Explanation    `json:"explanation"`
	Habitability   habitability.Breakdown        `json:"habitability"`
}

// Design is a saved configuration. Its assessment is recomputed on read; planet type and
// total score are stored alongside for listings.
type Design struct {
	ID            uuid.UUID                 `json:"id"`
	OwnerID       int                       `json:"owner_id"`
	Name          string                    `json:"name"`
	Configuration Configuration             `json:"configuration"`
	PlanetType    classification.PlanetType `json:"planet_type"`
	TotalScore    int                       `json:"total_score"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

type DesignAssessment struct {
	Design
	Assessment *Assessment `json:"assessment"`
}

type CreateDesignRequest struct {
	Name          string        `json:"name"`
	Configuration Configuration `json:"configuration"`
}
