package handlers

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/physics"
	"planet-builder/internal/preset"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

type CatalogResponse struct {
	Elements  []physics.ElementInfo `json:"elements"`
	StarTypes []physics.StarInfo    `json:"star_types"`
}

// Catalog serves the selectable elements and star types.
func Catalog(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "catalog")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	response.Success(w, http.StatusOK, CatalogResponse{
		Elements:  physics.Elements(),
		StarTypes: physics.StarTypes(),
	})
}

func Presets(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "presets")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	presets, err := preset.All()
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to load presets", err))
		return
	}

	response.Success(w, http.StatusOK, presets)
}
