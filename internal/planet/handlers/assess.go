package handlers

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/planet"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

type AssessHandler struct {
	service *planet.Service
}

func NewAssessHandler(service *planet.Service) *AssessHandler {
	return &AssessHandler{service: service}
}

// Assess handles POST /api/assess with a configuration body.
func (h *AssessHandler) Assess(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "assess")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var cfg planet.Configuration
	if err := decodeJSON(w, r, &cfg); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	assessment, err := h.service.Assess(r.Context(), cfg)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, assessment)
}

func (h *AssessHandler) AssessPreset(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "assess_preset")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	assessment, err := h.service.AssessPreset(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, assessment)
}
