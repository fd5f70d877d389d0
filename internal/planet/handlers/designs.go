package handlers

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/middleware"
	"planet-builder/internal/planet"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"

	"github.com/google/uuid"
)

type DesignHandler struct {
	service *planet.Service
}

func NewDesignHandler(service *planet.Service) *DesignHandler {
	return &DesignHandler{service: service}
}

// Collection handles /api/designs: GET lists the caller's designs, POST saves a new one.
func (h *DesignHandler) Collection(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "designs")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		designs, err := h.service.ListDesigns(r.Context(), claims.DesignerID)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, designs)

	case http.MethodPost:
		var req planet.CreateDesignRequest
		if err := decodeJSON(w, r, &req); err != nil {
			response.Error(w, r, logger, err)
			return
		}

		saved, err := h.service.SaveDesign(r.Context(), claims.DesignerID, req)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusCreated, saved)

	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

// Item handles /api/designs/{id}: GET returns the design with its assessment, DELETE removes it.
func (h *DesignHandler) Item(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "design")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid design ID format", err))
		return
	}

	switch r.Method {
	case http.MethodGet:
		design, err := h.service.GetDesign(r.Context(), claims.DesignerID, id)
		if err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusOK, design)

	case http.MethodDelete:
		if err := h.service.DeleteDesign(r.Context(), claims.DesignerID, id); err != nil {
			response.Error(w, r, logger, err)
			return
		}
		response.Success(w, http.StatusNoContent, nil)

	default:
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}
