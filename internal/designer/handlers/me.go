package handlers

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/designer"
	"planet-builder/internal/middleware"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

type MeHandler struct {
	service *designer.Service
}

func NewMeHandler(service *designer.Service) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("no user claims found in context"))
		return
	}

	d, err := h.service.GetByID(r.Context(), claims.DesignerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, d)
}
