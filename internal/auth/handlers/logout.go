package handlers

import (
	"log/slog"
	"net/http"

	"planet-builder/internal/shared/cookies"
	"planet-builder/internal/shared/errors"
	"planet-builder/internal/shared/response"
)

func Logout(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	cookies.ClearAuthCookie(w)
	logger.Debug("Designer signed out", "ip", r.RemoteAddr)
	response.Success(w, http.StatusNoContent, nil)
}
