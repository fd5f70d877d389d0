package response

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"planet-builder/internal/shared/errors"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		kind   string
	}{
		{errors.Validation("mass_earth must be positive"), http.StatusBadRequest, "validation"},
		{errors.NotFound("design not found"), http.StatusNotFound, "not_found"},
		{errors.Forbidden("not your design"), http.StatusForbidden, "forbidden"},
		{errors.Unauthorized("missing token"), http.StatusUnauthorized, "unauthorized"},
		{errors.MethodNotAllowed("PUT"), http.StatusMethodNotAllowed, "method_not_allowed"},
		{errors.RateLimited("rate limit exceeded"), http.StatusTooManyRequests, "rate_limited"},
		{errors.External("github unavailable"), http.StatusServiceUnavailable, "external"},
		{errors.Internal("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/assess", nil)

			Error(w, r, discard, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.kind, body.Error)
			assert.Equal(t, tt.status, body.Code)
			assert.Equal(t, tt.err.Error(), body.Message)
		})
	}
}

func TestErrorWithMessage(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/auth/github/callback", nil)

	ErrorWithMessage(w, r, discard, errors.WrapExternal("token exchange failed", io.ErrUnexpectedEOF), "Login failed")

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Login failed", body.Message)
}

func TestErrorLogsTraceID(t *testing.T) {
	traceID := trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     trace.SpanID{0, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	r := httptest.NewRequest(http.MethodPost, "/api/assess", nil)
	r = r.WithContext(trace.ContextWithSpanContext(r.Context(), sc))

	Error(httptest.NewRecorder(), r, logger, errors.Internal("boom"))

	assert.Contains(t, logs.String(), "trace_id="+traceID.String())
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())

	w = httptest.NewRecorder()
	Success(w, http.StatusNoContent, nil)
	assert.Empty(t, w.Body.String())
}

func TestSuccessUnencodableBody(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, http.StatusOK, map[string]float64{"temperature_kelvin": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "internal", body.Error)
	assert.Equal(t, http.StatusInternalServerError, body.Code)
}
