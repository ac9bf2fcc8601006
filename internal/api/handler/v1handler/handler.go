// Package v1handler implements the v1 HTTP API: JSON request decoding,
// bearer-token authentication and thin handlers delegating to the scan and
// report services.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"brandintel/internal/brandscan"
	"brandintel/internal/report"
	"brandintel/pkg/logger"
	"brandintel/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Deps holds the service dependencies the v1 handlers delegate to.
type Deps struct {
	Scans   brandscan.Service
	Reports report.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers all v1 endpoints on the given router. The router is
// expected to already enforce authentication.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/scans", h.CreateScan)
	r.Get("/scans", h.ListScans)
	r.Get("/scans/{scanID}", h.GetScan)
	r.Delete("/scans/{scanID}", h.DeleteScan)

	r.Post("/score", h.ScoreEvidence)

	r.Post("/reports", h.CreateReport)
	r.Get("/reports/{reportID}", h.GetReport)
}

// errorResponse is the JSON body returned for all error status codes.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps semantic error kinds to HTTP status codes. Unclassified
// errors become 500s with a generic body so internals do not leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), msg)
		msg = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not decode request body")
	}

	return nil
}
