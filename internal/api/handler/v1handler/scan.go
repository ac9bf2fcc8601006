package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const DefaultLimit = 20

// CreateScanRequest is the payload for scheduling a new typosquatting scan.
type CreateScanRequest struct {
	// Domain is the target to scan; a bare domain or a URL whose host is used.
	Domain string `json:"domain"`
}

// Scan is the wire representation of a typosquatting scan.
type Scan struct {
	ID        uuid.UUID             `json:"id"`
	Domain    string                `json:"domain"`
	Status    domain.ScanStatus     `json:"status"`
	Result    domain.TypoScanResult `json:"result"`
	Attempts  uint                  `json:"attempts"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt *time.Time            `json:"updatedAt,omitempty"`
}

// ScanList is a single page of scans together with the cursor for the next one.
type ScanList struct {
	Items      []Scan `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func DomainScanToV1(in *domain.TypoScan) Scan {
	out := Scan{
		ID:        uuid.UUID(in.ID),
		Domain:    in.Domain,
		Status:    in.Status,
		Result:    in.Result,
		Attempts:  in.Attempts,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		updatedAt := in.UpdatedAt
		out.UpdatedAt = &updatedAt
	}

	return out
}

// CreateScan schedules a new scan based on the provided request payload.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req CreateScanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Scans.Enqueue(r.Context(), GetUserIDFromContext(r.Context()), req.Domain)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainScanToV1(s))
}

// ListScans returns a paginated list of the caller's scans, optionally
// filtered by status.
func (h *Handler) ListScans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := uint(DefaultLimit)
	if raw := q.Get("limit"); raw != "" {
		parsed, err := parseLimit(raw)
		if err != nil {
			writeError(w, r, err)

			return
		}
		limit = parsed
	}

	scans, nextCursor, err := h.deps.Scans.UserScans(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.ScanStatus(q.Get("status")),
		q.Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	items := make([]Scan, 0, len(scans))
	for i := range scans {
		items = append(items, DomainScanToV1(&scans[i]))
	}

	writeJSON(w, http.StatusOK, ScanList{Items: items, NextCursor: nextCursor})
}

// GetScan returns details of a scan by ID.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	scanID, err := parseScanID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	s, err := h.deps.Scans.Result(r.Context(), GetUserIDFromContext(r.Context()), scanID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainScanToV1(s))
}

// DeleteScan soft-deletes a scan by ID.
func (h *Handler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	scanID, err := parseScanID(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Scans.Delete(r.Context(), GetUserIDFromContext(r.Context()), scanID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseScanID(r *http.Request) (domain.ScanID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "scanID"))
	if err != nil {
		return domain.ScanID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id")
	}

	return domain.ScanID(id), nil
}

func parseLimit(raw string) (uint, error) {
	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit: %q", raw)
	}

	return uint(limit), nil
}
