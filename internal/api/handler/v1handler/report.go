package v1handler

import (
	"net/http"
	"time"

	"brandintel/internal/report"
	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateReportRequest is the payload for rendering a new brand report.
type CreateReportRequest struct {
	Brand        string `json:"brand"`
	OriginalURL  string `json:"originalUrl"`
	SuspectedURL string `json:"suspectedUrl"`

	Text               domain.TextEvidence   `json:"text"`
	Visual             domain.VisualEvidence `json:"visual"`
	AdditionalEvidence string                `json:"additionalEvidence,omitempty"`
}

// Report is the wire representation of a rendered brand report.
type Report struct {
	ID uuid.UUID `json:"id"`

	Brand        string `json:"brand"`
	OriginalURL  string `json:"originalUrl"`
	SuspectedURL string `json:"suspectedUrl"`

	CaseID   string `json:"caseId"`
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`

	Breakdown domain.ScoreBreakdown `json:"breakdown"`

	CreatedAt time.Time `json:"createdAt"`
}

func DomainReportToV1(in *domain.BrandReport) Report {
	return Report{
		ID:           uuid.UUID(in.ID),
		Brand:        in.Brand,
		OriginalURL:  in.OriginalURL,
		SuspectedURL: in.SuspectedURL,
		CaseID:       in.CaseID,
		Markdown:     in.Markdown,
		Filename:     in.Filename,
		Breakdown:    in.Breakdown,
		CreatedAt:    in.CreatedAt,
	}
}

// CreateReport scores the submitted evidence, renders the markdown report and
// persists it for the caller.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req CreateReportRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	rep, err := h.deps.Reports.Create(r.Context(), GetUserIDFromContext(r.Context()), report.CreateInput{
		Brand:              req.Brand,
		OriginalURL:        req.OriginalURL,
		SuspectedURL:       req.SuspectedURL,
		Text:               req.Text,
		Visual:             req.Visual,
		AdditionalEvidence: req.AdditionalEvidence,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainReportToV1(rep))
}

// GetReport returns a previously rendered report by ID.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid report id"))

		return
	}

	rep, err := h.deps.Reports.ReportByID(r.Context(), GetUserIDFromContext(r.Context()), domain.ReportID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, DomainReportToV1(rep))
}
