package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportID uniquely identifies a rendered brand report.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ReportID uuid.UUID

// BrandReport is a rendered brand protection analysis document together with
// the scoring outcome it embeds. It is immutable once rendered; persisting it
// is the storage layer's concern.
type BrandReport struct {
	// ID is the unique identifier of the report.
	ID ReportID `json:"id"`
	// UserID is the identifier of the user who requested the report.
	UserID UserID `json:"userId"`

	// Brand is the original brand name the analysis protects.
	Brand string `json:"brand"`
	// OriginalURL is the official site of the brand.
	OriginalURL string `json:"originalUrl"`
	// SuspectedURL is the site under analysis.
	SuspectedURL string `json:"suspectedUrl"`

	// CaseID is the report case identifier, derived from brand and timestamp.
	CaseID string `json:"caseId"`
	// Markdown is the full rendered report document.
	Markdown string `json:"markdown"`
	// Filename is the suggested filename for the document.
	Filename string `json:"filename"`

	// Breakdown is the evidence score breakdown embedded in the report.
	Breakdown ScoreBreakdown `json:"breakdown"`

	// CreatedAt is the time the report was rendered.
	CreatedAt time.Time `json:"createdAt"`
}
