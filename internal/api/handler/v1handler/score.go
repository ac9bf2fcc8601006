package v1handler

import (
	"net/http"

	"brandintel/internal/scorer"
	"brandintel/pkg/domain"
)

// ScoreResponse is the result of scoring a set of similarity signals: the
// full breakdown plus the evidence thresholds the methodology applies.
type ScoreResponse struct {
	Breakdown  domain.ScoreBreakdown     `json:"breakdown"`
	Thresholds domain.EvidenceThresholds `json:"thresholds"`
}

// ScoreEvidence scores the submitted similarity signals without rendering or
// persisting a report.
func (h *Handler) ScoreEvidence(w http.ResponseWriter, r *http.Request) {
	var signals domain.SimilaritySignals
	if err := decodeJSON(r, &signals); err != nil {
		writeError(w, r, err)

		return
	}
	if err := scorer.Validate(signals); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ScoreResponse{
		Breakdown:  scorer.Score(signals),
		Thresholds: domain.DefaultEvidenceThresholds(),
	})
}
