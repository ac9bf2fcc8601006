package report

import (
	"context"
	"fmt"
	"strings"

	"brandintel/internal/scorer"
	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"
	"brandintel/pkg/storage"
)

// CreateInput is the client-supplied payload for a new report. Scoring and
// rendering are derived from it server-side.
type CreateInput struct {
	Brand        string
	OriginalURL  string
	SuspectedURL string

	Text               domain.TextEvidence
	Visual             domain.VisualEvidence
	AdditionalEvidence string
}

//go:generate mockgen -package mockreport -source=service.go -destination=mock/mockreport.go *
type Service interface {
	// Create validates the evidence, scores it, renders the markdown report,
	// and persists the result for the given user.
	Create(ctx context.Context, userID domain.UserID, in CreateInput) (*domain.BrandReport, error)
	// ReportByID fetches a previously created report. It returns a not-found
	// error when no matching report exists.
	ReportByID(ctx context.Context, userID domain.UserID, reportID domain.ReportID) (*domain.BrandReport, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage storage.Storage
	synth   *Synthesizer
}

// NewService constructs a Service backed by the given storage and synthesizer.
func NewService(storage storage.Storage, synth *Synthesizer) Service {
	return &service{
		storage: storage,
		synth:   synth,
	}
}

func (s service) Create(ctx context.Context, userID domain.UserID, in CreateInput) (*domain.BrandReport, error) {
	if strings.TrimSpace(in.Brand) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "brand is required")
	}
	if strings.TrimSpace(in.OriginalURL) == "" || strings.TrimSpace(in.SuspectedURL) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "original and suspected URLs are required")
	}

	signals := domain.Signals(in.Text, in.Visual)
	if err := scorer.Validate(signals); err != nil {
		return nil, err
	}

	rendered, err := s.synth.Render(Input{
		Brand:              in.Brand,
		OriginalURL:        in.OriginalURL,
		SuspectedURL:       in.SuspectedURL,
		Text:               in.Text,
		Visual:             in.Visual,
		AdditionalEvidence: in.AdditionalEvidence,
		Breakdown:          scorer.Score(signals),
	})
	if err != nil {
		return nil, fmt.Errorf("could not render report: %w", err)
	}
	rendered.UserID = userID

	stored, err := s.storage.StoreReport(ctx, rendered)
	if err != nil {
		return nil, fmt.Errorf("could not store report: %w", err)
	}

	return stored, nil
}

func (s service) ReportByID(ctx context.Context,
	userID domain.UserID,
	reportID domain.ReportID) (*domain.BrandReport, error) {
	res, err := s.storage.ReportByID(ctx, userID, reportID)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return res, nil
}
