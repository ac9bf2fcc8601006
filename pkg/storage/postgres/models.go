package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"brandintel/pkg/domain"

	"github.com/google/uuid"
)

type PgTypoScan struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Domain string          `db:"domain"`
	Status string          `db:"status"`
	Result json.RawMessage `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgTypoScan) ToDomain() (*domain.TypoScan, error) {
	var result domain.TypoScanResult
	if err := json.Unmarshal(p.Result, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal scan result: %w", err)
	}

	return &domain.TypoScan{
		ID:        domain.ScanID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Domain:    p.Domain,
		Status:    domain.ScanStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgTypoScan) FromDomain(scan domain.TypoScan) error {
	result, err := json.Marshal(scan.Result)
	if err != nil {
		return fmt.Errorf("could not marshal scan result: %w", err)
	}

	*p = PgTypoScan{
		ID:       uuid.UUID(scan.ID),
		UserID:   uuid.UUID(scan.UserID),
		Domain:   scan.Domain,
		Status:   string(scan.Status),
		Result:   result,
		Attempts: scan.Attempts,
		LastError: sql.NullString{
			String: scan.LastError,
			Valid:  scan.LastError != "",
		},
		CreatedAt: scan.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  scan.UpdatedAt,
			Valid: !scan.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  scan.DeletedAt,
			Valid: !scan.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainScansToPg(scans []domain.TypoScan) ([]PgTypoScan, error) {
	out := make([]PgTypoScan, len(scans))
	for i := range out {
		if err := out[i].FromDomain(scans[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgScansToDomain(scans []PgTypoScan) ([]domain.TypoScan, error) {
	out := make([]domain.TypoScan, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgBrandReport struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Brand        string `db:"brand"`
	OriginalURL  string `db:"original_url"`
	SuspectedURL string `db:"suspected_url"`
	CaseID       string `db:"case_id"`
	Markdown     string `db:"markdown"`
	Filename     string `db:"filename"`

	Breakdown json.RawMessage `db:"breakdown"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgBrandReport) ToDomain() (*domain.BrandReport, error) {
	var breakdown domain.ScoreBreakdown
	if err := json.Unmarshal(p.Breakdown, &breakdown); err != nil {
		return nil, fmt.Errorf("could not unmarshal report breakdown: %w", err)
	}

	return &domain.BrandReport{
		ID:           domain.ReportID(p.ID),
		UserID:       domain.UserID(p.UserID),
		Brand:        p.Brand,
		OriginalURL:  p.OriginalURL,
		SuspectedURL: p.SuspectedURL,
		CaseID:       p.CaseID,
		Markdown:     p.Markdown,
		Filename:     p.Filename,
		Breakdown:    breakdown,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (p *PgBrandReport) FromDomain(report domain.BrandReport) error {
	breakdown, err := json.Marshal(report.Breakdown)
	if err != nil {
		return fmt.Errorf("could not marshal report breakdown: %w", err)
	}

	*p = PgBrandReport{
		ID:           uuid.UUID(report.ID),
		UserID:       uuid.UUID(report.UserID),
		Brand:        report.Brand,
		OriginalURL:  report.OriginalURL,
		SuspectedURL: report.SuspectedURL,
		CaseID:       report.CaseID,
		Markdown:     report.Markdown,
		Filename:     report.Filename,
		Breakdown:    breakdown,
		CreatedAt:    report.CreatedAt,
	}

	return nil
}
