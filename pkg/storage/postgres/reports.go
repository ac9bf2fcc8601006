package postgres

import (
	"context"
	"fmt"

	"brandintel/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	brandReportsTable = "brand_reports"
)

// StoreReport inserts a rendered report and returns the stored row.
func (p *PgSQL) StoreReport(ctx context.Context, report domain.BrandReport) (*domain.BrandReport, error) {
	var pgReport PgBrandReport
	if err := pgReport.FromDomain(report); err != nil {
		return nil, err
	}

	var row PgBrandReport
	found, err := p.Builder.Insert(brandReportsTable).
		Rows(pgReport).
		Returning(&PgBrandReport{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store report into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store report into pg: no row returned")
	}

	return row.ToDomain()
}

// ReportByID returns a report by its ID for the given user, or nil when not found.
func (p *PgSQL) ReportByID(ctx context.Context,
	userID domain.UserID,
	id domain.ReportID) (*domain.BrandReport, error) {
	var row PgBrandReport
	found, err := p.Builder.From(brandReportsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch report by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
