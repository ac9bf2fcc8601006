package storage

import (
	"context"

	"brandintel/pkg/domain"
)

// ReportStorage defines persistence operations for rendered brand
// infringement reports. Reports are immutable once stored.
type ReportStorage interface {
	// StoreReport inserts a report and returns the stored row as it exists in
	// the database (including generated fields such as ID and CreatedAt).
	StoreReport(ctx context.Context, report domain.BrandReport) (*domain.BrandReport, error)
	// ReportByID fetches a report by its ID for the given user. Returns nil
	// when not found.
	ReportByID(ctx context.Context, userID domain.UserID, ID domain.ReportID) (*domain.BrandReport, error)
}
