package brandscan

import (
	"context"

	"brandintel/pkg/domain"
)

// Prober checks typosquatting variants of a domain for active registrations.
// internal/probe provides the production implementation.
type Prober interface {
	Check(ctx context.Context, fqdn string) (domain.TypoScanResult, error)
}

//go:generate mockgen -package mockbrandscan -source=interface.go -destination=mock/mockbrandscan.go *
type Service interface {
	Enqueue(ctx context.Context, userID domain.UserID, domainName string) (*domain.TypoScan, error)
	UserScans(ctx context.Context,
		userID domain.UserID,
		status domain.ScanStatus,
		cursor string,
		limit uint) ([]domain.TypoScan, string, error)
	Result(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.TypoScan, error)
	Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error
	// Scan runs the registration probe for a domain and applies the outcome to
	// all pending scans of that domain. It is executed by the background worker.
	Scan(ctx context.Context, domainName string) error
}
