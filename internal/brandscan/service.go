// Package brandscan coordinates typosquatting scans: it persists scan
// requests, enqueues background probe jobs, and applies probe results to all
// pending scans of a domain.
package brandscan

import (
	"context"
	"fmt"
	"time"

	"brandintel/internal/config"
	"brandintel/internal/typo"
	"brandintel/pkg/domain"
	"brandintel/pkg/serrors"
	"brandintel/pkg/storage"
)

// Options configure how scan jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a scan job before marking it failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed result makes new
	// scan requests for the same domain reuse that result instead of enqueueing
	// a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Scanner.MaxAttempts,
		ResultCacheTTL: cfg.Scanner.ResultCacheTTL,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer, job enqueueing, and the
// registration prober.
type service struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store scans and manage jobs.
	storage storage.Storage
	// prober performs the actual registration checks against WHOIS and DNS.
	prober Prober
}

// New constructs a Service backed by the given storage and prober.
func New(storage storage.Storage, prober Prober, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		prober:  prober,
	}
}

// Enqueue stores a new scan request for the given domain and user, and attempts
// to enqueue a background job to process it. If a recent completed result exists
// for the same domain (within ResultCacheTTL), the new scan is immediately marked
// as completed with that result.
func (s service) Enqueue(ctx context.Context, userID domain.UserID, domainName string) (*domain.TypoScan, error) {
	var scan *domain.TypoScan
	domainName, err := typo.NormalizeDomain(domainName)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain")
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreScans(ctx, domain.TypoScan{
			UserID: userID,
			Domain: domainName,
			Status: domain.ScanStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = &res[0]

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			Domain:          domainName,
			maxAttempts:     s.options.MaxAttempts,
			uniqueJobPeriod: s.options.ResultCacheTTL,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, it means that another job already exists for
		// this domain. river unique jobs prevent duplicate jobs per domain.
		if !jobAdded {
			// if the existing job is already completed, get its result from db
			// and update the new scan
			lastResult, err := tx.LastCompletedScanByDomain(ctx, domainName)
			if err != nil {
				return fmt.Errorf("could not get last completed scan: %w", err)
			}

			if lastResult != nil {
				updated, err := tx.UpdateScanByID(ctx, scan.ID, storage.ScanUpdates{
					Status: domain.ScanStatusCompleted,
					Result: &lastResult.Result,
				})
				if err != nil {
					return fmt.Errorf("could not update scan: %w", err)
				}
				scan = updated
			} // else: the job is in the queue and will be processed soon.
			// The job updates all pending scans by domain upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue domain: %w", err)
	}

	return scan, nil
}

// UserScans returns a page of scans for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s service) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor string,
	limit uint) ([]domain.TypoScan, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserScans(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user scans: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Scans, next, nil
}

// Result fetches a single scan by ID for the given user. It returns a
// not-found error when no matching scan exists.
func (s service) Result(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.TypoScan, error) {
	res, err := s.storage.ScanByID(ctx, userID, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan results: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return res, nil
}

// Delete removes a scan belonging to the given user. If the scan does not
// exist, a not-found error is returned. Jobs are not cancelled here because
// other pending scans may still depend on the same domain job.
func (s service) Delete(ctx context.Context, userID domain.UserID, scanID domain.ScanID) error {
	res, err := s.storage.DeleteScan(ctx, userID, scanID)
	if err != nil {
		return fmt.Errorf("could not delete scan: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return nil
}

// Scan runs the registration probe for a domain and applies the outcome to all
// pending scans of that domain. When no pending scans remain (e.g. all were
// deleted meanwhile), a conflict error is returned so the caller can cancel
// the job instead of burning a probe run.
func (s service) Scan(ctx context.Context, domainName string) error {
	count, err := s.storage.PendingScanCountByDomain(ctx, domainName)
	if err != nil {
		return fmt.Errorf("could not count pending scans: %w", err)
	}
	if count == 0 {
		return serrors.With(serrors.ErrConflict, "no pending scans for domain")
	}

	result, err := s.prober.Check(ctx, domainName)
	if err != nil {
		msg := err.Error()
		if uerr := s.storage.UpdatePendingScansByDomain(ctx, domainName, storage.ScanUpdates{
			Status:      domain.ScanStatusFailed,
			LastError:   &msg,
			MaxAttempts: s.options.MaxAttempts,
		}); uerr != nil {
			return fmt.Errorf("could not mark pending scans failed: %w", uerr)
		}

		return fmt.Errorf("could not probe domain: %w", err)
	}

	empty := ""
	if err := s.storage.UpdatePendingScansByDomain(ctx, domainName, storage.ScanUpdates{
		Status:    domain.ScanStatusCompleted,
		Result:    &result,
		LastError: &empty,
	}); err != nil {
		return fmt.Errorf("could not apply probe result: %w", err)
	}

	return nil
}
