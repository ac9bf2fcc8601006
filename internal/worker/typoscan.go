package worker

import (
	"context"
	"errors"
	"fmt"

	"brandintel/internal/brandscan"
	"brandintel/pkg/logger"
	"brandintel/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// TypoScanWorker is a River worker that probes typosquatting variants of a
// domain via the brandscan service. Concurrency against WHOIS and DNS servers
// is bounded inside the prober itself, so the worker stays a thin adapter
// between the job runtime and the service.
//
// Error handling: a conflict from the service means every pending scan for the
// domain was deleted while the job sat in the queue, so the job is canceled
// instead of retried. Other errors are logged and returned so River applies
// its retry policy up to the job's MaxAttempts.
type TypoScanWorker struct {
	river.WorkerDefaults[brandscan.JobArgs]

	// service runs the probe and applies results to pending scans.
	service brandscan.Service
}

// NewTypoScanWorker constructs a TypoScanWorker using the provided service.
func NewTypoScanWorker(service brandscan.Service) *TypoScanWorker {
	return &TypoScanWorker{
		service: service,
	}
}

// Work executes a single typo scan job.
func (w *TypoScanWorker) Work(ctx context.Context, job *river.Job[brandscan.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	if err := w.service.Scan(ctx, job.Args.Domain); err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in scanning domain", zap.Error(err))

		return fmt.Errorf("could not scan domain: %w", err)
	}

	logger.Info(ctx, "domain scanned successfully")

	return nil
}
