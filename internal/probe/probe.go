// Package probe checks typosquatting candidates for registration. For each
// single-edit variant of a domain it performs a WHOIS lookup and, only when
// the variant is registered, three independent DNS queries (A, MX, TXT).
//
// Lookups are embarrassingly parallel and run under a bounded worker pool
// with per-lookup timeouts. Failure isolation is the central contract: a
// failure or timeout on one candidate never aborts or delays its siblings and
// never fails the batch. A failed WHOIS lookup degrades that candidate to
// "not registered" and a failed DNS sub-query degrades to an empty record
// list for that record type only.
package probe

import (
	"brandintel/internal/config"
	"brandintel/internal/typo"
	"brandintel/pkg/dnsx"
	"brandintel/pkg/domain"
	"brandintel/pkg/logger"
	"brandintel/pkg/whois"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configure probe concurrency and timeouts.
type Options struct {
	// Concurrency bounds how many candidates are probed in parallel.
	Concurrency int
	// LookupTimeout applies to each single WHOIS or DNS query.
	LookupTimeout time.Duration
	// Deadline bounds a whole probe run. Candidates that cannot complete
	// before the deadline degrade to "not registered"; the run itself still
	// completes. Zero disables the deadline.
	Deadline time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency:   cfg.Probe.Concurrency,
		LookupTimeout: cfg.Probe.LookupTimeout,
		Deadline:      cfg.Probe.Deadline,
	}
}

// Prober runs registration probes. It holds no mutable state and is safe for
// concurrent use.
type Prober struct {
	whois   whois.Client
	dns     dnsx.Resolver
	options Options
}

// New creates a Prober using the given WHOIS client and DNS resolver.
func New(whoisClient whois.Client, resolver dnsx.Resolver, options Options) *Prober {
	if options.Concurrency <= 0 {
		options.Concurrency = 1
	}

	return &Prober{
		whois:   whoisClient,
		dns:     resolver,
		options: options,
	}
}

// Check generates all single-edit variants of the given domain, reattaches
// its TLD suffix and probes every candidate. The returned result lists every
// candidate checked and the subset confirmed registered, annotated with
// registrar, creation date and DNS records, in the stable variant order.
//
// An error is returned only when the caller's context ends before the probe
// finishes; the probe's own deadline instead degrades unfinished candidates.
func (p *Prober) Check(ctx context.Context, fqdn string) (domain.TypoScanResult, error) {
	base, tld := typo.Split(fqdn)

	variants := typo.Variants(base)
	candidates := make([]string, len(variants))
	for i, v := range variants {
		candidates[i] = typo.Join(v, tld)
	}

	result := domain.TypoScanResult{
		OriginalDomain:     fqdn,
		VariantsChecked:    candidates,
		RegisteredVariants: []domain.RegistrationRecord{},
	}

	probeCtx := ctx
	if p.options.Deadline > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.options.Deadline)
		defer cancel()
	}

	records := make([]domain.RegistrationRecord, len(candidates))

	g := &errgroup.Group{}
	g.SetLimit(p.options.Concurrency)
	for i, candidate := range candidates {
		g.Go(func() error {
			records[i] = p.checkCandidate(probeCtx, candidate)

			return nil
		})
	}
	// workers never return errors; failures degrade per candidate
	_ = g.Wait()

	for _, rec := range records {
		if rec.Registered {
			result.RegisteredVariants = append(result.RegisteredVariants, rec)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("probe interrupted: %w", err)
	}

	return result, nil
}

// checkCandidate probes a single domain. Any WHOIS failure degrades the
// candidate to "not registered" with the cause recorded in LookupError, so a
// transient failure stays auditable without poisoning the registered subset.
func (p *Prober) checkCandidate(ctx context.Context, candidate string) domain.RegistrationRecord {
	rec := domain.RegistrationRecord{
		Domain: candidate,
		DNS:    domain.DNSRecords{A: []string{}, MX: []string{}, TXT: []string{}},
	}

	lookupCtx, cancel := context.WithTimeout(ctx, p.options.LookupTimeout)
	defer cancel()

	w, err := p.whois.Lookup(lookupCtx, candidate)
	if err != nil {
		logger.Debug(ctx, "whois lookup degraded to not registered",
			zap.String("domain", candidate),
			zap.Error(err))
		rec.LookupError = err.Error()

		return rec
	}
	if !w.Registered {
		return rec
	}

	rec.Registered = true
	rec.CreationDate = w.CreationDate
	rec.Registrar = w.Registrar
	rec.DNS = p.collectDNS(ctx, candidate)

	return rec
}

// collectDNS performs the three record lookups independently; a failure on
// one record type yields an empty list for that type only.
func (p *Prober) collectDNS(ctx context.Context, candidate string) domain.DNSRecords {
	lookup := func(fn func(ctx context.Context, domain string) ([]string, error), kind string) []string {
		lookupCtx, cancel := context.WithTimeout(ctx, p.options.LookupTimeout)
		defer cancel()

		records, err := fn(lookupCtx, candidate)
		if err != nil {
			logger.Debug(ctx, "dns lookup degraded to empty record list",
				zap.String("domain", candidate),
				zap.String("recordType", kind),
				zap.Error(err))

			return []string{}
		}
		if records == nil {
			records = []string{}
		}

		return records
	}

	return domain.DNSRecords{
		A:   lookup(p.dns.LookupA, "A"),
		MX:  lookup(p.dns.LookupMX, "MX"),
		TXT: lookup(p.dns.LookupTXT, "TXT"),
	}
}
