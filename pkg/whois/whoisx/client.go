// Package whoisx provides a whois.Client implementation backed by the
// likexian whois client and parser.
package whoisx

import (
	"brandintel/pkg/serrors"
	"brandintel/pkg/whois"
	"context"
	"errors"
	"fmt"
	"time"

	likexian "github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// Client performs WHOIS lookups over the port-43 protocol and parses the
// registry responses. It is safe for concurrent use.
type Client struct {
	client *likexian.Client // client speaks the WHOIS wire protocol
	server string           // server optionally overrides per-TLD server selection
}

// New constructs a Client with the given per-query timeout. A non-empty
// server overrides the library's per-TLD WHOIS server selection.
func New(timeout time.Duration, server string) *Client {
	c := likexian.NewClient()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &Client{client: c, server: server}
}

// Lookup queries WHOIS for the given domain and parses the response.
//
// Semantics mirror the registration probe's needs: a response that parses to
// "no such domain" is a successful lookup with Registered=false. A domain is
// only considered registered when the response carries a creation date.
// Transport failures are reported as serrors.ErrUnavailable and context
// expiry as serrors.ErrTimeout.
func (c *Client) Lookup(ctx context.Context, domain string) (whois.Record, error) {
	type lookupRes struct {
		raw string
		err error
	}

	// the underlying client has no context support; run the query in a
	// goroutine so the caller's deadline is still honored
	resChan := make(chan lookupRes, 1)
	go func() {
		var servers []string
		if c.server != "" {
			servers = append(servers, c.server)
		}
		raw, err := c.client.Whois(domain, servers...)
		resChan <- lookupRes{raw: raw, err: err}
	}()

	var raw string
	select {
	case <-ctx.Done():
		return whois.Record{}, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "whois lookup for %s", domain)
	case res := <-resChan:
		if res.err != nil {
			return whois.Record{}, serrors.Wrap(serrors.ErrUnavailable, res.err, "whois lookup for %s", domain)
		}
		raw = res.raw
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		if errors.Is(err, whoisparser.ErrNotFoundDomain) {
			return whois.Record{Domain: domain}, nil
		}

		return whois.Record{}, fmt.Errorf("could not parse whois response for %s: %w", domain, err)
	}

	rec := whois.Record{Domain: domain}
	if parsed.Domain != nil && parsed.Domain.CreatedDate != "" {
		rec.Registered = true
		rec.CreationDate = parsed.Domain.CreatedDateInTime
	}
	if parsed.Registrar != nil {
		rec.Registrar = parsed.Registrar.Name
	}

	return rec, nil
}

// Ensure Client conforms to the whois.Client interface at compile time.
var _ whois.Client = (*Client)(nil)
