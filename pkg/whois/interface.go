// Package whois defines the interface and data types used to check domain
// registration through WHOIS.
package whois

import (
	"context"
	"time"
)

// Record is the parsed registration state of a single domain.
type Record struct {
	// Domain is the fully qualified domain that was queried.
	Domain string
	// Registered reports whether the registry confirmed a registration. A
	// domain counts as registered only when a creation date was present in
	// the WHOIS response.
	Registered bool
	// CreationDate is the registration date, when the registry reported one
	// in a parseable form.
	CreationDate *time.Time
	// Registrar is the registrar name, when known.
	Registrar string
}

// Client is the abstraction for WHOIS lookups. Implementations query a WHOIS
// server and parse the response into a Record.
//
//go:generate mockgen -package mockwhois -source=interface.go -destination=mock/mockwhois.go *
type Client interface {
	// Lookup queries registration data for the given fully qualified domain.
	// An unregistered domain is a successful lookup with Registered=false,
	// not an error; errors indicate the answer could not be obtained.
	Lookup(ctx context.Context, domain string) (Record, error)
}
