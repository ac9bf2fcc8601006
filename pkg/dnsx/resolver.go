// Package dnsx defines the resolver abstraction used to collect DNS records
// for registered domains. Wire-level resolution is delegated to the standard
// resolver; this package only normalizes its answers into plain string
// sequences.
package dnsx

import (
	"context"
	"net"
)

// Resolver answers the three record lookups the registration probe performs.
//
//go:generate mockgen -package mockdnsx -source=resolver.go -destination=mock/mockdnsx.go *
type Resolver interface {
	// LookupA returns the IPv4/IPv6 addresses the domain resolves to.
	LookupA(ctx context.Context, domain string) ([]string, error)
	// LookupMX returns the mail exchanger hosts for the domain, in the
	// resolver's preference order.
	LookupMX(ctx context.Context, domain string) ([]string, error)
	// LookupTXT returns the TXT records of the domain.
	LookupTXT(ctx context.Context, domain string) ([]string, error)
}

// NetResolver implements Resolver on top of net.Resolver.
type NetResolver struct {
	resolver *net.Resolver
}

// NewNetResolver returns a NetResolver backed by the given net.Resolver, or
// the default resolver when nil.
func NewNetResolver(r *net.Resolver) *NetResolver {
	if r == nil {
		r = net.DefaultResolver
	}

	return &NetResolver{resolver: r}
}

// LookupA resolves host addresses for the domain.
func (n *NetResolver) LookupA(ctx context.Context, domain string) ([]string, error) {
	addrs, err := n.resolver.LookupHost(ctx, domain)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return addrs, nil
}

// LookupMX resolves mail exchanger hosts for the domain.
func (n *NetResolver) LookupMX(ctx context.Context, domain string) ([]string, error) {
	mxs, err := n.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make([]string, 0, len(mxs))
	for _, mx := range mxs {
		out = append(out, mx.Host)
	}

	return out, nil
}

// LookupTXT resolves TXT records for the domain.
func (n *NetResolver) LookupTXT(ctx context.Context, domain string) ([]string, error) {
	txts, err := n.resolver.LookupTXT(ctx, domain)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return txts, nil
}

// Ensure NetResolver conforms to the Resolver interface at compile time.
var _ Resolver = (*NetResolver)(nil)
