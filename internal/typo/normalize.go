package typo

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// NormalizeDomain returns a canonical representation of a domain string so
// scans for the same target de-duplicate.
//
// The normalization rules are intentionally strict:
//   - Accept either a bare domain or a URL; URLs are reduced to their host
//   - Lower-case the result
//   - Strip an explicit port and a trailing dot
//   - Strip a single leading "www." label
//
// An empty result after normalization is an error.
func NormalizeDomain(raw string) (string, error) {
	host := strings.TrimSpace(raw)

	if strings.Contains(host, "://") {
		u, err := url.Parse(host)
		if err != nil {
			return "", fmt.Errorf("could not parse domain: %w", err)
		}
		host = u.Host
	}

	// strip any path glued to a bare domain
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}

	host = strings.ToLower(host)

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	} // else: no explicit port

	host = strings.TrimSuffix(host, ".")
	host = strings.TrimPrefix(host, "www.")

	if host == "" {
		return "", fmt.Errorf("empty domain after normalization: %q", raw)
	}

	return host, nil
}
