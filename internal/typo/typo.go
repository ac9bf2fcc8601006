// Package typo generates single-edit typosquatting variants of a domain
// label. Generation is pure and stateless; any number of callers may use it
// concurrently.
package typo

import "sort"

// Variants returns the deduplicated set of single-edit mutations of the given
// label: every single-character deletion (empty results are discarded) and
// every adjacent-character transposition. The result is sorted so callers get
// a stable order; for a label of length n it contains at most 2n-1 entries.
//
// Labels of length 0 or 1 produce no variants. Insertion and
// keyboard-adjacency substitutions are intentionally not generated.
func Variants(label string) []string {
	set := make(map[string]struct{})

	chars := []rune(label)
	for i := range chars {
		variant := string(chars[:i]) + string(chars[i+1:])
		if variant != "" {
			set[variant] = struct{}{}
		}
	}

	for i := 0; i < len(chars)-1; i++ {
		swapped := make([]rune, len(chars))
		copy(swapped, chars)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		set[string(swapped)] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Split separates a domain into its first label and the remaining TLD suffix.
// "example.co.uk" yields ("example", "co.uk"); a bare label yields an empty
// suffix.
func Split(domain string) (base, tld string) {
	for i, r := range domain {
		if r == '.' {
			return domain[:i], domain[i+1:]
		}
	}

	return domain, ""
}

// Join reattaches a TLD suffix to a label, mirroring Split.
func Join(label, tld string) string {
	if tld == "" {
		return label
	}

	return label + "." + tld
}
