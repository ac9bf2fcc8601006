// Package metrics holds shared Prometheus helpers.
package metrics

// DefaultBuckets is the latency histogram layout used by the HTTP request
// metrics, in seconds. It favors sub-second resolution since probe-backed
// requests are expected to answer from the database, not from live lookups.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
