// Package controller provides reusable HTTP middlewares and handlers shared by
// the API server: request-scoped logging, CORS, request metrics, and pprof.
package controller
