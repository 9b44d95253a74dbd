package usecase

import "time"

const (
	// DefaultPageSize is the statement page size when the caller does
	// not specify one.
	DefaultPageSize = 25

	// MaxPageSize caps the statement page size.
	MaxPageSize = 200

	// StatementCacheTTL is how long a computed statement stays in the
	// cache. The source collections change rarely relative to reads,
	// and a stale statement is harmless for this window.
	StatementCacheTTL = 30 * time.Second
)
