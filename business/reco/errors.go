package reco

import "errors"

var (
	// ErrCatalogUnavailable means the shared catalog could not be read:
	// store unreachable, key missing, or payload corrupt. Fatal for the
	// request, no cache write is attempted.
	ErrCatalogUnavailable = errors.New("sales catalog unavailable")

	// ErrMalformedPayload means a cached per-user value was present but
	// failed to parse against its schema. Whether the engine falls back
	// to cold-start defaults or aborts is a config policy.
	ErrMalformedPayload = errors.New("malformed cached payload")

	// ErrScoring means the scoring provider failed or returned a row
	// count that does not match the input. Fatal for the request.
	ErrScoring = errors.New("scoring failure")
)
