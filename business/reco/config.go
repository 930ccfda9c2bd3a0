package reco

import (
	"time"

	"salesreco/domain"
)

// DefaultSentinelID is the gift-card "choose" entry pinned to the end
// of the bottom list whenever it shows up.
const DefaultSentinelID domain.SaleID = "fcba9db5cae341cca6e6d3b7f"

const (
	defaultExpiration    = 4 * 24 * time.Hour
	defaultTopSalesCount = 2
)

type Config struct {
	// Expiration is both the cached-state TTL and the inactivity window
	// after which a returning user takes the reset branch.
	Expiration time.Duration

	// TopSalesCount is how many best-by-score sales lead the reset
	// listing, and the top size of the personalised cold start.
	TopSalesCount int

	SentinelID domain.SaleID

	// AlertsAlwaysRefresh restores the legacy behaviour of stamping
	// last_time on every alerts call, forcing a cache write even when
	// nothing changed.
	AlertsAlwaysRefresh bool

	// NormalisePassThrough re-applies the top-size merge on the
	// personalised no-unseen branch, matching the base engine.
	NormalisePassThrough bool

	// MalformedFallback falls back to cold-start defaults when a cached
	// per-user payload fails to parse, instead of failing the request.
	MalformedFallback bool
}

func DefaultConfig() Config {
	return Config{
		Expiration:        defaultExpiration,
		TopSalesCount:     defaultTopSalesCount,
		SentinelID:        DefaultSentinelID,
		MalformedFallback: true,
	}
}
