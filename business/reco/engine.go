package reco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salesreco/domain"
	"salesreco/pkg/logger"
)

// ---- Repository interfaces ----

// FetchResult carries everything one pipelined cache round trip
// produced. Optional fields stay nil (or empty) when the variant does
// not request them or the user has no state yet.
type FetchResult struct {
	Catalog *domain.Catalog
	State   *domain.SalesRecommendation
	Alerts  domain.Alerts
	Profile *domain.UserProfile
}

// StateRepository is the cache port of the engine. Each Fetch* call is
// a single batched round trip; a missing per-user key comes back as a
// nil/empty field, never as an error. A missing or corrupt catalog is
// ErrCatalogUnavailable; an unparsable per-user value leaves its field
// nil and wraps ErrMalformedPayload so the engine can apply its policy.
type StateRepository interface {
	FetchBase(ctx context.Context, uid string) (FetchResult, error)
	FetchWithAlerts(ctx context.Context, uid string) (FetchResult, error)
	FetchWithProfile(ctx context.Context, uid string) (FetchResult, error)
	SaveRecommendation(ctx context.Context, uid string, rec domain.SalesRecommendation, ttl time.Duration) error
}

// Scorer predicts one score per feature row, same order, same count.
type Scorer interface {
	Predict(ctx context.Context, rows [][]float64) ([]float64, error)
}

// ---- Engine ----

type variantKind int

const (
	variantBase variantKind = iota
	variantAlerts
	variantPersonalised
)

func (v variantKind) String() string {
	switch v {
	case variantAlerts:
		return "alerts"
	case variantPersonalised:
		return "personalised"
	default:
		return "base"
	}
}

// Engine recomputes the per-user top/bottom sales listing on every
// visit. The three variants share the split/merge/sentinel machinery
// and differ only in how the unseen ranking is produced and what extra
// per-user context is merged in.
type Engine struct {
	states  StateRepository
	scorer  Scorer
	cfg     Config
	variant variantKind
}

// NewEngine creates the catalog-ranked engine.
func NewEngine(states StateRepository, cfg Config) *Engine {
	return &Engine{states: states, cfg: cfg, variant: variantBase}
}

// NewAlertsEngine creates the engine that injects unseen alerted sales
// at the head of the top list.
func NewAlertsEngine(states StateRepository, cfg Config) *Engine {
	return &Engine{states: states, cfg: cfg, variant: variantAlerts}
}

// NewPersonalisedEngine creates the engine that replaces the static
// catalog ranking with per-user predicted scores.
func NewPersonalisedEngine(states StateRepository, scorer Scorer, cfg Config) *Engine {
	return &Engine{states: states, scorer: scorer, cfg: cfg, variant: variantPersonalised}
}

// Recommend builds the listing of recommended sales for a user. The
// whole computation is a pure function of the fetched inputs; the
// cached state is replaced only when last_time moved, under the
// configured TTL. A failed cache write downgrades to a warning: the
// listing already computed is still correct and the next visit simply
// recomputes.
func (e *Engine) Recommend(ctx context.Context, uid string, ongoing []domain.SaleID) (domain.SalesList, error) {
	if err := ctx.Err(); err != nil {
		return domain.SalesList{}, fmt.Errorf("context error: %w", err)
	}

	res, err := e.fetch(ctx, uid)
	if err != nil {
		if !errors.Is(err, ErrMalformedPayload) || !e.cfg.MalformedFallback {
			return domain.SalesList{}, err
		}
		MalformedPayloadsTotal.WithLabelValues(e.variant.String()).Inc()
		logger.Warn("cached payload unreadable, using cold-start defaults",
			"user_id", uid, "error", err)
	}
	if res.Catalog == nil {
		return domain.SalesList{}, ErrCatalogUnavailable
	}

	previous := domain.SalesRecommendation{}
	if res.State != nil {
		previous = *res.State
	}

	now := time.Now().UTC()

	var (
		rec    domain.SalesRecommendation
		branch string
	)
	switch e.variant {
	case variantPersonalised:
		profile := domain.ColdStartProfile(now)
		if res.Profile != nil {
			profile = *res.Profile
		}
		rec, branch, err = e.buildPersonalised(ctx, ongoing, previous, *res.Catalog, profile, now)
		if err != nil {
			return domain.SalesList{}, err
		}
	case variantAlerts:
		base, baseBranch := buildBase(ongoing, previous, *res.Catalog, now, e.cfg)
		rec = injectAlerts(base, previous, ongoing, res.Alerts, now, e.cfg)
		branch = baseBranch
	default:
		rec, branch = buildBase(ongoing, previous, *res.Catalog, now, e.cfg)
	}

	logger.Debug("sales_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", uid,
		"variant", e.variant.String(),
		"branch", branch,
		"ongoing", len(ongoing),
		"top", len(rec.Reco.Top),
		"bottom", len(rec.Reco.Bottom),
	)
	RecommendationsTotal.WithLabelValues(e.variant.String(), branch).Inc()

	if !rec.LastTime.Equal(previous.LastTime) {
		if err := e.states.SaveRecommendation(ctx, uid, rec, e.cfg.Expiration); err != nil {
			CacheWriteFailuresTotal.Inc()
			logger.Warn("failed to persist recommendation",
				"user_id", uid, "error", err)
		}
	}

	return rec.Reco, nil
}

func (e *Engine) fetch(ctx context.Context, uid string) (FetchResult, error) {
	switch e.variant {
	case variantAlerts:
		return e.states.FetchWithAlerts(ctx, uid)
	case variantPersonalised:
		return e.states.FetchWithProfile(ctx, uid)
	default:
		return e.states.FetchBase(ctx, uid)
	}
}
