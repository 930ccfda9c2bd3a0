package redcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"salesreco/business/reco"
	"salesreco/domain"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogKey holds the serialized shared catalog. Written by the
	// catalog publisher, only read here.
	catalogKey = "sales_engine:model"

	userKeyFmt    = "reco:sales:%s"
	alertsKeyFmt  = "alerts:sales:%s"
	profileKeyFmt = "user:info:%s"
)

// RecoRepository implements the engine's cache port on Redis. Every
// fetch is one pipelined round trip.
type RecoRepository struct {
	client *redis.Client
}

func NewRecoRepository(client *redis.Client) *RecoRepository {
	return &RecoRepository{
		client: client,
	}
}

func (r *RecoRepository) FetchBase(ctx context.Context, uid string) (reco.FetchResult, error) {
	return r.fetch(ctx, uid, false, false)
}

func (r *RecoRepository) FetchWithAlerts(ctx context.Context, uid string) (reco.FetchResult, error) {
	return r.fetch(ctx, uid, true, false)
}

func (r *RecoRepository) FetchWithProfile(ctx context.Context, uid string) (reco.FetchResult, error) {
	return r.fetch(ctx, uid, false, true)
}

func (r *RecoRepository) fetch(ctx context.Context, uid string, withAlerts, withProfile bool) (reco.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return reco.FetchResult{}, fmt.Errorf("context error: %w", err)
	}

	pipe := r.client.Pipeline()
	catalogCmd := pipe.Get(ctx, catalogKey)
	stateCmd := pipe.Get(ctx, fmt.Sprintf(userKeyFmt, uid))

	var alertsCmd, profileCmd *redis.StringCmd
	if withAlerts {
		alertsCmd = pipe.Get(ctx, fmt.Sprintf(alertsKeyFmt, uid))
	}
	if withProfile {
		profileCmd = pipe.Get(ctx, fmt.Sprintf(profileKeyFmt, uid))
	}

	// Exec reports redis.Nil when any key is absent; absent per-user
	// keys are the cold-start default, so only real failures matter.
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return reco.FetchResult{}, fmt.Errorf("%w: %v", reco.ErrCatalogUnavailable, err)
	}

	var res reco.FetchResult

	raw, err := catalogCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return res, fmt.Errorf("%w: catalog key missing", reco.ErrCatalogUnavailable)
	}
	if err != nil {
		return res, fmt.Errorf("%w: %v", reco.ErrCatalogUnavailable, err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return res, fmt.Errorf("%w: unmarshal catalog: %v", reco.ErrCatalogUnavailable, err)
	}
	res.Catalog = &catalog

	var malformed error

	if raw, err := stateCmd.Bytes(); err == nil {
		var state domain.SalesRecommendation
		if err := json.Unmarshal(raw, &state); err != nil {
			malformed = fmt.Errorf("%w: user state: %v", reco.ErrMalformedPayload, err)
		} else {
			res.State = &state
		}
	} else if !errors.Is(err, redis.Nil) {
		return res, fmt.Errorf("failed to get cached recommendation: %w", err)
	}

	if alertsCmd != nil {
		if raw, err := alertsCmd.Bytes(); err == nil {
			var alerts domain.Alerts
			if err := json.Unmarshal(raw, &alerts); err != nil {
				malformed = fmt.Errorf("%w: alerts: %v", reco.ErrMalformedPayload, err)
			} else {
				res.Alerts = alerts
			}
		} else if !errors.Is(err, redis.Nil) {
			return res, fmt.Errorf("failed to get cached alerts: %w", err)
		}
	}

	if profileCmd != nil {
		if raw, err := profileCmd.Bytes(); err == nil {
			var profile domain.UserProfile
			if err := json.Unmarshal(raw, &profile); err != nil {
				malformed = fmt.Errorf("%w: user profile: %v", reco.ErrMalformedPayload, err)
			} else {
				res.Profile = &profile
			}
		} else if !errors.Is(err, redis.Nil) {
			return res, fmt.Errorf("failed to get cached profile: %w", err)
		}
	}

	return res, malformed
}

func (r *RecoRepository) SaveRecommendation(ctx context.Context, uid string, rec domain.SalesRecommendation, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	key := fmt.Sprintf(userKeyFmt, uid)
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store recommendation in Redis: %w", err)
	}

	return nil
}

// PublishCatalog replaces the shared catalog. Used by the catalog
// publisher; the key never expires, refreshes simply overwrite it.
func (r *RecoRepository) PublishCatalog(ctx context.Context, catalog domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := r.client.Set(ctx, catalogKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to store catalog in Redis: %w", err)
	}

	return nil
}
