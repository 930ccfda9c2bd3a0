package reco

import (
	"context"
	"testing"
	"time"

	"salesreco/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerts_UnseenAlertsTakeTheFirstSlots(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(
			sale("n2", 0.9), sale("n1", 0.8), sale("a", 0.5), sale("al", 0.2),
		),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco:     domain.SalesList{Top: ids("a")},
		},
		Alerts: domain.Alerts(ids("al")),
	}}
	engine := NewAlertsEngine(repo, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("a", "n1", "n2", "al"))

	require.NoError(t, err)
	// The alerted sale jumps the score ranking but the top keeps its size.
	assert.Equal(t, ids("al", "n2", "n1"), listing.Top)
	assert.Equal(t, ids("a"), listing.Bottom)
	assert.Equal(t, 1, repo.saveCount())
}

func TestAlerts_AlreadySeenAlertIsNotReinjected(t *testing.T) {
	state := &domain.SalesRecommendation{
		LastTime: time.Now().UTC().Add(-time.Hour),
		Reco:     domain.SalesList{Top: ids("a")},
	}
	catalog := catalogOf(sale("n1", 0.9), sale("a", 0.5))
	ongoing := ids("a", "n1")

	withAlert := &fakeStateRepo{res: FetchResult{
		Catalog: catalog, State: state, Alerts: domain.Alerts(ids("a")),
	}}
	without := &fakeStateRepo{res: FetchResult{Catalog: catalog, State: state}}

	alerted, err := NewAlertsEngine(withAlert, DefaultConfig()).Recommend(context.Background(), "u1", ongoing)
	require.NoError(t, err)
	plain, err := NewAlertsEngine(without, DefaultConfig()).Recommend(context.Background(), "u1", ongoing)
	require.NoError(t, err)

	assert.Equal(t, plain, alerted)
}

func TestAlerts_NotOngoingAlertIsIgnored(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("n1", 0.9), sale("a", 0.5)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco:     domain.SalesList{Top: ids("a")},
		},
		Alerts: domain.Alerts(ids("gone")),
	}}
	engine := NewAlertsEngine(repo, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("a", "n1"))

	require.NoError(t, err)
	assert.NotContains(t, listing.Top, domain.SaleID("gone"))
	assert.NotContains(t, listing.Bottom, domain.SaleID("gone"))
}

func TestAlerts_PassThroughDoesNotWrite(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("a", 0.9), sale("b", 0.8)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco:     domain.SalesList{Top: ids("a", "b")},
		},
		Alerts: domain.Alerts(ids("a")),
	}}
	engine := NewAlertsEngine(repo, DefaultConfig())

	_, err := engine.Recommend(context.Background(), "u1", ids("a", "b"))

	require.NoError(t, err)
	assert.Equal(t, 0, repo.saveCount())
}

func TestAlerts_AlwaysRefreshWritesEvenOnPassThrough(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AlertsAlwaysRefresh = true
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("a", 0.9)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco:     domain.SalesList{Top: ids("a")},
		},
	}}
	engine := NewAlertsEngine(repo, cfg)

	_, err := engine.Recommend(context.Background(), "u1", ids("a"))

	require.NoError(t, err)
	assert.Equal(t, 1, repo.saveCount())
}
