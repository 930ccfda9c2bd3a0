package reco

import (
	"time"

	"salesreco/domain"
)

// injectAlerts places the user's unseen alerted sales at the head of
// the top list, keeping the top section the same size. Alerts the user
// has already been shown, or whose sale is no longer ongoing, are left
// where the base ranking put them.
func injectAlerts(base domain.SalesRecommendation, previous domain.SalesRecommendation,
	ongoing []domain.SaleID, alerts domain.Alerts, now time.Time, cfg Config) domain.SalesRecommendation {

	seenSales := make(map[domain.SaleID]struct{},
		len(previous.Reco.Top)+len(previous.Reco.Bottom))
	for _, s := range previous.Reco.Top {
		seenSales[s] = struct{}{}
	}
	for _, s := range previous.Reco.Bottom {
		seenSales[s] = struct{}{}
	}

	ongoingSet := idSet(ongoing)

	unseenAlerts := make([]domain.SaleID, 0, len(alerts))
	picked := make(map[domain.SaleID]struct{}, len(alerts))
	for _, a := range alerts {
		if _, ok := ongoingSet[a]; !ok {
			continue
		}
		if _, ok := seenSales[a]; ok {
			continue
		}
		if _, ok := picked[a]; ok {
			continue
		}
		picked[a] = struct{}{}
		unseenAlerts = append(unseenAlerts, a)
	}

	// Product rule: the top section keeps the size the base ranking
	// chose, alerts merely take its first slots.
	n := len(base.Reco.Top)

	allSales := make([]domain.SaleID, 0,
		len(base.Reco.Top)+len(base.Reco.Bottom))
	allSales = append(allSales, base.Reco.Top...)
	allSales = append(allSales, base.Reco.Bottom...)

	notAlerts := make([]domain.SaleID, 0, len(allSales))
	for _, s := range allSales {
		if _, ok := picked[s]; !ok {
			notAlerts = append(notAlerts, s)
		}
	}

	// An unseen alert is by definition an unseen sale, so whenever one
	// got injected the base build already stamped last_time. The legacy
	// flag forces a stamp (and thus a cache write) on every call.
	last := base.LastTime
	if cfg.AlertsAlwaysRefresh {
		last = now
	}

	return domain.SalesRecommendation{
		Reco:     nToTop(unseenAlerts, notAlerts, n),
		LastTime: last,
	}
}
