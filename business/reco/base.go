package reco

import (
	"sort"
	"time"

	"salesreco/domain"
)

// Branch labels used for metrics and debug logging.
const (
	branchNoop         = "noop"
	branchReset        = "reset"
	branchSingleUnseen = "single_unseen"
	branchUnseenFirst  = "unseen_first"
	branchColdStart    = "cold_start"
	branchPersonalised = "personalised"
)

// buildBase computes the catalog-ranked recommendation. Pure given its
// inputs; the caller persists the result iff last_time moved.
func buildBase(ongoing []domain.SaleID, previous domain.SalesRecommendation,
	catalog domain.Catalog, now time.Time, cfg Config) (domain.SalesRecommendation, string) {

	sp := splitSales(ongoing, previous)

	if len(sp.unseen) == 0 {
		// Nothing new: keep the previous order, restricted to sales
		// still ongoing, and preserve the prior top-size ratio.
		return domain.SalesRecommendation{
			Reco: nToTop(
				keepIn(previous.Reco.Top, sp.seenTop),
				keepIn(previous.Reco.Bottom, sp.seenBottom),
				len(previous.Reco.Top),
			),
			LastTime: previous.LastTime,
		}, branchNoop
	}

	var (
		n       int
		listing []domain.SaleID
		branch  string
	)

	newVisitor := len(previous.Reco.Top) == 0 && len(previous.Reco.Bottom) == 0
	switch {
	case newVisitor || now.Sub(previous.LastTime) > cfg.Expiration:
		n, listing = resetListing(catalog, cfg.TopSalesCount)
		branch = branchReset
	case len(sp.unseen) == 1:
		n = len(sp.seenTop) + 1
		listing = scoreListing(catalog)
		branch = branchSingleUnseen
	default:
		n = len(sp.unseen)
		listing = scoreListing(catalog)
		branch = branchUnseenFirst
	}

	// Unseen sales first: those the catalog does not rank keep their
	// ongoing order, then the ranked ones in listing order.
	top := unseenFirst(sp.unseen, listing)

	// Previously shown sales sink to the bottom, former top before
	// former bottom, each keeping its internal order.
	previouslyShown := make([]domain.SaleID, 0,
		len(previous.Reco.Top)+len(previous.Reco.Bottom))
	previouslyShown = append(previouslyShown, previous.Reco.Top...)
	previouslyShown = append(previouslyShown, previous.Reco.Bottom...)
	bottom := keepIn(previouslyShown, sp.seen)

	top, bottom = endWithSentinel(top, bottom, cfg.SentinelID)

	return domain.SalesRecommendation{
		Reco:     nToTop(top, bottom, n),
		LastTime: now,
	}, branch
}

// resetListing is the curated ranking for brand-new or long-absent
// users: the two best-scored sales lead, then everything else with new
// sales first, deduplicated against the leaders. Returns the top cut
// size alongside: the leaders plus one slot per new sale.
func resetListing(catalog domain.Catalog, topCount int) (int, []domain.SaleID) {
	n := topCount
	for _, s := range catalog.Sales {
		if s.IsNew {
			n++
		}
	}

	byScore := make([]domain.SaleRecord, len(catalog.Sales))
	copy(byScore, catalog.Sales)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})
	if topCount > len(byScore) {
		topCount = len(byScore)
	}
	best := byScore[:topCount]

	others := make([]domain.SaleRecord, len(catalog.Sales))
	copy(others, catalog.Sales)
	sort.SliceStable(others, func(i, j int) bool {
		if others[i].IsNew != others[j].IsNew {
			return others[i].IsNew
		}
		return others[i].Score > others[j].Score
	})

	listing := make([]domain.SaleID, 0, len(catalog.Sales))
	leaders := make(map[domain.SaleID]struct{}, len(best))
	for _, s := range best {
		listing = append(listing, s.SaleID)
		leaders[s.SaleID] = struct{}{}
	}
	for _, s := range others {
		if _, ok := leaders[s.SaleID]; !ok {
			listing = append(listing, s.SaleID)
		}
	}
	return n, listing
}

// scoreListing ranks the full catalog by static score, descending.
func scoreListing(catalog domain.Catalog) []domain.SaleID {
	byScore := make([]domain.SaleRecord, len(catalog.Sales))
	copy(byScore, catalog.Sales)
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	listing := make([]domain.SaleID, 0, len(byScore))
	for _, s := range byScore {
		listing = append(listing, s.SaleID)
	}
	return listing
}

// unseenFirst orders the unseen sales: ids the ranking does not know
// keep their ongoing order and lead, then the ranked unseen ids follow
// in ranking order.
func unseenFirst(unseen []domain.SaleID, listing []domain.SaleID) []domain.SaleID {
	listed := idSet(listing)
	unseenSet := idSet(unseen)

	out := make([]domain.SaleID, 0, len(unseen))
	for _, s := range unseen {
		if _, ok := listed[s]; !ok {
			out = append(out, s)
		}
	}
	for _, s := range listing {
		if _, ok := unseenSet[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
