package reco

import (
	"context"
	"fmt"
	"sort"
	"time"

	"salesreco/domain"
)

// buildPersonalised computes the ML-ranked recommendation: the unseen
// sales are ordered by the score the regression model predicts for
// this user rather than by the shared catalog score.
func (e *Engine) buildPersonalised(ctx context.Context, ongoing []domain.SaleID,
	previous domain.SalesRecommendation, catalog domain.Catalog,
	profile domain.UserProfile, now time.Time) (domain.SalesRecommendation, string, error) {

	sp := splitSales(ongoing, previous)

	if len(sp.unseen) == 0 {
		top := keepIn(previous.Reco.Top, sp.seenTop)
		bottom := keepIn(previous.Reco.Bottom, sp.seenBottom)
		reco := domain.SalesList{Top: top, Bottom: bottom}
		if e.cfg.NormalisePassThrough {
			reco = nToTop(top, bottom, len(previous.Reco.Top))
		}
		return domain.SalesRecommendation{
			Reco:     reco,
			LastTime: previous.LastTime,
		}, branchNoop, nil
	}

	ranked, err := e.rankUnseen(ctx, catalog.Sales, profile, sp.unseen)
	if err != nil {
		return domain.SalesRecommendation{}, "", err
	}

	if len(sp.seen) == 0 {
		// Cold start: ranked unseen sales with the gift card closing
		// the listing, first TopSalesCount entries on top.
		listing := append(dropID(ranked, e.cfg.SentinelID), e.cfg.SentinelID)
		cut := e.cfg.TopSalesCount
		if cut > len(listing) {
			cut = len(listing)
		}
		return domain.SalesRecommendation{
			Reco: domain.SalesList{
				Top:    listing[:cut:cut],
				Bottom: listing[cut:],
			},
			LastTime: now,
		}, branchColdStart, nil
	}

	// Mixed: ranked unseen sales form the whole new top, previously
	// shown sales sink to the bottom with the gift card pinned last.
	previouslyShown := make([]domain.SaleID, 0,
		len(previous.Reco.Top)+len(previous.Reco.Bottom))
	previouslyShown = append(previouslyShown, previous.Reco.Top...)
	previouslyShown = append(previouslyShown, previous.Reco.Bottom...)

	bottom := dropID(keepIn(previouslyShown, sp.seen), e.cfg.SentinelID)
	bottom = append(bottom, e.cfg.SentinelID)

	return domain.SalesRecommendation{
		Reco: domain.SalesList{
			Top:    dropID(ranked, e.cfg.SentinelID),
			Bottom: bottom,
		},
		LastTime: now,
	}, branchPersonalised, nil
}

// rankUnseen scores the unseen sales with the scoring provider and
// returns their ids sorted by predicted score, descending. Sales the
// catalog holds no features for are silently absent, like in the
// catalog-ranked variant.
func (e *Engine) rankUnseen(ctx context.Context, sales []domain.SaleRecord,
	profile domain.UserProfile, unseen []domain.SaleID) ([]domain.SaleID, error) {

	rows, ids := scoringInput(sales, profile, unseen)
	if len(rows) == 0 {
		return nil, nil
	}

	scores, err := e.scorer.Predict(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScoring, err)
	}
	if len(scores) != len(ids) {
		return nil, fmt.Errorf("%w: provider returned %d scores for %d sales",
			ErrScoring, len(scores), len(ids))
	}

	type scoredSale struct {
		id    domain.SaleID
		score float64
	}
	scored := make([]scoredSale, len(ids))
	for i, id := range ids {
		scored[i] = scoredSale{id: id, score: scores[i]}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]domain.SaleID, len(scored))
	for i, s := range scored {
		ranked[i] = s.id
	}
	return ranked, nil
}
