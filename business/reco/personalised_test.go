package reco

import (
	"context"
	"fmt"
	"testing"
	"time"

	"salesreco/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScorer returns canned scores aligned with the rows it receives,
// in order, and keeps the rows for inspection.
type fakeScorer struct {
	scores  []float64
	err     error
	gotRows [][]float64
}

func (f *fakeScorer) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	f.gotRows = rows
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func TestPersonalised_ColdStartRanksByPrediction(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9), sale("s2", 0.8), sale("s3", 0.7)),
	}}
	scorer := &fakeScorer{scores: []float64{0.1, 0.9, 0.5}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("s1", "s2", "s3"))

	require.NoError(t, err)
	// Predicted order s2 > s3 > s1, gift card closes the listing.
	assert.Equal(t, ids("s2", "s3"), listing.Top)
	assert.Equal(t, append(ids("s1"), DefaultSentinelID), listing.Bottom)
	assert.Equal(t, 1, repo.saveCount())
}

func TestPersonalised_ColdStartSingleUnseenFillsTopWithSentinel(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9)),
	}}
	scorer := &fakeScorer{scores: []float64{0.5}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("s1"))

	require.NoError(t, err)
	// With one unseen sale the appended gift card fills the second top
	// slot; this is the one place it may surface on top.
	assert.Equal(t, append(ids("s1"), DefaultSentinelID), listing.Top)
	assert.Empty(t, listing.Bottom)
}

func TestPersonalised_ColdStartFeedsZeroProfile(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9), sale("s2", 0.8)),
	}}
	scorer := &fakeScorer{scores: []float64{0.2, 0.1}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	_, err := engine.Recommend(context.Background(), "u1", ids("s1", "s2"))

	require.NoError(t, err)
	require.Len(t, scorer.gotRows, 2)
	for _, row := range scorer.gotRows {
		require.Len(t, row, len(PredFeatureNames))
		for _, v := range row[len(row)-6:] {
			assert.Zero(t, v, "cold-start user features must be zero")
		}
	}
}

func TestPersonalised_StoredProfileFeedsTheRows(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9)),
		Profile: &domain.UserProfile{
			LogMonetary:  1.5,
			LogFrequency: 0.7,
			LogRecency:   2.1,
			Category1:    3,
			Category2:    11,
			Category3:    5,
		},
	}}
	scorer := &fakeScorer{scores: []float64{0.4}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	_, err := engine.Recommend(context.Background(), "u1", ids("s1"))

	require.NoError(t, err)
	require.Len(t, scorer.gotRows, 1)
	row := scorer.gotRows[0]
	assert.Equal(t, []float64{1.5, 0.7, 2.1, 3, 11, 5}, row[len(row)-6:])
}

func TestPersonalised_MixedSendsSeenToBottomWithSentinelLast(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("n1", 0.9), sale("n2", 0.8), sale("a", 0.5)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco:     domain.SalesList{Top: ids("a")},
		},
	}}
	scorer := &fakeScorer{scores: []float64{0.2, 0.8}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("a", "n1", "n2"))

	require.NoError(t, err)
	assert.Equal(t, ids("n2", "n1"), listing.Top)
	assert.Equal(t, append(ids("a"), DefaultSentinelID), listing.Bottom)
	assert.Equal(t, 1, repo.saveCount())
}

func TestPersonalised_PassThroughKeepsSourceShape(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("a", 0.9), sale("c", 0.7)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco: domain.SalesList{
				Top:    ids("a", "b"),
				Bottom: ids("c"),
			},
		},
	}}
	engine := NewPersonalisedEngine(repo, &fakeScorer{}, DefaultConfig())

	listing, err := engine.Recommend(context.Background(), "u1", ids("a", "c"))

	require.NoError(t, err)
	// Unlike the catalog-ranked engine this branch keeps the lists as
	// filtered, without pulling sales up to restore the top size.
	assert.Equal(t, ids("a"), listing.Top)
	assert.Equal(t, ids("c"), listing.Bottom)
	assert.Equal(t, 0, repo.saveCount())
}

func TestPersonalised_PassThroughNormalisationOptIn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NormalisePassThrough = true
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("a", 0.9), sale("c", 0.7)),
		State: &domain.SalesRecommendation{
			LastTime: time.Now().UTC().Add(-time.Hour),
			Reco: domain.SalesList{
				Top:    ids("a", "b"),
				Bottom: ids("c"),
			},
		},
	}}
	engine := NewPersonalisedEngine(repo, &fakeScorer{}, cfg)

	listing, err := engine.Recommend(context.Background(), "u1", ids("a", "c"))

	require.NoError(t, err)
	assert.Equal(t, ids("a", "c"), listing.Top)
	assert.Empty(t, listing.Bottom)
}

func TestPersonalised_ScorerFailureIsFatal(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9)),
	}}
	scorer := &fakeScorer{err: fmt.Errorf("provider timeout")}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	_, err := engine.Recommend(context.Background(), "u1", ids("s1"))

	assert.ErrorIs(t, err, ErrScoring)
	assert.Equal(t, 0, repo.saveCount())
}

func TestPersonalised_ScoreCountMismatchIsFatal(t *testing.T) {
	repo := &fakeStateRepo{res: FetchResult{
		Catalog: catalogOf(sale("s1", 0.9), sale("s2", 0.8)),
	}}
	scorer := &fakeScorer{scores: []float64{0.5}}
	engine := NewPersonalisedEngine(repo, scorer, DefaultConfig())

	_, err := engine.Recommend(context.Background(), "u1", ids("s1", "s2"))

	assert.ErrorIs(t, err, ErrScoring)
}

func TestPredFeatureNames_MatchesRowWidth(t *testing.T) {
	saleWidth := len(domain.SaleRecord{}.FeatureRow())
	userWidth := len(domain.UserProfile{}.FeatureRow())
	assert.Equal(t, len(PredFeatureNames), saleWidth+userWidth)
}
