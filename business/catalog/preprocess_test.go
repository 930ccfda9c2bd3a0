package catalog

import (
	"math"
	"testing"

	"salesreco/domain"

	"github.com/stretchr/testify/assert"
)

func TestNormaliseBadges(t *testing.T) {
	assert.Equal(t, "eco_friendly,made_in_france", normaliseBadges("Eco-Friendly,Made in France"))
	assert.Equal(t, "serie_limitee", normaliseBadges("Série Limitée"))
	assert.Equal(t, "zerodechet", normaliseBadges("ZéroDéchet"))
}

func TestCategoryToken(t *testing.T) {
	assert.Equal(t, 1, categoryToken(""), "missing category takes the first slot")
	assert.Equal(t, 0, categoryToken("Jardinage"), "unknown category tokenises to zero")
	assert.NotZero(t, categoryToken("Beauté"))
	assert.NotEqual(t, categoryToken("Cuisine"), categoryToken("Kids"))
}

func TestBuildSaleRecord(t *testing.T) {
	rec := BuildSaleRecord(domain.RawSale{
		SaleID:          "abc",
		Brand:           "maison",
		Score:           0.87,
		IsNew:           true,
		Badges:          "Made in France,Vegan,Éco-Friendly",
		Category:        "Beauté",
		Delta:           3,
		Followers:       999,
		Conversion:      0.042,
		Revenue:         15000,
		BrandAppearance: 7,
		AvgPrice:        49,
	})

	assert.Equal(t, domain.SaleID("abc"), rec.SaleID)
	assert.True(t, rec.IsNew)
	assert.Equal(t, 1, rec.MadeInFrance)
	assert.Equal(t, 1, rec.Vegan)
	assert.Equal(t, 1, rec.EcoFriendly)
	assert.Equal(t, 0, rec.Bio)
	assert.Equal(t, categoryToken("Beauté"), rec.CategorySale)

	assert.InDelta(t, math.Log(4), rec.LogDelta, 1e-9)
	assert.InDelta(t, math.Log(1000), rec.LogFollowers, 1e-9)
	assert.InDelta(t, 0.042, rec.Conversion, 1e-9, "conversion is not log-scaled")
	assert.InDelta(t, math.Log(50), rec.LogAvgPrice, 1e-9)
}

func TestBuildSaleRecord_NoBadges(t *testing.T) {
	rec := BuildSaleRecord(domain.RawSale{SaleID: "x"})

	for i, v := range rec.FeatureRow()[6:39] {
		assert.Zero(t, v, "badge %d should be unset", i)
	}
}
