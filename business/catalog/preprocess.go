package catalog

import (
	"math"
	"strings"

	"salesreco/domain"
)

// categoryFeatures is the fixed category table; a sale's category is
// tokenised to its position here (1-based, the empty category taking
// slot 1). Unknown categories tokenise to 0.
var categoryFeatures = []string{
	"", "Accessoires", "Beauté", "Bibliothèque",
	"Bien-être", "Bijoux", "Buanderie", "Chambre",
	"Chaussant", "Chaussures", "Cuisine", "Cures",
	"Expériences", "Hygiène", "Kids", "Lingerie",
	"Maroquinerie", "Outdoor", "Prêt-à-porter",
	"Salon", "Soins", "Sportswear",
}

var categoryTokens = func() map[string]int {
	m := make(map[string]int, len(categoryFeatures))
	for i, c := range categoryFeatures {
		m[c] = i + 1
	}
	return m
}()

var accentReplacer = strings.NewReplacer(
	"à", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"î", "i", "ï", "i",
	"ô", "o", "ö", "o",
	"û", "u", "ü", "u", "ù", "u",
	"ç", "c",
)

// normaliseBadges flattens the raw badge text the way the trained
// model expects: lowercase ascii with spaces and hyphens collapsed to
// underscores.
func normaliseBadges(raw string) string {
	s := strings.ToLower(raw)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return accentReplacer.Replace(s)
}

// categoryToken maps a raw category name to its fixed token.
func categoryToken(category string) int {
	if token, ok := categoryTokens[category]; ok {
		return token
	}
	return 0
}

// log1p scales a raw commerce metric. The original pipeline also ran a
// fitted scaler over the result; that artefact belongs to model
// training and is applied by the NumericScaler hook when configured.
func log1p(v float64) float64 {
	return math.Log(v + 1)
}

// BuildSaleRecord preprocesses one raw sales row into the catalog
// record the engines consume.
func BuildSaleRecord(row domain.RawSale) domain.SaleRecord {
	badges := normaliseBadges(row.Badges)
	has := func(name string) int {
		if strings.Contains(badges, name) {
			return 1
		}
		return 0
	}

	return domain.SaleRecord{
		SaleID: domain.SaleID(row.SaleID),
		Brand:  row.Brand,
		Score:  row.Score,
		IsNew:  row.IsNew,

		LogDelta:           log1p(row.Delta),
		LogFollowers:       log1p(row.Followers),
		Conversion:         row.Conversion,
		LogRevenue:         log1p(row.Revenue),
		LogBrandAppearance: log1p(row.BrandAppearance),
		LogAvgPrice:        log1p(row.AvgPrice),

		Artisanal:             has("artisanal"),
		BCorporation:          has("b_corporation"),
		Bio:                   has("bio"),
		Biodegradable:         has("biodegradable"),
		CadeauIdeal:           has("cadeau_ideal"),
		ConceptOriginal:       has("concept_original"),
		Durable:               has("durable"),
		EcoFriendly:           has("eco_friendly"),
		ExcellentSurYuka:      has("excellent_sur_yuka"),
		ExclusiviteChoose:     has("exclusivite_choose"),
		FabricationALaDemande: has("fabrication_a_la_demande"),
		FaitMain:              has("fait_main"),
		GlutenFree:            has("gluten_free"),
		Iconique:              has("iconique"),
		Inclusive:             has("inclusive"),
		Innovation:            has("innovation"),
		MadeInEurope:          has("made_in_europe"),
		MadeInFrance:          has("made_in_france"),
		MadeInJapan:           has("madeinjapan"),
		Naturel:               has("naturel"),
		OekoTex:               has("oeko_tex"),
		Premium:               has("premium"),
		Recyclable:            has("recyclable"),
		SaintValentin:         has("saint_valentin"),
		SavoirFaire:           has("savoir_faire"),
		SecondeMain:           has("seconde_main"),
		SocialementEngagee:    has("socialement_engagee"),
		SerieLimitee:          has("serie_limitee"),
		Tendance:              has("tendance"),
		Upcycling:             has("upcycling"),
		Vegan:                 has("vegan"),
		Vintage:               has("vintage"),
		ZeroDechet:            has("zerodechet"),

		CategorySale: categoryToken(row.Category),
	}
}
