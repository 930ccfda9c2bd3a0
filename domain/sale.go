package domain

import (
	"time"
)

// SaleID identifies a flash-sale campaign.
type SaleID string

// SaleRecord is one sale of the shared catalog together with the
// preprocessed feature attributes used for personalised scoring.
// Field order matters: FeatureRow emits the numeric attributes in
// exactly this order, which is the published prediction-feature order.
type SaleRecord struct {
	SaleID SaleID  `json:"sale_id"`
	Brand  string  `json:"brand"`
	Score  float64 `json:"score"`
	IsNew  bool    `json:"is_new"`

	LogDelta           float64 `json:"log_delta"`
	LogFollowers       float64 `json:"log_followers"`
	Conversion         float64 `json:"conversion"`
	LogRevenue         float64 `json:"log_revenue"`
	LogBrandAppearance float64 `json:"log_brand_appearance"`
	LogAvgPrice        float64 `json:"log_avg_price"`

	Artisanal             int `json:"artisanal"`
	BCorporation          int `json:"b_corporation"`
	Bio                   int `json:"bio"`
	Biodegradable         int `json:"biodegradable"`
	CadeauIdeal           int `json:"cadeau_ideal"`
	ConceptOriginal       int `json:"concept_original"`
	Durable               int `json:"durable"`
	EcoFriendly           int `json:"eco_friendly"`
	ExcellentSurYuka      int `json:"excellent_sur_yuka"`
	ExclusiviteChoose     int `json:"exclusivite_choose"`
	FabricationALaDemande int `json:"fabrication_a_la_demande"`
	FaitMain              int `json:"fait_main"`
	GlutenFree            int `json:"gluten_free"`
	Iconique              int `json:"iconique"`
	Inclusive             int `json:"inclusive"`
	Innovation            int `json:"innovation"`
	MadeInEurope          int `json:"made_in_europe"`
	MadeInFrance          int `json:"made_in_france"`
	MadeInJapan           int `json:"madeinjapan"`
	Naturel               int `json:"naturel"`
	OekoTex               int `json:"oeko_tex"`
	Premium               int `json:"premium"`
	Recyclable            int `json:"recyclable"`
	SaintValentin         int `json:"saint_valentin"`
	SavoirFaire           int `json:"savoir_faire"`
	SecondeMain           int `json:"seconde_main"`
	SocialementEngagee    int `json:"socialement_engagee"`
	SerieLimitee          int `json:"serie_limitee"`
	Tendance              int `json:"tendance"`
	Upcycling             int `json:"upcycling"`
	Vegan                 int `json:"vegan"`
	Vintage               int `json:"vintage"`
	ZeroDechet            int `json:"zerodechet"`

	CategorySale int `json:"category_sale"`
}

// FeatureRow returns the 40 scoring attributes of the sale in the
// published order (numeric metrics, badges, category token).
func (s SaleRecord) FeatureRow() []float64 {
	return []float64{
		s.LogDelta,
		s.LogFollowers,
		s.Conversion,
		s.LogRevenue,
		s.LogBrandAppearance,
		s.LogAvgPrice,
		float64(s.Artisanal),
		float64(s.BCorporation),
		float64(s.Bio),
		float64(s.Biodegradable),
		float64(s.CadeauIdeal),
		float64(s.ConceptOriginal),
		float64(s.Durable),
		float64(s.EcoFriendly),
		float64(s.ExcellentSurYuka),
		float64(s.ExclusiviteChoose),
		float64(s.FabricationALaDemande),
		float64(s.FaitMain),
		float64(s.GlutenFree),
		float64(s.Iconique),
		float64(s.Inclusive),
		float64(s.Innovation),
		float64(s.MadeInEurope),
		float64(s.MadeInFrance),
		float64(s.MadeInJapan),
		float64(s.Naturel),
		float64(s.OekoTex),
		float64(s.Premium),
		float64(s.Recyclable),
		float64(s.SaintValentin),
		float64(s.SavoirFaire),
		float64(s.SecondeMain),
		float64(s.SocialementEngagee),
		float64(s.SerieLimitee),
		float64(s.Tendance),
		float64(s.Upcycling),
		float64(s.Vegan),
		float64(s.Vintage),
		float64(s.ZeroDechet),
		float64(s.CategorySale),
	}
}

// Catalog is the shared ranked set of currently sellable sales. It is
// produced by the catalog publisher and read-only to the engine.
// Serialized under a single cache key as {"sales": [...], "updated_at": ...}.
type Catalog struct {
	Sales     []SaleRecord `json:"sales"`
	UpdatedAt time.Time    `json:"updated_at"`
}
