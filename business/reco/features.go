package reco

import "salesreco/domain"

// PredFeatureNames is the published prediction-feature order: every
// scoring row holds the 40 sale attributes followed by the 6 user
// attributes, in exactly this order. The scoring provider contract is
// written against this list.
var PredFeatureNames = []string{
	"log_delta", "log_followers", "conversion",
	"log_revenue", "log_brand_appearance", "log_avg_price",
	"artisanal", "b_corporation", "bio", "biodegradable",
	"cadeau_ideal", "concept_original", "durable",
	"eco_friendly", "excellent_sur_yuka", "exclusivite_choose",
	"fabrication_a_la_demande", "fait_main", "gluten_free",
	"iconique", "inclusive", "innovation", "made_in_europe",
	"made_in_france", "madeinjapan", "naturel", "oeko_tex",
	"premium", "recyclable", "saint_valentin", "savoir_faire",
	"seconde_main", "socialement_engagee", "serie_limitee",
	"tendance", "upcycling", "vegan", "vintage", "zerodechet",
	"category_sale",
	"log_monetary", "log_frequency", "log_recency",
	"category_1", "category_2", "category_3",
}

// scoringInput builds the feature matrix for the unseen sales, one row
// per catalog sale whose id is unseen, in catalog order. Returns the
// matrix and the sale ids aligned with its rows.
func scoringInput(sales []domain.SaleRecord, profile domain.UserProfile,
	unseen []domain.SaleID) ([][]float64, []domain.SaleID) {

	unseenSet := idSet(unseen)
	userRow := profile.FeatureRow()

	rows := make([][]float64, 0, len(unseen))
	ids := make([]domain.SaleID, 0, len(unseen))
	for _, s := range sales {
		if _, ok := unseenSet[s.SaleID]; !ok {
			continue
		}
		row := make([]float64, 0, len(PredFeatureNames))
		row = append(row, s.FeatureRow()...)
		row = append(row, userRow...)
		rows = append(rows, row)
		ids = append(ids, s.SaleID)
	}
	return rows, ids
}
