package domain

import "time"

// SalesList is an ordered listing of sale ids split into a top view
// and a bottom view. Once returned by the engine the two lists are
// disjoint and free of duplicates.
type SalesList struct {
	Top    []SaleID `json:"top"`
	Bottom []SaleID `json:"bottom"`
}

// SalesRecommendation is the cached per-user state: the listing served
// last plus the time of the last substantive recompute. It is replaced
// as a whole, never mutated in place.
type SalesRecommendation struct {
	LastTime time.Time `json:"last_time"`
	Reco     SalesList `json:"reco"`
}

// Alerts is the set of sale ids a user flagged for notification,
// in the order the user set them.
type Alerts []SaleID
