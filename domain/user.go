package domain

import "time"

// UserProfile holds the per-user RFM features used by the personalised
// ranking. The profile is owned and refreshed by an external pipeline;
// the engine only reads it.
type UserProfile struct {
	LogMonetary  float64 `json:"log_monetary"`
	LogFrequency float64 `json:"log_frequency"`
	LogRecency   float64 `json:"log_recency"`
	Category1    int     `json:"category_1"`
	Category2    int     `json:"category_2"`
	Category3    int     `json:"category_3"`
	UpdatedAt    string  `json:"updated_at"`
}

// FeatureRow returns the 6 user features in the published order.
// UpdatedAt is metadata and never fed to the scorer.
func (u UserProfile) FeatureRow() []float64 {
	return []float64{
		u.LogMonetary,
		u.LogFrequency,
		u.LogRecency,
		float64(u.Category1),
		float64(u.Category2),
		float64(u.Category3),
	}
}

// ColdStartProfile is the canonical all-zero profile used when a user
// has no stored profile yet.
func ColdStartProfile(now time.Time) UserProfile {
	return UserProfile{
		UpdatedAt: now.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}
