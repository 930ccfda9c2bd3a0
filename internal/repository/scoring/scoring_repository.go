package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"salesreco/business/reco"
)

type ScoringConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ScoringRepository calls the external regression service that turns a
// feature matrix into one predicted score per row.
type ScoringRepository struct {
	scoringConfig ScoringConfig
	client        *http.Client
}

func NewScoringRepository(cfg ScoringConfig) *ScoringRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &ScoringRepository{
		scoringConfig: cfg,
		client:        &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Rows [][]float64 `json:"rows"`
}

type predictResponse struct {
	Scores []float64 `json:"scores"`
}

func (r *ScoringRepository) Predict(ctx context.Context, rows [][]float64) ([]float64, error) {
	payload, err := json.Marshal(predictRequest{Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scoring payload: %w", err)
	}

	url := r.scoringConfig.BaseURL + "/v1/predict"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build scoring request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", reco.ErrScoring, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", reco.ErrScoring, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", reco.ErrScoring, resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unmarshal response: %v", reco.ErrScoring, err)
	}

	if len(parsed.Scores) != len(rows) {
		return nil, fmt.Errorf("%w: provider returned %d scores for %d rows",
			reco.ErrScoring, len(parsed.Scores), len(rows))
	}

	return parsed.Scores, nil
}
