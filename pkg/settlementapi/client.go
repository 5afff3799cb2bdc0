package settlementapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/huaydee/lotto-admin-backend/internal/models"
)

// Client represents a settlement service API client
type Client struct {
	BaseURL string
	APIKey  string
	MockAPI bool
	client  *http.Client
}

// NewClient creates a new settlement API client
func NewClient(baseURL, apiKey string, mockAPI bool) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		MockAPI: mockAPI,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type postResultPayload struct {
	LotteryProductID string `json:"lotteryProductId"`
	RoundDate        string `json:"roundDate"`
	Top3             string `json:"top3"`
	Bottom2          string `json:"bottom2"`
}

// PostResult submits a round result for settlement. The settlement side treats
// it as a replace: a result re-posted for the same round rolls back prior
// payouts and recomputes everything.
func (c *Client) PostResult(ctx context.Context, productID, roundDate, top3, bottom2 string) (*models.SettlementSummary, error) {
	if c.MockAPI {
		return c.mockPostResult()
	}

	payload := postResultPayload{
		LotteryProductID: productID,
		RoundDate:        roundDate,
		Top3:             top3,
		Bottom2:          bottom2,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/settlements", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("settlement service returned status %d", resp.StatusCode)
	}

	var summary models.SettlementSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode settlement summary: %w", err)
	}
	return &summary, nil
}

// mockPostResult mocks the settlement call for local development
func (c *Client) mockPostResult() (*models.SettlementSummary, error) {
	return &models.SettlementSummary{
		TotalTicketsProcessed: 0,
		TotalWinners:          0,
		TotalPayout:           0,
	}, nil
}
