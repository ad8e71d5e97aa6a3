package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lokapasar/internal/domain/entity"
)

// Client fetches the raw product list from the remote catalog service.
// Failures are not retried here; the catalog use case substitutes the
// fallback dataset instead.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) FetchCatalog(ctx context.Context) ([]entity.RawProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var raws []entity.RawProduct
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return raws, nil
}
