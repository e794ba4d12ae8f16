package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// fetchTimeout bounds a single rates request. Exceeding it is handled like
// any other fetch failure.
const fetchTimeout = 10 * time.Second

// ExchangeRateClient implements the adapter.RateProvider interface against an
// HTTP exchange-rate provider.
type ExchangeRateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewExchangeRateClient creates a new exchange-rate client instance.
func NewExchangeRateClient(baseURL string) *ExchangeRateClient {
	return &ExchangeRateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// latestRatesResponse is the provider's latest-rates payload.
type latestRatesResponse struct {
	Result          string                     `json:"result"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// FetchLatest retrieves the latest rates quoted against the given base currency.
func (c *ExchangeRateClient) FetchLatest(ctx context.Context, baseCurrency string) (*valueobject.RateSnapshot, error) {
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, baseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates request returned status %d", resp.StatusCode)
	}

	var body latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}

	if body.Result != "success" {
		return nil, fmt.Errorf("rates provider reported result %q", body.Result)
	}
	if len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("rates response contained no rates")
	}

	return &valueobject.RateSnapshot{
		BaseCurrency: baseCurrency,
		Rates:        body.ConversionRates,
		FetchedAt:    time.Now().UTC(),
		IsSuccess:    true,
	}, nil
}

var _ adapter.RateProvider = (*ExchangeRateClient)(nil)
