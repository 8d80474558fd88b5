package tonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"tonoffer/internal/models"
)

const (
	DefaultBaseURL = "https://tonapi.io/v2"

	tokenTON    = "ton"
	currencyUSD = "usd"
)

type ratesResponse struct {
	Rates map[string]tokenRates `json:"rates"`
}

type tokenRates struct {
	Prices  map[string]float64 `json:"prices"`
	Diff24h map[string]string  `json:"diff_24h"`
	Diff7d  map[string]string  `json:"diff_7d"`
	Diff30d map[string]string  `json:"diff_30d"`
}

// RatesClient is a TonAPI HTTP client for the rates endpoint.
type RatesClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewRatesClient(baseURL string) *RatesClient {
	return &RatesClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// TonRates fetches the current TON/USD rate snapshot.
func (c *RatesClient) TonRates(ctx context.Context) (*models.RateSnapshot, error) {
	url := fmt.Sprintf("%s/rates?tokens=%s&currencies=%s", c.baseURL, tokenTON, currencyUSD)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("rates API error %d: %s", resp.StatusCode, string(data))
	}

	var body ratesResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	token, ok := body.Rates["TON"]
	if !ok {
		return nil, fmt.Errorf("rates response has no TON entry")
	}
	usd, ok := token.Prices["USD"]
	if !ok {
		return nil, fmt.Errorf("TON rates have no USD price")
	}

	return &models.RateSnapshot{
		USDPrice:  usd,
		Diff24h:   token.Diff24h["USD"],
		Diff7d:    token.Diff7d["USD"],
		Diff30d:   token.Diff30d["USD"],
		FetchedAt: time.Now(),
	}, nil
}
