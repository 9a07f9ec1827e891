// Package exchange resolves the USD->EUR rate from a public API, with a
// persisted cache and a static fallback.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://api.exchangerate-api.com"

var ErrNoRate = errors.New("response has no usable EUR rate")

// Fetcher returns the live USD->EUR rate.
type Fetcher interface {
	FetchUSDToEUR(ctx context.Context) (decimal.Decimal, error)
}

type latestResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Client talks to exchangerate-api.com style endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchUSDToEUR reads rates.EUR from GET {base}/v4/latest/USD, rounded to 4 digits.
func (c *Client) FetchUSDToEUR(ctx context.Context) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/v4/latest/USD", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("exchange api: unexpected status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("exchange api: decode: %w", err)
	}

	eur, ok := body.Rates["EUR"]
	if !ok || !eur.IsPositive() {
		return decimal.Zero, ErrNoRate
	}
	return eur.Round(4), nil
}
