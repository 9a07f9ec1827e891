package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource tags where a served exchange rate came from.
type RateSource string

const (
	RateLive     RateSource = "live"
	RateCached   RateSource = "cached"
	RateFallback RateSource = "fallback"
)

// ExchangeRate is a USD->EUR multiplier. Rate is always positive.
type ExchangeRate struct {
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetched_at"`
	Source    RateSource      `json:"source"`
}

// RateState is the provider's position in UNFETCHED -> FETCHING -> {FRESH, STALE_CACHE, FALLBACK}.
type RateState string

const (
	RateUnfetched  RateState = "unfetched"
	RateFetching   RateState = "fetching"
	RateFresh      RateState = "fresh"
	RateStaleCache RateState = "stale_cache"
	RateFallbackSt RateState = "fallback"
)

// RateInfo describes the cached rate for diagnostics.
type RateInfo struct {
	Rate            decimal.Decimal `json:"rate"`
	Source          RateSource      `json:"source"`
	State           RateState       `json:"state"`
	LastUpdated     *time.Time      `json:"last_updated,omitempty"`
	CacheValid      bool            `json:"cache_valid"`
	CacheAgeMinutes int             `json:"cache_age_minutes"`
}
