package exchange

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/metrics"
	"github.com/baharkarakas/mindbank/internal/models"
	repo "github.com/baharkarakas/mindbank/internal/repository"
)

const (
	DefaultTTL     = time.Hour
	DefaultTimeout = 5 * time.Second
)

// Cache persists the last live rate across restarts.
type Cache interface {
	LoadRate(ctx context.Context) (models.ExchangeRate, error)
	SaveRate(ctx context.Context, r models.ExchangeRate) error
}

// Submitter runs background jobs. Submit reports false when the job was not accepted.
type Submitter interface {
	Submit(f func()) bool
}

type Options struct {
	TTL      time.Duration
	Timeout  time.Duration
	Fallback decimal.Decimal
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if !o.Fallback.IsPositive() {
		o.Fallback = finance.FallbackRate
	}
	return o
}

// Provider serves the current rate. It never fails: live fetch errors are
// absorbed and answered with the cached rate or the fallback constant.
type Provider struct {
	fetch Fetcher
	cache Cache
	pool  Submitter
	log   *slog.Logger
	opts  Options
	now   func() time.Time

	mu    sync.Mutex
	last  *models.ExchangeRate // last successful live fetch
	state models.RateState

	loaded     atomic.Bool
	group      singleflight.Group
	refreshing atomic.Bool
}

func NewProvider(fetch Fetcher, cache Cache, pool Submitter, log *slog.Logger, opts Options) *Provider {
	if log == nil {
		log = slog.Default()
	}
	return &Provider{
		fetch: fetch,
		cache: cache,
		pool:  pool,
		log:   log,
		opts:  opts.withDefaults(),
		now:   time.Now,
		state: models.RateUnfetched,
	}
}

// Current returns a fresh cached rate, a stale cached rate while a background
// refresh runs, a live rate when nothing is cached, or the fallback.
func (p *Provider) Current(ctx context.Context) models.ExchangeRate {
	p.ensureLoaded(ctx)

	last := p.snapshot()
	if last == nil {
		if r, err := p.fetchLive(ctx); err == nil {
			return p.resolved(r)
		}
		return p.fallback()
	}

	if p.now().Sub(last.FetchedAt) < p.opts.TTL {
		p.setState(models.RateFresh)
		return p.resolved(asCached(*last))
	}

	p.setState(models.RateStaleCache)
	p.refreshInBackground()
	return p.resolved(asCached(*last))
}

// Refresh forces a live fetch. On failure it falls back like Current does.
func (p *Provider) Refresh(ctx context.Context) models.ExchangeRate {
	p.ensureLoaded(ctx)

	r, err := p.fetchLive(ctx)
	if err == nil {
		return p.resolved(r)
	}
	if last := p.snapshot(); last != nil {
		p.setState(models.RateStaleCache)
		return p.resolved(asCached(*last))
	}
	return p.fallback()
}

// Info describes the cache without triggering a fetch.
func (p *Provider) Info(ctx context.Context) models.RateInfo {
	p.ensureLoaded(ctx)

	p.mu.Lock()
	state := p.state
	last := p.last
	p.mu.Unlock()

	if last == nil {
		return models.RateInfo{
			Rate:   p.opts.Fallback,
			Source: models.RateFallback,
			State:  state,
		}
	}

	age := p.now().Sub(last.FetchedAt)
	if age < 0 {
		age = 0
	}
	fetchedAt := last.FetchedAt
	return models.RateInfo{
		Rate:            last.Rate,
		Source:          models.RateCached,
		State:           state,
		LastUpdated:     &fetchedAt,
		CacheValid:      age < p.opts.TTL,
		CacheAgeMinutes: int(age.Minutes()),
	}
}

// ensureLoaded reads the persisted cache once. A failed read is retried on the
// next call; a missing cache counts as loaded.
func (p *Provider) ensureLoaded(ctx context.Context) {
	if p.cache == nil || p.loaded.Load() {
		return
	}

	r, err := p.cache.LoadRate(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			p.loaded.Store(true)
			return
		}
		p.log.WarnContext(ctx, "could not load exchange rate cache", "error", err)
		return
	}

	p.mu.Lock()
	if p.last == nil {
		p.last = &r
	}
	p.mu.Unlock()
	p.loaded.Store(true)
	p.log.DebugContext(ctx, "exchange rate cache loaded", "rate", r.Rate.String(), "fetched_at", r.FetchedAt)
}

// fetchLive coalesces concurrent fetches into one upstream call.
func (p *Provider) fetchLive(ctx context.Context) (models.ExchangeRate, error) {
	v, err, _ := p.group.Do("usd_eur", func() (any, error) {
		p.setState(models.RateFetching)

		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.opts.Timeout)
		defer cancel()

		rate, err := p.fetch.FetchUSDToEUR(fctx)
		if err == nil && !rate.IsPositive() {
			err = ErrNoRate
		}
		if err != nil {
			metrics.RateFetchFailures.Inc()
			p.log.WarnContext(ctx, "live exchange rate unavailable", "error", apperr.RateFetch(err))
			p.restoreState()
			return nil, err
		}

		r := models.ExchangeRate{Rate: rate, FetchedAt: p.now(), Source: models.RateLive}
		p.mu.Lock()
		p.last = &r
		p.state = models.RateFresh
		p.mu.Unlock()

		if p.cache != nil {
			if err := p.cache.SaveRate(context.WithoutCancel(ctx), r); err != nil {
				p.log.ErrorContext(ctx, "could not persist exchange rate cache", "error", err)
			}
		}
		p.log.InfoContext(ctx, "exchange rate fetched", "rate", rate.String())
		return r, nil
	})
	if err != nil {
		return models.ExchangeRate{}, err
	}
	return v.(models.ExchangeRate), nil
}

func (p *Provider) refreshInBackground() {
	if !p.refreshing.CompareAndSwap(false, true) {
		return
	}
	job := func() {
		defer p.refreshing.Store(false)
		_, _ = p.fetchLive(context.Background())
	}
	if p.pool == nil {
		go job()
		return
	}
	if !p.pool.Submit(job) {
		p.refreshing.Store(false)
	}
}

// restoreState leaves FETCHING after a failed fetch.
func (p *Provider) restoreState() {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.last == nil:
		p.state = models.RateFallbackSt
	case p.now().Sub(p.last.FetchedAt) < p.opts.TTL:
		p.state = models.RateFresh
	default:
		p.state = models.RateStaleCache
	}
}

func (p *Provider) fallback() models.ExchangeRate {
	p.setState(models.RateFallbackSt)
	return p.resolved(models.ExchangeRate{
		Rate:      p.opts.Fallback,
		FetchedAt: p.now(),
		Source:    models.RateFallback,
	})
}

func (p *Provider) resolved(r models.ExchangeRate) models.ExchangeRate {
	metrics.RateResolutions.WithLabelValues(string(r.Source)).Inc()
	return r
}

func (p *Provider) snapshot() *models.ExchangeRate {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	r := *p.last
	return &r
}

func (p *Provider) setState(s models.RateState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func asCached(r models.ExchangeRate) models.ExchangeRate {
	r.Source = models.RateCached
	return r
}
