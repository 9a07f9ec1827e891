package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/metrics"
	"github.com/baharkarakas/mindbank/internal/models"
	repo "github.com/baharkarakas/mindbank/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// Store loads and saves the user config, asset and rate-cache records.
// Missing or unreadable records are replaced by defaults; absence is never an
// error. Writes are serialised within the process only.
type Store struct {
	rec repo.Records
	log *slog.Logger
	now func() time.Time
	mu  sync.Mutex
}

func NewStore(rec repo.Records, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{rec: rec, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// ----------------- Config -----------------

func (s *Store) LoadConfig(ctx context.Context) (models.UserConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadRecord(ctx, s, repo.KeyUserConfig, models.DefaultConfig)
}

// SaveConfig merges the non-nil fields of p into the stored config and
// returns the full updated record.
func (s *Store) SaveConfig(ctx context.Context, p models.ConfigPatch) (models.UserConfig, error) {
	if err := ValidateConfigPatch(p); err != nil {
		return models.UserConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := loadRecord(ctx, s, repo.KeyUserConfig, models.DefaultConfig)
	if err != nil {
		return models.UserConfig{}, err
	}
	next := p.Apply(cur)
	next.UpdatedAt = s.now()
	if err := s.put(ctx, repo.KeyUserConfig, next); err != nil {
		return cur, apperr.Persistence("save_config", err)
	}
	s.log.InfoContext(ctx, "config saved",
		"monthly_salary", next.MonthlySalary.String(),
		"daily_goal_percentage", next.DailyGoalPercentage.String(),
	)
	return next, nil
}

// ----------------- Assets -----------------

func (s *Store) LoadAssets(ctx context.Context) (models.AssetRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadRecord(ctx, s, repo.KeyAssets, models.DefaultAssets)
}

func (s *Store) SaveAssets(ctx context.Context, p models.AssetPatch) (models.AssetRecord, error) {
	if err := ValidateAssetPatch(p); err != nil {
		return models.AssetRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := loadRecord(ctx, s, repo.KeyAssets, models.DefaultAssets)
	if err != nil {
		return models.AssetRecord{}, err
	}
	next := p.Apply(cur)
	next.UpdatedAt = s.now()
	if err := s.put(ctx, repo.KeyAssets, next); err != nil {
		return cur, apperr.Persistence("save_assets", err)
	}
	s.log.InfoContext(ctx, "assets saved")
	return next, nil
}

// Summary reports what has been configured and when it last changed.
func (s *Store) Summary(ctx context.Context) (models.DataSummary, error) {
	cfg, err := s.LoadConfig(ctx)
	if err != nil {
		return models.DataSummary{}, err
	}
	assets, err := s.LoadAssets(ctx)
	if err != nil {
		return models.DataSummary{}, err
	}
	return models.DataSummary{
		ConfigLastUpdated:       cfg.UpdatedAt,
		AssetsLastUpdated:       assets.UpdatedAt,
		MonthlySalaryConfigured: cfg.MonthlySalary.IsPositive(),
		AssetsConfigured:        assets.Configured(),
	}, nil
}

// ----------------- Rate cache -----------------

// LoadRate returns the persisted rate cache, or repo.ErrNotFound when there
// is no usable one.
func (s *Store) LoadRate(ctx context.Context) (models.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.rec.Get(ctx, repo.KeyExchangeRate)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.ExchangeRate{}, repo.ErrNotFound
		}
		metrics.PersistenceErrors.WithLabelValues("load_exchange_rate").Inc()
		return models.ExchangeRate{}, apperr.Persistence("load_exchange_rate", err)
	}
	var r models.ExchangeRate
	if err := json.Unmarshal(b, &r); err != nil || !r.Rate.IsPositive() {
		s.quarantine(ctx, repo.KeyExchangeRate)
		return models.ExchangeRate{}, repo.ErrNotFound
	}
	return r, nil
}

func (s *Store) SaveRate(ctx context.Context, r models.ExchangeRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.put(ctx, repo.KeyExchangeRate, r); err != nil {
		return apperr.Persistence("save_exchange_rate", err)
	}
	return nil
}

// ----------------- Helpers -----------------

func loadRecord[T any](ctx context.Context, s *Store, key string, defaults func(time.Time) T) (T, error) {
	var v T
	b, err := s.rec.Get(ctx, key)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return persistDefaults(ctx, s, key, defaults), nil
	case errors.Is(err, repo.ErrCorrupted):
		s.quarantine(ctx, key)
		return persistDefaults(ctx, s, key, defaults), nil
	case err != nil:
		metrics.PersistenceErrors.WithLabelValues("load_" + key).Inc()
		return v, apperr.Persistence("load_"+key, err)
	}

	if err := json.Unmarshal(b, &v); err != nil {
		s.log.WarnContext(ctx, "corrupted record, restoring defaults", "key", key, "error", err)
		s.quarantine(ctx, key)
		return persistDefaults(ctx, s, key, defaults), nil
	}
	return v, nil
}

// persistDefaults writes a fresh default record. A failed write is logged and
// the defaults are still served.
func persistDefaults[T any](ctx context.Context, s *Store, key string, defaults func(time.Time) T) T {
	v := defaults(s.now())
	if err := s.put(ctx, key, v); err != nil {
		s.log.ErrorContext(ctx, "failed to persist default record", "key", key, "error", err)
	}
	return v
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := s.rec.Put(ctx, key, b); err != nil {
		metrics.PersistenceErrors.WithLabelValues("save_" + key).Inc()
		return err
	}
	return nil
}

func (s *Store) quarantine(ctx context.Context, key string) {
	q, ok := s.rec.(repo.Quarantiner)
	if !ok {
		return
	}
	backup, err := q.Quarantine(ctx, key)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.log.ErrorContext(ctx, "failed to back up corrupted record", "key", key, "error", err)
		}
		return
	}
	s.log.WarnContext(ctx, "corrupted record backed up", "key", key, "backup", backup)
}
