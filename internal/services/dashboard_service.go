package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/finance"
	"github.com/baharkarakas/mindbank/internal/metrics"
	"github.com/baharkarakas/mindbank/internal/models"
)

// RateProvider resolves the USD->EUR rate. It never fails; on trouble it
// answers with a cached or fallback rate.
type RateProvider interface {
	Current(ctx context.Context) models.ExchangeRate
}

type DashboardService struct {
	store *Store
	rates RateProvider
	log   *slog.Logger
	now   func() time.Time
}

func NewDashboardService(store *Store, rates RateProvider, log *slog.Logger) *DashboardService {
	if log == nil {
		log = slog.Default()
	}
	return &DashboardService{store: store, rates: rates, log: log, now: time.Now}
}

// Dashboard reads both records and the current rate and recalculates the
// global position.
func (s *DashboardService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	assets, err := s.store.LoadAssets(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	return s.compute(ctx, cfg, assets), nil
}

func (s *DashboardService) UpdateConfig(ctx context.Context, p models.ConfigPatch) (models.Dashboard, error) {
	cfg, err := s.store.SaveConfig(ctx, p)
	if err != nil {
		return models.Dashboard{}, err
	}
	assets, err := s.store.LoadAssets(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	return s.compute(ctx, cfg, assets), nil
}

func (s *DashboardService) UpdateAssets(ctx context.Context, p models.AssetPatch) (models.Dashboard, error) {
	assets, err := s.store.SaveAssets(ctx, p)
	if err != nil {
		return models.Dashboard{}, err
	}
	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		return models.Dashboard{}, err
	}
	return s.compute(ctx, cfg, assets), nil
}

// SetDailyGoal persists the goal percentage and recalculates.
func (s *DashboardService) SetDailyGoal(ctx context.Context, goal decimal.Decimal) (models.Dashboard, error) {
	return s.UpdateConfig(ctx, models.ConfigPatch{DailyGoalPercentage: &goal})
}

type Breakdown struct {
	Assets finance.AssetBreakdown  `json:"assets"`
	Income finance.IncomeBreakdown `json:"income"`
	Month  finance.MonthProgress   `json:"month"`
	Rate   models.ExchangeRate     `json:"exchange_rate"`
}

// Breakdown details how the dashboard figures were derived.
func (s *DashboardService) Breakdown(ctx context.Context) (Breakdown, error) {
	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		return Breakdown{}, err
	}
	assets, err := s.store.LoadAssets(ctx)
	if err != nil {
		return Breakdown{}, err
	}
	rate := s.rates.Current(ctx)
	today := s.now()
	return Breakdown{
		Assets: finance.BreakdownAssets(assets, rate.Rate),
		Income: finance.BreakdownIncome(cfg.MonthlySalary, cfg.DailyGoalPercentage, today),
		Month:  finance.Progress(today),
		Rate:   rate,
	}, nil
}

func (s *DashboardService) Summary(ctx context.Context) (models.DataSummary, error) {
	return s.store.Summary(ctx)
}

func (s *DashboardService) compute(ctx context.Context, cfg models.UserConfig, assets models.AssetRecord) models.Dashboard {
	rate := s.rates.Current(ctx)
	today := s.now()

	realized := finance.RealizedIncome(cfg.MonthlySalary, today)
	potential := finance.PotentialIncome(cfg.MonthlySalary, cfg.DailyGoalPercentage, finance.DaysInMonth(today))
	total := finance.TotalAssets(assets, rate.Rate)

	metrics.Recalculations.Inc()
	s.log.DebugContext(ctx, "dashboard recalculated",
		"rate_source", string(rate.Source),
		"total_assets", total.StringFixed(2),
	)

	return models.Dashboard{
		Config:          cfg,
		Assets:          assets,
		RealizedIncome:  realized,
		PotentialIncome: potential,
		TotalAssets:     total,
		GlobalPosition:  finance.GlobalPosition(total, realized, potential),
		ExchangeRate:    rate,
		ComputedAt:      today,
	}
}
