package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dinheirorapido/loanledger/internal/domain"
)

const dashboardCacheKey = "reports:dashboard"

// ReportUseCase serves aggregate views over the portfolio.
type ReportUseCase struct {
	reportRepo ReportRepository
	cache      Cache
	cacheTTL   time.Duration
}

// NewReportUseCase creates a new ReportUseCase. A non-positive cacheTTL falls
// back to DashboardCacheTTL.
func NewReportUseCase(reportRepo ReportRepository, cache Cache, cacheTTL time.Duration) *ReportUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DashboardCacheTTL
	}

	return &ReportUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Dashboard returns the portfolio-wide aggregates. Results are cached
// briefly; the dashboard tolerates slightly stale numbers.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, dashboardCacheKey); err == nil && data != nil {
			var stats domain.DashboardStats
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := uc.reportRepo.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, dashboardCacheKey, data, uc.cacheTTL)
		}
	}

	return stats, nil
}

// LoanReport returns per-status counts and totals for loans matching the
// filter.
func (uc *ReportUseCase) LoanReport(ctx context.Context, filter domain.ReportFilter) (*domain.LoanReport, error) {
	return uc.reportRepo.LoanReport(ctx, filter)
}
