package services

import (
	"context"

	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
)

// StatsReader serves the read-only admin aggregates.
type StatsReader interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	ProfitsByMonth(ctx context.Context) ([]models.MonthlyProfit, error)
	CashFlowSummary(ctx context.Context) ([]models.CashFlowRow, error)
}

// LedgerReader reads the accounting journal.
type LedgerReader interface {
	List(ctx context.Context, limit, offset int) ([]models.AccountingEntryDB, error)
}

// StatsService exposes pull-based read queries over persisted state.
// There is no caching here; callers cache if they need to.
type StatsService struct {
	stats  StatsReader
	ledger LedgerReader
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats StatsReader, ledger LedgerReader) *StatsService {
	return &StatsService{stats: stats, ledger: ledger}
}

// AdminStats returns the platform snapshot.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := s.stats.AdminStats(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read admin stats", "error", err)
		return nil, err
	}
	return stats, nil
}

// ProfitsByMonth returns posted profit aggregated by calendar month.
func (s *StatsService) ProfitsByMonth(ctx context.Context) ([]models.MonthlyProfit, error) {
	rows, err := s.stats.ProfitsByMonth(ctx)
	if err != nil {
		logger.Log.Errorw("failed to aggregate profits by month", "error", err)
		return nil, err
	}
	return rows, nil
}

// CashFlowSummary returns completed money movement by calendar month.
func (s *StatsService) CashFlowSummary(ctx context.Context) ([]models.CashFlowRow, error) {
	rows, err := s.stats.CashFlowSummary(ctx)
	if err != nil {
		logger.Log.Errorw("failed to build cash flow summary", "error", err)
		return nil, err
	}
	return rows, nil
}

// Ledger returns journal entries for the grand ledger view.
func (s *StatsService) Ledger(ctx context.Context, limit, offset int) ([]models.AccountingEntryDB, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.ledger.List(ctx, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list ledger entries", "error", err)
		return nil, err
	}
	return entries, nil
}
