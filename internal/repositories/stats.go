package repositories

import (
	"context"
	"strings"

	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// StatsReaderRepository serves the read-only admin aggregates. All
// queries are pure functions of persisted state; no caching happens
// here.
type StatsReaderRepository struct {
	db *sqlx.DB
}

func NewStatsReaderRepository(db *sqlx.DB) *StatsReaderRepository {
	return &StatsReaderRepository{db: db}
}

// AdminStats returns the platform snapshot for the admin dashboard.
func (r *StatsReaderRepository) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users)                                                                   AS total_users,
			COALESCE((SELECT SUM(total_balance) FROM wallets), 0)                                          AS total_balance,
			COALESCE((SELECT SUM(invested_balance) FROM wallets), 0)                                       AS total_invested,
			COALESCE((SELECT SUM(profit_balance) FROM wallets), 0)                                         AS total_profit,
			(SELECT COUNT(*) FROM contracts WHERE status = 'active')                                       AS active_contracts,
			(SELECT COUNT(*) FROM transactions WHERE type = 'deposit' AND status = 'pending')              AS pending_deposits,
			(SELECT COUNT(*) FROM transactions WHERE type = 'withdrawal' AND status = 'pending')           AS pending_withdrawals,
			(SELECT COUNT(*) FROM contracts WHERE status = 'pending_refund')                               AS pending_refunds,
			COALESCE((SELECT SUM(total_profit_paid) FROM contracts), 0)                                    AS total_profit_paid,
			COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'deposit' AND status = 'completed'), 0)    AS completed_deposits,
			COALESCE((SELECT SUM(amount) FROM transactions WHERE type = 'withdrawal' AND status = 'completed'), 0) AS completed_withdrawals
	`

	var stats models.AdminStats
	err := r.db.GetContext(ctx, &stats, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", stats,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ProfitsByMonth aggregates posted profit rows by calendar month.
func (r *StatsReaderRepository) ProfitsByMonth(ctx context.Context) ([]models.MonthlyProfit, error) {
	const query = `
		SELECT to_char(paid_at, 'YYYY-MM') AS month,
		       COALESCE(SUM(amount), 0)    AS amount,
		       COUNT(*)                    AS count
		FROM profits
		GROUP BY 1
		ORDER BY 1
	`

	var rows []models.MonthlyProfit
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// CashFlowSummary aggregates completed deposits, withdrawals and
// refunds by calendar month.
func (r *StatsReaderRepository) CashFlowSummary(ctx context.Context) ([]models.CashFlowRow, error) {
	const query = `
		SELECT to_char(updated_at, 'YYYY-MM')                                          AS month,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0)                AS deposits,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)             AS withdrawals,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'refund'), 0)                 AS refunds,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0)
		         - COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)         AS net_flow
		FROM transactions
		WHERE status = 'completed'
		GROUP BY 1
		ORDER BY 1
	`

	var rows []models.CashFlowRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}
