package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// ProfitWriterRepository handles profit write operations
type ProfitWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfitWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfitWriterRepository {
	return &ProfitWriterRepository{db: db, txGetter: txGetter}
}

func (r *ProfitWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a profit row for (contract, month). The unique index on
// (contract_id, month_number) makes accrual idempotent: a duplicate
// insert affects zero rows and Save reports inserted=false.
func (r *ProfitWriterRepository) Save(ctx context.Context, profit models.ProfitDB) (inserted bool, err error) {
	query := `
		INSERT INTO profits (profit_id, contract_id, user_id, month_number, amount, paid_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (contract_id, month_number) DO NOTHING
	`
	args := []any{profit.ProfitID, profit.ContractID, profit.UserID, profit.MonthNumber, profit.Amount}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ProfitReaderRepository handles profit read operations
type ProfitReaderRepository struct {
	db *sqlx.DB
}

func NewProfitReaderRepository(db *sqlx.DB) *ProfitReaderRepository {
	return &ProfitReaderRepository{db: db}
}

// ListByContract retrieves all accruals of a contract ordered by month.
func (r *ProfitReaderRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]models.ProfitDB, error) {
	const query = `
		SELECT profit_id, contract_id, user_id, month_number, amount, paid_at
		FROM profits
		WHERE contract_id = $1
		ORDER BY month_number ASC
	`

	var profits []models.ProfitDB
	err := r.db.SelectContext(ctx, &profits, query, contractID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contractID},
		"result", len(profits),
		"error", err,
	)

	return profits, err
}
