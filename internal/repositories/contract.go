package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

const contractColumns = `contract_id, user_id, amount, monthly_rate, duration_months, months_paid, total_profit_paid, status, start_date, end_date, created_at, updated_at`

// ContractWriterRepository handles contract write operations
type ContractWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContractWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContractWriterRepository {
	return &ContractWriterRepository{db: db, txGetter: txGetter}
}

func (r *ContractWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new contract row and returns it.
func (r *ContractWriterRepository) Save(ctx context.Context, contract models.ContractDB) (*models.ContractDB, error) {
	query := `
		INSERT INTO contracts (contract_id, user_id, amount, monthly_rate, duration_months, months_paid, total_profit_paid, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $7, $8, NOW(), NOW())
		RETURNING ` + contractColumns
	args := []any{contract.ContractID, contract.UserID, contract.Amount, contract.MonthlyRate, contract.DurationMonths, contract.Status, contract.StartDate, contract.EndDate}

	var saved models.ContractDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.ContractID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Transition moves a contract between lifecycle states in a single
// conditional statement. Returns sql.ErrNoRows when the contract is not
// in one of the allowed source states.
func (r *ContractWriterRepository) Transition(ctx context.Context, contractID uuid.UUID, from []models.ContractStatus, to models.ContractStatus) (*models.ContractDB, error) {
	query := `
		UPDATE contracts
		SET status = $2, updated_at = NOW()
		WHERE contract_id = $1 AND status = ANY($3)
		RETURNING ` + contractColumns

	fromStr := make([]string, len(from))
	for i, s := range from {
		fromStr[i] = string(s)
	}
	args := []any{contractID, to, fromStr}

	var contract models.ContractDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &contract, query, contractID, to, fromStr)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", contract.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// ApplyAccrual advances months_paid and total_profit_paid on an active
// contract, completing it when the final month is paid. Returns
// sql.ErrNoRows when the contract is not active.
func (r *ContractWriterRepository) ApplyAccrual(ctx context.Context, contractID uuid.UUID, profitAmount float64) (*models.ContractDB, error) {
	query := `
		UPDATE contracts
		SET months_paid = months_paid + 1,
		    total_profit_paid = total_profit_paid + $2,
		    status = CASE WHEN months_paid + 1 >= duration_months THEN 'completed' ELSE status END,
		    updated_at = NOW()
		WHERE contract_id = $1 AND status = 'active'
		RETURNING ` + contractColumns
	args := []any{contractID, profitAmount}

	var contract models.ContractDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &contract, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", contract.MonthsPaid,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateFields applies an administrative override of mutable contract
// fields. Nil updates leave the column untouched.
func (r *ContractWriterRepository) UpdateFields(ctx context.Context, contractID uuid.UUID, monthlyRate *float64, durationMonths *int, status *models.ContractStatus) (*models.ContractDB, error) {
	query := `
		UPDATE contracts
		SET monthly_rate = COALESCE($2, monthly_rate),
		    duration_months = COALESCE($3, duration_months),
		    status = COALESCE($4, status),
		    end_date = start_date + COALESCE($3, duration_months) * INTERVAL '1 month',
		    updated_at = NOW()
		WHERE contract_id = $1
		RETURNING ` + contractColumns
	args := []any{contractID, monthlyRate, durationMonths, status}

	var contract models.ContractDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &contract, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", contract.ContractID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// ContractReaderRepository handles contract read operations
type ContractReaderRepository struct {
	db *sqlx.DB
}

func NewContractReaderRepository(db *sqlx.DB) *ContractReaderRepository {
	return &ContractReaderRepository{db: db}
}

// GetByID retrieves a single contract. Returns nil without error when
// no row exists.
func (r *ContractReaderRepository) GetByID(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE contract_id = $1
	`

	var contracts []models.ContractDB
	err := r.db.SelectContext(ctx, &contracts, query, contractID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contractID},
		"result", len(contracts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, nil
	}
	return &contracts[0], nil
}

// ListByUser retrieves all contracts of a user, newest first.
func (r *ContractReaderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ContractDB, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var contracts []models.ContractDB
	err := r.db.SelectContext(ctx, &contracts, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(contracts),
		"error", err,
	)

	return contracts, err
}

// ListDueForAccrual retrieves active contracts whose next unpaid
// monthly anniversary has passed as of the given time.
func (r *ContractReaderRepository) ListDueForAccrual(ctx context.Context, asOf time.Time) ([]models.ContractDB, error) {
	query := `
		SELECT ` + contractColumns + `
		FROM contracts
		WHERE status = 'active'
		  AND start_date + (months_paid + 1) * INTERVAL '1 month' <= $1
		ORDER BY start_date ASC
	`

	var contracts []models.ContractDB
	err := r.db.SelectContext(ctx, &contracts, query, asOf)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{asOf},
		"result", len(contracts),
		"error", err,
	)

	return contracts, err
}
