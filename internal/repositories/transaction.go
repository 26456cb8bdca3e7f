package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// TransactionWriterRepository handles transaction write operations
type TransactionWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Save inserts a new transaction row and returns it.
func (r *TransactionWriterRepository) Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (transaction_id, user_id, type, amount, currency, status, method, reference_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING transaction_id, user_id, type, amount, currency, status, method, reference_id, description, reject_reason, proof_url, created_at, updated_at
	`
	args := []any{txn.TransactionID, txn.UserID, txn.Type, txn.Amount, txn.Currency, txn.Status, txn.Method, txn.ReferenceID, txn.Description}

	var saved models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.TransactionID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Finalize moves a pending transaction to a terminal status in a single
// conditional statement. Returns sql.ErrNoRows when the row is not
// pending anymore, so terminal rows stay immutable.
func (r *TransactionWriterRepository) Finalize(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus, rejectReason, proofURL *string) (*models.TransactionDB, error) {
	query := `
		UPDATE transactions
		SET status = $2,
		    reject_reason = COALESCE($3, reject_reason),
		    proof_url = COALESCE($4, proof_url),
		    updated_at = NOW()
		WHERE transaction_id = $1 AND status = 'pending'
		RETURNING transaction_id, user_id, type, amount, currency, status, method, reference_id, description, reject_reason, proof_url, created_at, updated_at
	`
	args := []any{transactionID, status, rejectReason, proofURL}

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", txn.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// TransactionReaderRepository handles transaction read operations
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

// GetByID retrieves a single transaction. Returns nil without error
// when no row exists.
func (r *TransactionReaderRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, amount, currency, status, method, reference_id, description, reject_reason, proof_url, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, nil
	}
	return &txns[0], nil
}

// ListByUser retrieves all transactions of a user, newest first.
func (r *TransactionReaderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, amount, currency, status, method, reference_id, description, reject_reason, proof_url, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// ListPending retrieves pending transactions of a given type, oldest first.
func (r *TransactionReaderRepository) ListPending(ctx context.Context, txnType models.TransactionType) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, type, amount, currency, status, method, reference_id, description, reject_reason, proof_url, created_at, updated_at
		FROM transactions
		WHERE type = $1 AND status = 'pending'
		ORDER BY created_at ASC
	`

	var txns []models.TransactionDB
	err := r.db.SelectContext(ctx, &txns, query, txnType)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txnType},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
