package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// balanceColumn maps a wallet bucket name to its column. Buckets are a
// closed set; anything else is a programming error.
func balanceColumn(bucket string) (string, error) {
	switch bucket {
	case models.BucketTotal:
		return "total_balance", nil
	case models.BucketInvested:
		return "invested_balance", nil
	case models.BucketProfit:
		return "profit_balance", nil
	}
	return "", fmt.Errorf("unknown wallet bucket: %s", bucket)
}

// WalletWriterRepository handles wallet write operations
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// GetOrCreate performs an UPSERT: creates an empty wallet if the user
// has none yet, and returns the current row either way.
func (r *WalletWriterRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, total_balance, invested_balance, profit_balance, currency, created_at, updated_at)
		VALUES ($1, $2, 0, 0, 0, $3, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET updated_at = wallets.updated_at
		RETURNING wallet_id, user_id, total_balance, invested_balance, profit_balance, currency, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, models.USD)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// LockForUpdate reads the wallet row under a row-level lock. Must run
// inside the request transaction; the lock serializes all concurrent
// mutations for the same user until commit.
func (r *WalletWriterRepository) LockForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, total_balance, invested_balance, profit_balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallet,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit increases a balance bucket and returns the new value.
func (r *WalletWriterRepository) Credit(ctx context.Context, userID uuid.UUID, bucket string, amount float64) (float64, error) {
	column, err := balanceColumn(bucket)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE wallets
		SET %s = %s + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING %s
	`, column, column, column)

	var balance float64
	err = sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bucket, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases a balance bucket in a single conditional statement.
// Returns sql.ErrNoRows when the bucket would go negative, so a failed
// debit never mutates the row.
func (r *WalletWriterRepository) Debit(ctx context.Context, userID uuid.UUID, bucket string, amount float64) (float64, error) {
	column, err := balanceColumn(bucket)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`
		UPDATE wallets
		SET %s = %s - $2, updated_at = NOW()
		WHERE user_id = $1 AND %s >= $2
		RETURNING %s
	`, column, column, column, column)

	var balance float64
	err = sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bucket, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// WalletReaderRepository handles wallet read operations
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByUserID retrieves the wallet of a given user. Returns nil without
// error when the user has no wallet yet.
func (r *WalletReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, total_balance, invested_balance, profit_balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", wallets,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, nil
	}
	return &wallets[0], nil
}
