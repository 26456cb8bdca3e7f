package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS wallets (
			wallet_id UUID PRIMARY KEY,
			user_id UUID NOT NULL UNIQUE,
			total_balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			invested_balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			profit_balance NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			currency CHAR(3) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			type VARCHAR(20) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			currency CHAR(3) NOT NULL,
			status VARCHAR(20) NOT NULL,
			method VARCHAR(50),
			reference_id VARCHAR(255),
			description TEXT,
			reject_reason TEXT,
			proof_url TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS contracts (
			contract_id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			monthly_rate NUMERIC(8,4) NOT NULL,
			duration_months INT NOT NULL,
			months_paid INT NOT NULL DEFAULT 0,
			total_profit_paid NUMERIC(20,2) NOT NULL DEFAULT 0.0,
			status VARCHAR(20) NOT NULL,
			start_date TIMESTAMP NOT NULL,
			end_date TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS profits (
			profit_id UUID PRIMARY KEY,
			contract_id UUID NOT NULL,
			user_id UUID NOT NULL,
			month_number INT NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			paid_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (contract_id, month_number)
		);`,
		`CREATE TABLE IF NOT EXISTS accounting_entries (
			entry_id UUID PRIMARY KEY,
			reference_id UUID NOT NULL,
			debit_account VARCHAR(100) NOT NULL,
			credit_account VARCHAR(100) NOT NULL,
			amount NUMERIC(20,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			transaction_date TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(100) PRIMARY KEY,
			value VARCHAR(255) NOT NULL
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

// --- Helpers ---
func createUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	userID := uuid.New()
	_, err := db.Exec(`INSERT INTO users (user_id, username, email, password_hash) VALUES ($1, $2, $3, $4)`,
		userID, username, username+"@example.com", "password123")
	assert.NoError(t, err)
	return userID
}

func getBucket(t *testing.T, db *sqlx.DB, userID uuid.UUID, column string) float64 {
	var balance float64
	err := db.Get(&balance, fmt.Sprintf(`SELECT %s FROM wallets WHERE user_id=$1`, column), userID)
	assert.NoError(t, err)
	return balance
}

// --- GetOrCreate Tests ---
func TestWalletWriterRepository_GetOrCreate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "alice")
	writer := NewWalletWriterRepository(db, nil)

	wallet, err := writer.GetOrCreate(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, userID, wallet.UserID)
	assert.Equal(t, 0.0, wallet.TotalBalance)
	assert.Equal(t, models.USD, wallet.Currency)

	// Second call returns the same wallet instead of creating another.
	again, err := writer.GetOrCreate(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, wallet.WalletID, again.WalletID)

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM wallets WHERE user_id=$1`, userID))
	assert.Equal(t, 1, count)
}

// --- Credit / Debit Tests ---
func TestWalletWriterRepository_CreditDebit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "bob")
	writer := NewWalletWriterRepository(db, nil)

	_, err := writer.GetOrCreate(ctx, userID)
	assert.NoError(t, err)

	balance, err := writer.Credit(ctx, userID, models.BucketTotal, 200)
	assert.NoError(t, err)
	assert.Equal(t, 200.0, balance)

	balance, err = writer.Credit(ctx, userID, models.BucketProfit, 40)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, balance)
	assert.Equal(t, 200.0, getBucket(t, db, userID, "total_balance"))

	balance, err = writer.Debit(ctx, userID, models.BucketTotal, 80)
	assert.NoError(t, err)
	assert.Equal(t, 120.0, balance)

	// Overdraft affects zero rows and leaves the bucket untouched.
	_, err = writer.Debit(ctx, userID, models.BucketTotal, 500)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 120.0, getBucket(t, db, userID, "total_balance"))

	// Buckets are independent: the profit bucket kept its own balance.
	assert.Equal(t, 40.0, getBucket(t, db, userID, "profit_balance"))

	_, err = writer.Credit(ctx, userID, "bogus", 10)
	assert.Error(t, err)
}

// --- Concurrency Tests ---
func TestWalletWriterRepository_DebitConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "concurrent")
	writer := NewWalletWriterRepository(db, nil)

	_, err := writer.GetOrCreate(ctx, userID)
	assert.NoError(t, err)
	_, err = writer.Credit(ctx, userID, models.BucketProfit, 100)
	assert.NoError(t, err)

	// 200 concurrent debits of 1.0 against a balance of 100: exactly
	// 100 must succeed, the rest fail the guard.
	const numGoroutines = 200
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, _ = writer.Debit(ctx, userID, models.BucketProfit, 1.0)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0.0, getBucket(t, db, userID, "profit_balance"))
}

// --- WalletReaderRepository Tests ---
func TestWalletReaderRepository_GetByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "carol")
	writer := NewWalletWriterRepository(db, nil)
	reader := NewWalletReaderRepository(db)

	t.Run("unknown user has no wallet", func(t *testing.T) {
		wallet, err := reader.GetByUserID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, wallet)
	})

	t.Run("existing wallet is returned", func(t *testing.T) {
		_, err := writer.GetOrCreate(ctx, userID)
		assert.NoError(t, err)
		_, err = writer.Credit(ctx, userID, models.BucketInvested, 300)
		assert.NoError(t, err)

		wallet, err := reader.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 300.0, wallet.InvestedBalance)
	})
}
