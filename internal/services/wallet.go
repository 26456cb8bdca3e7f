package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
)

// WalletWriter defines the wallet mutations used by the store.
type WalletWriter interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	LockForUpdate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	Credit(ctx context.Context, userID uuid.UUID, bucket string, amount float64) (float64, error)
	Debit(ctx context.Context, userID uuid.UUID, bucket string, amount float64) (float64, error)
}

// WalletReader defines wallet read operations.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// LedgerWriter appends double-entry journal rows.
type LedgerWriter interface {
	Record(ctx context.Context, entry models.AccountingEntryDB) error
}

// WalletService owns per-user balances. Every successful mutation is
// paired with exactly one accounting entry recorded in the same request
// transaction, so wallet and journal can never diverge.
type WalletService struct {
	writeRepo WalletWriter
	readRepo  WalletReader
	ledger    LedgerWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(writeRepo WalletWriter, readRepo WalletReader, ledger LedgerWriter) *WalletService {
	return &WalletService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		ledger:    ledger,
	}
}

// counterAccount returns the platform-side account balancing a user
// bucket mutation.
func counterAccount(bucket string) string {
	switch bucket {
	case models.BucketInvested:
		return models.AccountCapitalPool
	case models.BucketProfit:
		return models.AccountProfitExpense
	}
	return models.AccountCash
}

func userAccount(userID uuid.UUID, bucket string) string {
	switch bucket {
	case models.BucketInvested:
		return models.UserInvestedAccount(userID)
	case models.BucketProfit:
		return models.UserProfitAccount(userID)
	}
	return models.UserTotalAccount(userID)
}

// GetOrCreate returns the user's wallet, creating an empty one on first use.
func (s *WalletService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.writeRepo.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get or create wallet", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// Lock row-locks the wallet so that a multi-step mutation for the same
// user is serialized against concurrent ones until the request
// transaction commits.
func (s *WalletService) Lock(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.writeRepo.LockForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Log.Errorw("failed to lock wallet", "userID", userID, "error", err)
		return nil, err
	}
	return wallet, nil
}

// Credit increases a balance bucket and records the paired journal entry.
// referenceID groups the entry with the other legs of the same operation.
func (s *WalletService) Credit(ctx context.Context, userID uuid.UUID, bucket string, amount float64, referenceID uuid.UUID, description string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.writeRepo.Credit(ctx, userID, bucket, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit wallet", "userID", userID, "bucket", bucket, "amount", amount, "error", err)
		return 0, err
	}

	entry := models.AccountingEntryDB{
		EntryID:       uuid.New(),
		ReferenceID:   referenceID,
		DebitAccount:  counterAccount(bucket),
		CreditAccount: userAccount(userID, bucket),
		Amount:        amount,
		Description:   description,
	}
	if err := s.ledger.Record(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record ledger entry for credit", "userID", userID, "bucket", bucket, "error", err)
		return 0, err
	}

	return balance, nil
}

// Debit decreases a balance bucket and records the paired journal entry.
// Returns ErrInsufficientFunds when the bucket would go negative; in
// that case nothing is written.
func (s *WalletService) Debit(ctx context.Context, userID uuid.UUID, bucket string, amount float64, referenceID uuid.UUID, description string) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	balance, err := s.writeRepo.Debit(ctx, userID, bucket, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Warnw("debit refused, insufficient funds", "userID", userID, "bucket", bucket, "amount", amount)
			return 0, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit wallet", "userID", userID, "bucket", bucket, "amount", amount, "error", err)
		return 0, err
	}

	entry := models.AccountingEntryDB{
		EntryID:       uuid.New(),
		ReferenceID:   referenceID,
		DebitAccount:  userAccount(userID, bucket),
		CreditAccount: counterAccount(bucket),
		Amount:        amount,
		Description:   description,
	}
	if err := s.ledger.Record(ctx, entry); err != nil {
		logger.Log.Errorw("failed to record ledger entry for debit", "userID", userID, "bucket", bucket, "error", err)
		return 0, err
	}

	return balance, nil
}

// GetByUserID returns the wallet without creating one.
func (s *WalletService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return nil, ErrNotFound
	}
	return wallet, nil
}
