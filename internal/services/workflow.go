package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/metrics"
	"github.com/investflow/investflow/internal/models"
)

// Submission windows enforced per (user, action).
const (
	depositLimitPerHour    = 10
	withdrawalLimitPerHour = 5
)

// TransactionWriter defines transaction write operations.
type TransactionWriter interface {
	Save(ctx context.Context, txn models.TransactionDB) (*models.TransactionDB, error)
	Finalize(ctx context.Context, transactionID uuid.UUID, status models.TransactionStatus, rejectReason, proofURL *string) (*models.TransactionDB, error)
}

// TransactionReader defines transaction read operations.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
	ListPending(ctx context.Context, txnType models.TransactionType) ([]models.TransactionDB, error)
}

// WalletOps defines the balance operations the workflow needs.
type WalletOps interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	Lock(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	Credit(ctx context.Context, userID uuid.UUID, bucket string, amount float64, referenceID uuid.UUID, description string) (float64, error)
	Debit(ctx context.Context, userID uuid.UUID, bucket string, amount float64, referenceID uuid.UUID, description string) (float64, error)
}

// SettingsReader reads business configuration with defaults.
type SettingsReader interface {
	GetFloat(ctx context.Context, key string, def float64) (float64, error)
	GetInt(ctx context.Context, key string, def int) (int, error)
}

// RateLimiter counts submissions per (subject, action) in fixed windows.
type RateLimiter interface {
	Increment(ctx context.Context, subject, action string, window time.Duration) (int64, error)
}

// TransactionEventPublisher publishes finalized transaction events.
type TransactionEventPublisher interface {
	Publish(ctx context.Context, event models.TransactionEvent)
}

// WorkflowService is the deposit/withdrawal state machine. Requests
// create pending transactions; only admin approval moves money. All
// approvals are idempotent: finalizing an already terminal transaction
// is a no-op returning the existing state.
type WorkflowService struct {
	txWriter TransactionWriter
	txReader TransactionReader
	wallet   WalletOps
	settings SettingsReader
	limiter  RateLimiter
	events   TransactionEventPublisher
}

// NewWorkflowService creates a new WorkflowService.
func NewWorkflowService(
	txWriter TransactionWriter,
	txReader TransactionReader,
	wallet WalletOps,
	settings SettingsReader,
	limiter RateLimiter,
	events TransactionEventPublisher,
) *WorkflowService {
	return &WorkflowService{
		txWriter: txWriter,
		txReader: txReader,
		wallet:   wallet,
		settings: settings,
		limiter:  limiter,
		events:   events,
	}
}

// checkRateLimit fails open: a Redis failure logs a warning and lets
// the request through. The financial preconditions still apply.
func (s *WorkflowService) checkRateLimit(ctx context.Context, userID uuid.UUID, action string, limit int64) error {
	if s.limiter == nil {
		return nil
	}
	count, err := s.limiter.Increment(ctx, userID.String(), action, time.Hour)
	if err != nil {
		logger.Log.Warnw("rate limit check failed, allowing request", "userID", userID, "action", action, "error", err)
		return nil
	}
	if count > limit {
		logger.Log.Warnw("rate limit exceeded", "userID", userID, "action", action, "count", count)
		metrics.RateLimited.WithLabelValues(action).Inc()
		return ErrRateLimited
	}
	return nil
}

func (s *WorkflowService) publish(ctx context.Context, txn *models.TransactionDB, operation string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        txn.Amount,
		UserID:        txn.UserID.String(),
		Operation:     operation,
	})
}

// RequestDeposit records a pending deposit transaction. No wallet
// mutation happens until an admin approves it.
func (s *WorkflowService) RequestDeposit(ctx context.Context, userID uuid.UUID, amount float64, method, reference, description *string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := s.checkRateLimit(ctx, userID, "deposit", depositLimitPerHour); err != nil {
		return nil, err
	}

	minimum, err := s.settings.GetFloat(ctx, models.SettingMinimumDeposit, models.DefaultMinimumDeposit)
	if err != nil {
		logger.Log.Errorw("failed to read minimum deposit setting", "error", err)
		return nil, err
	}
	if amount < minimum {
		return nil, ErrBelowMinimum
	}

	if _, err := s.wallet.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TransactionDeposit,
		Amount:        amount,
		Currency:      models.USD,
		Status:        models.TransactionPending,
		Method:        method,
		ReferenceID:   reference,
		Description:   description,
	})
	if err != nil {
		logger.Log.Errorw("failed to save deposit request", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	return txn, nil
}

// RequestWithdrawal records a pending withdrawal against the profit
// bucket. The amount must be available at request time; it is validated
// again at approval time because the balance may change in between.
func (s *WorkflowService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount float64, method, reference *string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if err := s.checkRateLimit(ctx, userID, "withdraw", withdrawalLimitPerHour); err != nil {
		return nil, err
	}

	minimum, err := s.settings.GetFloat(ctx, models.SettingMinimumWithdrawal, models.DefaultMinimumWithdrawal)
	if err != nil {
		logger.Log.Errorw("failed to read minimum withdrawal setting", "error", err)
		return nil, err
	}
	if amount < minimum {
		return nil, ErrBelowMinimum
	}

	wallet, err := s.wallet.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if amount > wallet.ProfitBalance {
		logger.Log.Warnw("withdrawal request exceeds profit balance", "userID", userID, "amount", amount, "profit_balance", wallet.ProfitBalance)
		return nil, ErrInsufficientFunds
	}

	txn, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TransactionWithdrawal,
		Amount:        amount,
		Currency:      models.USD,
		Status:        models.TransactionPending,
		Method:        method,
		ReferenceID:   reference,
	})
	if err != nil {
		logger.Log.Errorw("failed to save withdrawal request", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	return txn, nil
}

// loadForFinalize fetches the transaction and reports whether it is
// already terminal (the idempotent no-op case).
func (s *WorkflowService) loadForFinalize(ctx context.Context, transactionID uuid.UUID, txnType models.TransactionType) (*models.TransactionDB, bool, error) {
	txn, err := s.txReader.GetByID(ctx, transactionID)
	if err != nil {
		return nil, false, err
	}
	if txn == nil {
		return nil, false, ErrNotFound
	}
	if txn.Type != txnType {
		return nil, false, ErrInvalidStateTransition
	}
	if txn.Status.Terminal() {
		return txn, true, nil
	}
	return txn, false, nil
}

// ApproveDeposit completes a pending deposit and credits the user's
// total balance. Re-approving a terminal transaction is a no-op.
func (s *WorkflowService) ApproveDeposit(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error) {
	txn, terminal, err := s.loadForFinalize(ctx, transactionID, models.TransactionDeposit)
	if err != nil {
		return nil, err
	}
	if terminal {
		logger.Log.Infow("deposit already finalized, no-op", "transaction_id", transactionID, "status", txn.Status)
		return txn, nil
	}

	finalized, err := s.txWriter.Finalize(ctx, transactionID, models.TransactionCompleted, nil, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race against a concurrent finalize.
			return s.reloadTerminal(ctx, transactionID)
		}
		return nil, err
	}

	if _, err := s.wallet.Credit(ctx, txn.UserID, models.BucketTotal, txn.Amount, transactionID, "deposit approved"); err != nil {
		logger.Log.Errorw("failed to credit wallet for approved deposit", "transaction_id", transactionID, "error", err)
		return nil, err
	}

	metrics.DepositsApproved.Inc()
	s.publish(ctx, finalized, "deposit_approved")
	return finalized, nil
}

// RejectDeposit rejects a pending deposit with a reason surfaced to the
// user. No wallet mutation. Rejecting a terminal transaction is a no-op.
func (s *WorkflowService) RejectDeposit(ctx context.Context, transactionID uuid.UUID, reason string) (*models.TransactionDB, error) {
	txn, terminal, err := s.loadForFinalize(ctx, transactionID, models.TransactionDeposit)
	if err != nil {
		return nil, err
	}
	if terminal {
		logger.Log.Infow("deposit already finalized, no-op", "transaction_id", transactionID, "status", txn.Status)
		return txn, nil
	}

	finalized, err := s.txWriter.Finalize(ctx, transactionID, models.TransactionRejected, &reason, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.reloadTerminal(ctx, transactionID)
		}
		return nil, err
	}

	metrics.TransactionsRejected.WithLabelValues(string(models.TransactionDeposit)).Inc()
	s.publish(ctx, finalized, "deposit_rejected")
	return finalized, nil
}

// ApproveWithdrawal re-validates the profit balance and completes a
// pending withdrawal. When the balance shrank since request time the
// debit fails, the transaction stays pending and ErrStaleBalance is
// returned for admin retry or explicit rejection.
func (s *WorkflowService) ApproveWithdrawal(ctx context.Context, transactionID uuid.UUID, proofURL *string) (*models.TransactionDB, error) {
	txn, terminal, err := s.loadForFinalize(ctx, transactionID, models.TransactionWithdrawal)
	if err != nil {
		return nil, err
	}
	if terminal {
		logger.Log.Infow("withdrawal already finalized, no-op", "transaction_id", transactionID, "status", txn.Status)
		return txn, nil
	}

	if _, err := s.wallet.Debit(ctx, txn.UserID, models.BucketProfit, txn.Amount, transactionID, "withdrawal approved"); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Warnw("withdrawal approval failed, balance changed since request", "transaction_id", transactionID, "amount", txn.Amount)
			return nil, ErrStaleBalance
		}
		return nil, err
	}

	finalized, err := s.txWriter.Finalize(ctx, transactionID, models.TransactionCompleted, nil, proofURL)
	if err != nil {
		// The debit above must not survive a failed finalize; the caller
		// rolls back the request transaction.
		return nil, err
	}

	metrics.WithdrawalsApproved.Inc()
	s.publish(ctx, finalized, "withdrawal_approved")
	return finalized, nil
}

// RejectWithdrawal rejects a pending withdrawal with a reason. No
// wallet mutation. Rejecting a terminal transaction is a no-op.
func (s *WorkflowService) RejectWithdrawal(ctx context.Context, transactionID uuid.UUID, reason string) (*models.TransactionDB, error) {
	txn, terminal, err := s.loadForFinalize(ctx, transactionID, models.TransactionWithdrawal)
	if err != nil {
		return nil, err
	}
	if terminal {
		logger.Log.Infow("withdrawal already finalized, no-op", "transaction_id", transactionID, "status", txn.Status)
		return txn, nil
	}

	finalized, err := s.txWriter.Finalize(ctx, transactionID, models.TransactionRejected, &reason, nil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.reloadTerminal(ctx, transactionID)
		}
		return nil, err
	}

	metrics.TransactionsRejected.WithLabelValues(string(models.TransactionWithdrawal)).Inc()
	s.publish(ctx, finalized, "withdrawal_rejected")
	return finalized, nil
}

func (s *WorkflowService) reloadTerminal(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error) {
	txn, err := s.txReader.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, ErrNotFound
	}
	return txn, nil
}

// BulkResult reports the outcome of a bulk finalize. Items are
// processed independently; one failure never rolls back the others.
type BulkResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// ApproveDeposits approves a set of pending deposits one by one.
func (s *WorkflowService) ApproveDeposits(ctx context.Context, transactionIDs []uuid.UUID) BulkResult {
	var result BulkResult
	for _, id := range transactionIDs {
		if _, err := s.ApproveDeposit(ctx, id); err != nil {
			logger.Log.Warnw("bulk approve: deposit failed", "transaction_id", id, "error", err)
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result
}

// RejectDeposits rejects a set of pending deposits one by one with a
// shared reason.
func (s *WorkflowService) RejectDeposits(ctx context.Context, transactionIDs []uuid.UUID, reason string) BulkResult {
	var result BulkResult
	for _, id := range transactionIDs {
		if _, err := s.RejectDeposit(ctx, id, reason); err != nil {
			logger.Log.Warnw("bulk reject: deposit failed", "transaction_id", id, "error", err)
			result.Failed++
			continue
		}
		result.Succeeded++
	}
	return result
}

// AdminCredit credits a user's total balance outside the deposit
// workflow. The reason is persisted on the completed transaction row as
// the audit trail.
func (s *WorkflowService) AdminCredit(ctx context.Context, userID uuid.UUID, amount float64, reason string) (*models.TransactionDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.wallet.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	txn, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TransactionAdminCredit,
		Amount:        amount,
		Currency:      models.USD,
		Status:        models.TransactionCompleted,
		Description:   &reason,
	})
	if err != nil {
		logger.Log.Errorw("failed to save admin credit", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	if _, err := s.wallet.Credit(ctx, userID, models.BucketTotal, amount, txn.TransactionID, "admin credit: "+reason); err != nil {
		return nil, err
	}

	s.publish(ctx, txn, "admin_credit")
	return txn, nil
}

// ListUserTransactions returns a user's transaction history.
func (s *WorkflowService) ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	return s.txReader.ListByUser(ctx, userID)
}

// ListPending returns pending transactions of one type for admin review.
func (s *WorkflowService) ListPending(ctx context.Context, txnType models.TransactionType) ([]models.TransactionDB, error) {
	return s.txReader.ListPending(ctx, txnType)
}
