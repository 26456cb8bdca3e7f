package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/metrics"
	"github.com/investflow/investflow/internal/models"
	"github.com/shopspring/decimal"
)

// ContractWriter defines contract write operations.
type ContractWriter interface {
	Save(ctx context.Context, contract models.ContractDB) (*models.ContractDB, error)
	Transition(ctx context.Context, contractID uuid.UUID, from []models.ContractStatus, to models.ContractStatus) (*models.ContractDB, error)
	ApplyAccrual(ctx context.Context, contractID uuid.UUID, profitAmount float64) (*models.ContractDB, error)
	UpdateFields(ctx context.Context, contractID uuid.UUID, monthlyRate *float64, durationMonths *int, status *models.ContractStatus) (*models.ContractDB, error)
}

// ContractReader defines contract read operations.
type ContractReader interface {
	GetByID(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ContractDB, error)
	ListDueForAccrual(ctx context.Context, asOf time.Time) ([]models.ContractDB, error)
}

// ProfitWriter inserts monthly profit rows.
type ProfitWriter interface {
	Save(ctx context.Context, profit models.ProfitDB) (inserted bool, err error)
}

// ContractService creates fixed-term contracts from available balance,
// posts monthly profit and settles refunds and cancellations. Profit
// accrual is idempotent per (contract, month) so scheduler retries are
// harmless.
type ContractService struct {
	contractWriter ContractWriter
	contractReader ContractReader
	profitWriter   ProfitWriter
	txWriter       TransactionWriter
	wallet         WalletOps
	settings       SettingsReader
	events         TransactionEventPublisher
}

// NewContractService creates a new ContractService.
func NewContractService(
	contractWriter ContractWriter,
	contractReader ContractReader,
	profitWriter ProfitWriter,
	txWriter TransactionWriter,
	wallet WalletOps,
	settings SettingsReader,
	events TransactionEventPublisher,
) *ContractService {
	return &ContractService{
		contractWriter: contractWriter,
		contractReader: contractReader,
		profitWriter:   profitWriter,
		txWriter:       txWriter,
		wallet:         wallet,
		settings:       settings,
		events:         events,
	}
}

// monthlyProfit computes amount * rate rounded to cents. Going through
// decimal keeps repeated accruals from drifting.
func monthlyProfit(amount, rate float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(2).
		InexactFloat64()
}

// refundAmount computes amount - totalProfitPaid floored at zero.
func refundAmount(amount, totalProfitPaid float64) float64 {
	refund := decimal.NewFromFloat(amount).
		Sub(decimal.NewFromFloat(totalProfitPaid)).
		Round(2)
	if refund.IsNegative() {
		return 0
	}
	return refund.InexactFloat64()
}

// Create converts available total balance into an active fixed-term
// contract. Rate and duration are resolved from settings at creation
// time and frozen on the row.
func (s *ContractService) Create(ctx context.Context, userID uuid.UUID, amount float64) (*models.ContractDB, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	rate, err := s.settings.GetFloat(ctx, models.SettingContractMonthlyRate, models.DefaultMonthlyRate)
	if err != nil {
		return nil, err
	}
	duration, err := s.settings.GetInt(ctx, models.SettingContractDuration, models.DefaultDurationMonths)
	if err != nil {
		return nil, err
	}

	if _, err := s.wallet.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	// Serialize against concurrent mutations for this user.
	if _, err := s.wallet.Lock(ctx, userID); err != nil {
		return nil, err
	}

	contractID := uuid.New()
	now := time.Now().UTC()

	if _, err := s.wallet.Debit(ctx, userID, models.BucketTotal, amount, contractID, "contract principal allocation"); err != nil {
		return nil, err
	}
	if _, err := s.wallet.Credit(ctx, userID, models.BucketInvested, amount, contractID, "contract principal allocation"); err != nil {
		return nil, err
	}

	contract, err := s.contractWriter.Save(ctx, models.ContractDB{
		ContractID:     contractID,
		UserID:         userID,
		Amount:         amount,
		MonthlyRate:    rate,
		DurationMonths: duration,
		Status:         models.ContractActive,
		StartDate:      now,
		EndDate:        now.AddDate(0, duration, 0),
	})
	if err != nil {
		logger.Log.Errorw("failed to save contract", "userID", userID, "amount", amount, "error", err)
		return nil, err
	}

	reference := contractID.String()
	if _, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Type:          models.TransactionInvestment,
		Amount:        amount,
		Currency:      models.USD,
		Status:        models.TransactionCompleted,
		ReferenceID:   &reference,
	}); err != nil {
		return nil, err
	}

	metrics.ContractsCreated.Inc()
	logger.Log.Infow("contract created", "contract_id", contractID, "userID", userID, "amount", amount, "rate", rate, "duration_months", duration)
	return contract, nil
}

// AccrueMonthlyProfit posts the next month's profit for an active
// contract: inserts the profit row, credits the profit bucket, advances
// months_paid and completes the contract when the term is fully paid.
// Idempotent per (contract, month): a duplicate invocation reports
// accrued=false and changes nothing.
func (s *ContractService) AccrueMonthlyProfit(ctx context.Context, contractID uuid.UUID) (accrued bool, contract *models.ContractDB, err error) {
	contract, err = s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return false, nil, err
	}
	if contract == nil {
		return false, nil, ErrNotFound
	}
	if contract.Status != models.ContractActive {
		return false, contract, ErrInvalidStateTransition
	}

	month := contract.MonthsPaid + 1
	if month > contract.DurationMonths {
		return false, contract, nil
	}

	profit := monthlyProfit(contract.Amount, contract.MonthlyRate)

	inserted, err := s.profitWriter.Save(ctx, models.ProfitDB{
		ProfitID:    uuid.New(),
		ContractID:  contractID,
		UserID:      contract.UserID,
		MonthNumber: month,
		Amount:      profit,
	})
	if err != nil {
		return false, nil, err
	}
	if !inserted {
		// Already paid for this month; scheduler retry or duplicate call.
		logger.Log.Infow("profit already accrued, no-op", "contract_id", contractID, "month", month)
		return false, contract, nil
	}

	if _, err := s.wallet.Credit(ctx, contract.UserID, models.BucketProfit, profit, contractID, fmt.Sprintf("monthly profit, month %d", month)); err != nil {
		return false, nil, err
	}

	updated, err := s.contractWriter.ApplyAccrual(ctx, contractID, profit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Contract left the active state between read and update; the
			// caller rolls back the profit row and credit with the
			// surrounding transaction.
			return false, nil, ErrInvalidStateTransition
		}
		return false, nil, err
	}

	reference := contractID.String()
	txn, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        contract.UserID,
		Type:          models.TransactionProfit,
		Amount:        profit,
		Currency:      models.USD,
		Status:        models.TransactionCompleted,
		ReferenceID:   &reference,
	})
	if err != nil {
		return false, nil, err
	}

	if s.events != nil {
		s.events.Publish(ctx, models.TransactionEvent{
			TransactionID: txn.TransactionID.String(),
			Timestamp:     time.Now().Unix(),
			Amount:        profit,
			UserID:        contract.UserID.String(),
			Operation:     "profit_accrued",
		})
	}

	metrics.ProfitsAccrued.Inc()
	logger.Log.Infow("monthly profit accrued",
		"contract_id", contractID,
		"month", month,
		"amount", profit,
		"months_paid", updated.MonthsPaid,
		"status", updated.Status,
	)
	return true, updated, nil
}

// RequestRefund moves an active contract to pending_refund. Ownership
// is checked; balances stay untouched until an admin approves.
func (s *ContractService) RequestRefund(ctx context.Context, contractID, userID uuid.UUID) (*models.ContractDB, error) {
	contract, err := s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil || contract.UserID != userID {
		return nil, ErrNotFound
	}

	updated, err := s.contractWriter.Transition(ctx, contractID, []models.ContractStatus{models.ContractActive}, models.ContractPendingRefund)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}
	return updated, nil
}

// ApproveRefund settles an early termination: refund = principal minus
// profit already paid, floored at zero. The contract moves to refunded
// and its principal leaves the invested bucket even when the refund is
// zero (capital fully recovered via profit).
func (s *ContractService) ApproveRefund(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error) {
	contract, err := s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrNotFound
	}
	if contract.Status == models.ContractRefunded {
		// Duplicate approval; nothing left to settle.
		return contract, nil
	}

	if _, err := s.wallet.Lock(ctx, contract.UserID); err != nil {
		return nil, err
	}

	updated, err := s.contractWriter.Transition(ctx, contractID, []models.ContractStatus{models.ContractPendingRefund}, models.ContractRefunded)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	refund := refundAmount(contract.Amount, contract.TotalProfitPaid)

	if _, err := s.wallet.Debit(ctx, contract.UserID, models.BucketInvested, contract.Amount, contractID, "contract refund, principal release"); err != nil {
		return nil, err
	}
	if refund > 0 {
		if _, err := s.wallet.Credit(ctx, contract.UserID, models.BucketTotal, refund, contractID, "contract refund"); err != nil {
			return nil, err
		}
	}

	reference := contractID.String()
	description := fmt.Sprintf("refund of contract %s, %0.2f profit already paid", contractID, contract.TotalProfitPaid)
	txn, err := s.txWriter.Save(ctx, models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        contract.UserID,
		Type:          models.TransactionRefund,
		Amount:        refund,
		Currency:      models.USD,
		Status:        models.TransactionCompleted,
		ReferenceID:   &reference,
		Description:   &description,
	})
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ctx, models.TransactionEvent{
			TransactionID: txn.TransactionID.String(),
			Timestamp:     time.Now().Unix(),
			Amount:        refund,
			UserID:        contract.UserID.String(),
			Operation:     "refund_executed",
		})
	}

	logger.Log.Infow("contract refunded", "contract_id", contractID, "refund", refund, "principal", contract.Amount)
	return updated, nil
}

// RejectRefund returns a pending_refund contract to active with a
// reason. No balance change.
func (s *ContractService) RejectRefund(ctx context.Context, contractID uuid.UUID, reason string) (*models.ContractDB, error) {
	updated, err := s.contractWriter.Transition(ctx, contractID, []models.ContractStatus{models.ContractPendingRefund}, models.ContractActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			contract, readErr := s.contractReader.GetByID(ctx, contractID)
			if readErr != nil {
				return nil, readErr
			}
			if contract == nil {
				return nil, ErrNotFound
			}
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}
	logger.Log.Infow("refund rejected", "contract_id", contractID, "reason", reason)
	return updated, nil
}

// Cancel is the admin override: an active or pending_refund contract is
// cancelled and its full principal returns to the total bucket.
func (s *ContractService) Cancel(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error) {
	contract, err := s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrNotFound
	}

	if _, err := s.wallet.Lock(ctx, contract.UserID); err != nil {
		return nil, err
	}

	updated, err := s.contractWriter.Transition(ctx, contractID,
		[]models.ContractStatus{models.ContractActive, models.ContractPendingRefund}, models.ContractCancelled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	if _, err := s.wallet.Debit(ctx, contract.UserID, models.BucketInvested, contract.Amount, contractID, "contract cancelled, principal release"); err != nil {
		return nil, err
	}
	if _, err := s.wallet.Credit(ctx, contract.UserID, models.BucketTotal, contract.Amount, contractID, "contract cancelled"); err != nil {
		return nil, err
	}

	logger.Log.Infow("contract cancelled", "contract_id", contractID, "principal", contract.Amount)
	return updated, nil
}

// ContractUpdates is the admin override payload. Nil fields are left
// untouched; the principal amount is immutable and not represented.
type ContractUpdates struct {
	MonthlyRate    *float64               `json:"monthly_rate,omitempty"`
	DurationMonths *int                   `json:"duration_months,omitempty"`
	Status         *models.ContractStatus `json:"status,omitempty"`
}

// AdminUpdate applies an administrative override of contract fields.
// Status changes must still follow the lifecycle; terminal states admit
// no transitions.
func (s *ContractService) AdminUpdate(ctx context.Context, contractID uuid.UUID, updates ContractUpdates) (*models.ContractDB, error) {
	contract, err := s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrNotFound
	}

	if updates.MonthlyRate != nil && *updates.MonthlyRate <= 0 {
		return nil, ErrInvalidAmount
	}
	if updates.DurationMonths != nil && (*updates.DurationMonths <= 0 || *updates.DurationMonths < contract.MonthsPaid) {
		return nil, ErrInvalidAmount
	}
	if updates.Status != nil && !validAdminTransition(contract.Status, *updates.Status) {
		return nil, ErrInvalidStateTransition
	}

	updated, err := s.contractWriter.UpdateFields(ctx, contractID, updates.MonthlyRate, updates.DurationMonths, updates.Status)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("contract updated by admin", "contract_id", contractID)
	return updated, nil
}

// validAdminTransition enumerates the lifecycle edges an admin override
// may take. Balance-affecting transitions (refunded, cancelled) go
// through their dedicated operations, not this override.
func validAdminTransition(from, to models.ContractStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.ContractActive:
		return to == models.ContractCompleted || to == models.ContractPendingRefund
	case models.ContractPendingRefund:
		return to == models.ContractActive
	}
	return false
}

// GetByID returns a contract by id.
func (s *ContractService) GetByID(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error) {
	contract, err := s.contractReader.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, ErrNotFound
	}
	return contract, nil
}

// ListByUser returns a user's contracts.
func (s *ContractService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ContractDB, error) {
	return s.contractReader.ListByUser(ctx, userID)
}
