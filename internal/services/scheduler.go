package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/middlewares"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// ContractAccruer posts one month of profit for a contract.
type ContractAccruer interface {
	AccrueMonthlyProfit(ctx context.Context, contractID uuid.UUID) (accrued bool, contract *models.ContractDB, err error)
}

// DueContractLister selects contracts due for their next accrual.
type DueContractLister interface {
	ListDueForAccrual(ctx context.Context, asOf time.Time) ([]models.ContractDB, error)
}

// SweepResult reports one scheduler pass. Contracts are independent
// units of work; a failure on one never blocks the others.
type SweepResult struct {
	Processed int `json:"processed"`
	Accrued   int `json:"accrued"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// SchedulerService sweeps all active contracts past their next monthly
// anniversary and posts the due profit. Sweeps are idempotent (the
// profit row uniqueness absorbs retries and overlapping runs), so the
// sweep may run concurrently with itself or be re-run after a partial
// failure.
type SchedulerService struct {
	db        *sqlx.DB
	contracts DueContractLister
	accruer   ContractAccruer
}

// NewSchedulerService creates a new SchedulerService.
func NewSchedulerService(db *sqlx.DB, contracts DueContractLister, accruer ContractAccruer) *SchedulerService {
	return &SchedulerService{
		db:        db,
		contracts: contracts,
		accruer:   accruer,
	}
}

// RunOnce processes every contract due as of the given time. Each
// contract is wrapped in its own database transaction so a partial
// failure rolls back that contract only.
func (s *SchedulerService) RunOnce(ctx context.Context, asOf time.Time) (SweepResult, error) {
	var result SweepResult

	due, err := s.contracts.ListDueForAccrual(ctx, asOf)
	if err != nil {
		logger.Log.Errorw("failed to list contracts due for accrual", "error", err)
		return result, err
	}

	for _, contract := range due {
		result.Processed++
		accrued, err := s.accrueInTx(ctx, contract.ContractID)
		if err != nil {
			logger.Log.Errorw("accrual failed", "contract_id", contract.ContractID, "error", err)
			result.Failed++
			continue
		}
		if accrued {
			result.Accrued++
		} else {
			result.Skipped++
		}
	}

	logger.Log.Infow("accrual sweep finished",
		"processed", result.Processed,
		"accrued", result.Accrued,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}

// accrueInTx runs one contract's accrual inside its own transaction.
func (s *SchedulerService) accrueInTx(ctx context.Context, contractID uuid.UUID) (bool, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return false, err
	}

	accrued, _, err := s.accruer.AccrueMonthlyProfit(middlewares.WithTx(ctx, tx), contractID)
	if err != nil {
		tx.Rollback()
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return accrued, nil
}

// Run sweeps periodically until the context is cancelled.
func (s *SchedulerService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Infof("accrual scheduler running, interval %s", interval)

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("accrual scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx, time.Now().UTC()); err != nil {
				logger.Log.Errorw("accrual sweep failed", "error", err)
			}
		}
	}
}
