package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/services"
	"github.com/stretchr/testify/assert"
)

type workflowMocks struct {
	txWriter *services.MockTransactionWriter
	txReader *services.MockTransactionReader
	wallet   *services.MockWalletOps
	settings *services.MockSettingsReader
	limiter  *services.MockRateLimiter
}

func newWorkflowService(ctrl *gomock.Controller) (*services.WorkflowService, workflowMocks) {
	m := workflowMocks{
		txWriter: services.NewMockTransactionWriter(ctrl),
		txReader: services.NewMockTransactionReader(ctrl),
		wallet:   services.NewMockWalletOps(ctrl),
		settings: services.NewMockSettingsReader(ctrl),
		limiter:  services.NewMockRateLimiter(ctrl),
	}
	svc := services.NewWorkflowService(m.txWriter, m.txReader, m.wallet, m.settings, m.limiter, nil)
	return svc, m
}

// echoSave makes the transaction writer return whatever it was given.
func echoSave(m workflowMocks) {
	m.txWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn models.TransactionDB) (*models.TransactionDB, error) {
			return &txn, nil
		})
}

func TestWorkflowService_RequestDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("records a pending deposit", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "deposit", gomock.Any()).
			Return(int64(1), nil)
		m.settings.EXPECT().
			GetFloat(gomock.Any(), models.SettingMinimumDeposit, models.DefaultMinimumDeposit).
			Return(50.0, nil)
		m.wallet.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(&models.WalletDB{UserID: userID}, nil)
		echoSave(m)

		txn, err := svc.RequestDeposit(context.Background(), userID, 100, nil, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionDeposit, txn.Type)
		assert.Equal(t, models.TransactionPending, txn.Status)
		assert.Equal(t, 100.0, txn.Amount)
		assert.Equal(t, userID, txn.UserID)
	})

	t.Run("non-positive amount is refused before any call", func(t *testing.T) {
		svc, _ := newWorkflowService(ctrl)

		_, err := svc.RequestDeposit(context.Background(), userID, 0, nil, nil, nil)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})

	t.Run("amount below minimum is refused", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "deposit", gomock.Any()).
			Return(int64(1), nil)
		m.settings.EXPECT().
			GetFloat(gomock.Any(), models.SettingMinimumDeposit, models.DefaultMinimumDeposit).
			Return(50.0, nil)

		_, err := svc.RequestDeposit(context.Background(), userID, 20, nil, nil, nil)
		assert.ErrorIs(t, err, services.ErrBelowMinimum)
	})

	t.Run("rate limit exceeded blocks the request", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "deposit", gomock.Any()).
			Return(int64(11), nil)

		_, err := svc.RequestDeposit(context.Background(), userID, 100, nil, nil, nil)
		assert.ErrorIs(t, err, services.ErrRateLimited)
	})

	t.Run("limiter failure fails open", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "deposit", gomock.Any()).
			Return(int64(0), errors.New("redis down"))
		m.settings.EXPECT().
			GetFloat(gomock.Any(), models.SettingMinimumDeposit, models.DefaultMinimumDeposit).
			Return(50.0, nil)
		m.wallet.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(&models.WalletDB{UserID: userID}, nil)
		echoSave(m)

		_, err := svc.RequestDeposit(context.Background(), userID, 100, nil, nil, nil)
		assert.NoError(t, err)
	})
}

func TestWorkflowService_RequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("records a pending withdrawal within the profit balance", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "withdraw", gomock.Any()).
			Return(int64(1), nil)
		m.settings.EXPECT().
			GetFloat(gomock.Any(), models.SettingMinimumWithdrawal, models.DefaultMinimumWithdrawal).
			Return(10.0, nil)
		m.wallet.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(&models.WalletDB{UserID: userID, ProfitBalance: 200}, nil)
		echoSave(m)

		txn, err := svc.RequestWithdrawal(context.Background(), userID, 150, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionWithdrawal, txn.Type)
		assert.Equal(t, models.TransactionPending, txn.Status)
	})

	t.Run("amount above the profit balance is refused before a row exists", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.limiter.EXPECT().
			Increment(gomock.Any(), userID.String(), "withdraw", gomock.Any()).
			Return(int64(1), nil)
		m.settings.EXPECT().
			GetFloat(gomock.Any(), models.SettingMinimumWithdrawal, models.DefaultMinimumWithdrawal).
			Return(10.0, nil)
		m.wallet.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(&models.WalletDB{UserID: userID, ProfitBalance: 30}, nil)

		_, err := svc.RequestWithdrawal(context.Background(), userID, 50, nil, nil)
		assert.ErrorIs(t, err, services.ErrInsufficientFunds)
	})
}

func TestWorkflowService_ApproveDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	transactionID := uuid.New()

	pending := &models.TransactionDB{
		TransactionID: transactionID,
		UserID:        userID,
		Type:          models.TransactionDeposit,
		Amount:        100,
		Status:        models.TransactionPending,
	}

	t.Run("completes the deposit and credits the total balance", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		completed := *pending
		completed.Status = models.TransactionCompleted

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(pending, nil)
		m.txWriter.EXPECT().
			Finalize(gomock.Any(), transactionID, models.TransactionCompleted, gomock.Nil(), gomock.Nil()).
			Return(&completed, nil)
		m.wallet.EXPECT().
			Credit(gomock.Any(), userID, models.BucketTotal, 100.0, transactionID, gomock.Any()).
			Return(100.0, nil)

		txn, err := svc.ApproveDeposit(context.Background(), transactionID)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionCompleted, txn.Status)
	})

	t.Run("approving a terminal transaction is a no-op", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		done := *pending
		done.Status = models.TransactionCompleted

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(&done, nil)

		txn, err := svc.ApproveDeposit(context.Background(), transactionID)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionCompleted, txn.Status)
	})

	t.Run("unknown transaction maps to ErrNotFound", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(nil, nil)

		_, err := svc.ApproveDeposit(context.Background(), transactionID)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("wrong transaction type is refused", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		withdrawal := *pending
		withdrawal.Type = models.TransactionWithdrawal

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(&withdrawal, nil)

		_, err := svc.ApproveDeposit(context.Background(), transactionID)
		assert.ErrorIs(t, err, services.ErrInvalidStateTransition)
	})
}

func TestWorkflowService_RejectDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	transactionID := uuid.New()

	t.Run("rejects with a reason and no wallet mutation", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		pending := &models.TransactionDB{
			TransactionID: transactionID,
			UserID:        userID,
			Type:          models.TransactionDeposit,
			Amount:        100,
			Status:        models.TransactionPending,
		}

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(pending, nil)
		m.txWriter.EXPECT().
			Finalize(gomock.Any(), transactionID, models.TransactionRejected, gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, id uuid.UUID, status models.TransactionStatus, reason, _ *string) (*models.TransactionDB, error) {
				assert.NotNil(t, reason)
				assert.Equal(t, "documents missing", *reason)
				rejected := *pending
				rejected.Status = models.TransactionRejected
				rejected.RejectReason = reason
				return &rejected, nil
			})

		txn, err := svc.RejectDeposit(context.Background(), transactionID, "documents missing")
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionRejected, txn.Status)
	})
}

func TestWorkflowService_ApproveWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	transactionID := uuid.New()

	pending := &models.TransactionDB{
		TransactionID: transactionID,
		UserID:        userID,
		Type:          models.TransactionWithdrawal,
		Amount:        80,
		Status:        models.TransactionPending,
	}

	t.Run("debits the profit balance and completes", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		completed := *pending
		completed.Status = models.TransactionCompleted

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(pending, nil)
		m.wallet.EXPECT().
			Debit(gomock.Any(), userID, models.BucketProfit, 80.0, transactionID, gomock.Any()).
			Return(20.0, nil)
		m.txWriter.EXPECT().
			Finalize(gomock.Any(), transactionID, models.TransactionCompleted, gomock.Nil(), gomock.Any()).
			Return(&completed, nil)

		txn, err := svc.ApproveWithdrawal(context.Background(), transactionID, nil)
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionCompleted, txn.Status)
	})

	t.Run("shrunk balance leaves the row pending with ErrStaleBalance", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.txReader.EXPECT().GetByID(gomock.Any(), transactionID).Return(pending, nil)
		m.wallet.EXPECT().
			Debit(gomock.Any(), userID, models.BucketProfit, 80.0, transactionID, gomock.Any()).
			Return(0.0, services.ErrInsufficientFunds)

		_, err := svc.ApproveWithdrawal(context.Background(), transactionID, nil)
		assert.ErrorIs(t, err, services.ErrStaleBalance)
	})
}

func TestWorkflowService_BulkFinalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	goodID := uuid.New()
	badID := uuid.New()

	t.Run("items are isolated, one failure never blocks the rest", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		pending := &models.TransactionDB{
			TransactionID: goodID,
			UserID:        userID,
			Type:          models.TransactionDeposit,
			Amount:        100,
			Status:        models.TransactionPending,
		}
		completed := *pending
		completed.Status = models.TransactionCompleted

		m.txReader.EXPECT().GetByID(gomock.Any(), goodID).Return(pending, nil)
		m.txWriter.EXPECT().
			Finalize(gomock.Any(), goodID, models.TransactionCompleted, gomock.Nil(), gomock.Nil()).
			Return(&completed, nil)
		m.wallet.EXPECT().
			Credit(gomock.Any(), userID, models.BucketTotal, 100.0, goodID, gomock.Any()).
			Return(100.0, nil)

		m.txReader.EXPECT().GetByID(gomock.Any(), badID).Return(nil, nil)

		result := svc.ApproveDeposits(context.Background(), []uuid.UUID{goodID, badID})
		assert.Equal(t, 1, result.Succeeded)
		assert.Equal(t, 1, result.Failed)
	})
}

func TestWorkflowService_AdminCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("writes a completed audit transaction and credits the total balance", func(t *testing.T) {
		svc, m := newWorkflowService(ctrl)

		m.wallet.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(&models.WalletDB{UserID: userID}, nil)
		echoSave(m)
		m.wallet.EXPECT().
			Credit(gomock.Any(), userID, models.BucketTotal, 250.0, gomock.Any(), gomock.Any()).
			Return(250.0, nil)

		txn, err := svc.AdminCredit(context.Background(), userID, 250, "promotional bonus")
		assert.NoError(t, err)
		assert.Equal(t, models.TransactionAdminCredit, txn.Type)
		assert.Equal(t, models.TransactionCompleted, txn.Status)
		assert.NotNil(t, txn.Description)
		assert.Equal(t, "promotional bonus", *txn.Description)
	})

	t.Run("non-positive amount is refused", func(t *testing.T) {
		svc, _ := newWorkflowService(ctrl)

		_, err := svc.AdminCredit(context.Background(), userID, 0, "x")
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})
}
