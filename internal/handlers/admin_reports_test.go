package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/jwt"
	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRunProfitsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfitRunner(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().
			RunOnce(gomock.Any(), gomock.Any()).
			Return(services.SweepResult{Processed: 5, Accrued: 3, Skipped: 1, Failed: 1}, nil)

		req := authedRequest(http.MethodPost, "/admin/profits/run", nil, admin)
		w := httptest.NewRecorder()

		NewRunProfitsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ProfitRunResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 5, resp.Processed)
		assert.Equal(t, 3, resp.Accrued)
		assert.Equal(t, 1, resp.Skipped)
		assert.Equal(t, 1, resp.Failed)
	})

	t.Run("sweep failure", func(t *testing.T) {
		mockSvc.EXPECT().
			RunOnce(gomock.Any(), gomock.Any()).
			Return(services.SweepResult{}, errors.New("db down"))

		req := authedRequest(http.MethodPost, "/admin/profits/run", nil, admin)
		w := httptest.NewRecorder()

		NewRunProfitsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAdminStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsProvider(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}

	mockSvc.EXPECT().
		AdminStats(gomock.Any()).
		Return(&models.AdminStats{
			TotalUsers:      10,
			TotalBalance:    5000,
			ActiveContracts: 4,
			PendingDeposits: 2,
		}, nil)

	req := authedRequest(http.MethodGet, "/admin/stats", nil, admin)
	w := httptest.NewRecorder()

	NewAdminStatsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp AdminStatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 10, resp.Stats.TotalUsers)
	assert.Equal(t, 2, resp.Stats.PendingDeposits)
}

func TestProfitsByMonthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsProvider(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}

	mockSvc.EXPECT().
		ProfitsByMonth(gomock.Any()).
		Return([]models.MonthlyProfit{
			{Month: "2025-07", Amount: 320, Count: 2},
			{Month: "2025-08", Amount: 160, Count: 1},
		}, nil)

	req := authedRequest(http.MethodGet, "/admin/profits/by-month", nil, admin)
	w := httptest.NewRecorder()

	NewProfitsByMonthHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp ProfitsByMonthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Months, 2)
	assert.Equal(t, "2025-07", resp.Months[0].Month)
}

func TestCashFlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsProvider(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}

	mockSvc.EXPECT().
		CashFlowSummary(gomock.Any()).
		Return([]models.CashFlowRow{
			{Month: "2025-08", Deposits: 1000, Withdrawals: 200, Refunds: 100, NetFlow: 700},
		}, nil)

	req := authedRequest(http.MethodGet, "/admin/cash-flow", nil, admin)
	w := httptest.NewRecorder()

	NewCashFlowHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CashFlowResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Months, 1)
	assert.Equal(t, 700.0, resp.Months[0].NetFlow)
}

func TestLedgerHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatsProvider(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}

	t.Run("passes the page through", func(t *testing.T) {
		mockSvc.EXPECT().
			Ledger(gomock.Any(), 50, 100).
			Return([]models.AccountingEntryDB{
				{DebitAccount: models.AccountCash, CreditAccount: models.UserTotalAccount(uuid.New()), Amount: 100},
			}, nil)

		req := authedRequest(http.MethodGet, "/admin/ledger?limit=50&offset=100", nil, admin)
		w := httptest.NewRecorder()

		NewLedgerHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp LedgerResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Len(t, resp.Entries, 1)
		assert.Equal(t, models.AccountCash, resp.Entries[0].DebitAccount)
	})

	t.Run("missing params default to zero", func(t *testing.T) {
		mockSvc.EXPECT().
			Ledger(gomock.Any(), 0, 0).
			Return([]models.AccountingEntryDB{}, nil)

		req := authedRequest(http.MethodGet, "/admin/ledger", nil, admin)
		w := httptest.NewRecorder()

		NewLedgerHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
