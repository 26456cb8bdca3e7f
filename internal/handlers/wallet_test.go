package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/jwt"
	"github.com/investflow/investflow/internal/middlewares"
	"github.com/investflow/investflow/internal/models"
	"github.com/stretchr/testify/assert"
)

// authedRequest builds a request carrying identity claims the way the
// auth middleware would have stored them.
func authedRequest(method, target string, body []byte, claims *jwt.Claims) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if claims != nil {
		req = req.WithContext(middlewares.WithClaims(req.Context(), claims))
	}
	return req
}

func TestGetWalletHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWalletGetter(ctrl)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		wallet := &models.WalletDB{
			UserID:          userID,
			TotalBalance:    500,
			InvestedBalance: 300,
			ProfitBalance:   60,
		}
		mockSvc.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(wallet, nil)

		req := authedRequest(http.MethodGet, "/wallet", nil, &jwt.Claims{UserID: userID})
		w := httptest.NewRecorder()

		NewGetWalletHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp WalletResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 500.0, resp.Wallet.TotalBalance)
		assert.Equal(t, 300.0, resp.Wallet.InvestedBalance)
		assert.Equal(t, 60.0, resp.Wallet.ProfitBalance)
	})

	t.Run("missing claims", func(t *testing.T) {
		req := authedRequest(http.MethodGet, "/wallet", nil, nil)
		w := httptest.NewRecorder()

		NewGetWalletHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			GetOrCreate(gomock.Any(), userID).
			Return(nil, errors.New("db down"))

		req := authedRequest(http.MethodGet, "/wallet", nil, &jwt.Claims{UserID: userID})
		w := httptest.NewRecorder()

		NewGetWalletHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionLister(ctrl)
	userID := uuid.New()

	transactions := []models.TransactionDB{
		{TransactionID: uuid.New(), UserID: userID, Type: models.TransactionDeposit, Amount: 100, Status: models.TransactionCompleted},
		{TransactionID: uuid.New(), UserID: userID, Type: models.TransactionWithdrawal, Amount: 40, Status: models.TransactionPending},
	}

	mockSvc.EXPECT().
		ListUserTransactions(gomock.Any(), userID).
		Return(transactions, nil)

	req := authedRequest(http.MethodGet, "/transactions", nil, &jwt.Claims{UserID: userID})
	w := httptest.NewRecorder()

	NewListTransactionsHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp TransactionsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, models.TransactionDeposit, resp.Transactions[0].Type)
}
