package handlers

import (
	"encoding/json"
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

func TestApproveWithdrawalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWithdrawalFinalizer(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}
	transactionID := uuid.New()

	t.Run("success with payout proof", func(t *testing.T) {
		proof := "https://files.example.com/proof.pdf"
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), transactionID, &proof).
			Return(&models.TransactionDB{
				TransactionID: transactionID,
				Type:          models.TransactionWithdrawal,
				Status:        models.TransactionCompleted,
				ProofURL:      &proof,
			}, nil)

		body, _ := json.Marshal(ApproveWithdrawalRequest{ProofURL: &proof})
		req := authedRequest(http.MethodPost, "/admin/withdrawals/"+transactionID.String()+"/approve", body, admin)
		req = withURLParam(req, "transactionID", transactionID.String())
		w := httptest.NewRecorder()

		NewApproveWithdrawalHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TransactionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, models.TransactionCompleted, resp.Transaction.Status)
		assert.Equal(t, proof, *resp.Transaction.ProofURL)
	})

	t.Run("body is optional", func(t *testing.T) {
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), transactionID, nil).
			Return(&models.TransactionDB{
				TransactionID: transactionID,
				Status:        models.TransactionCompleted,
			}, nil)

		req := authedRequest(http.MethodPost, "/admin/withdrawals/"+transactionID.String()+"/approve", nil, admin)
		req = withURLParam(req, "transactionID", transactionID.String())
		w := httptest.NewRecorder()

		NewApproveWithdrawalHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("stale balance stays pending", func(t *testing.T) {
		mockSvc.EXPECT().
			ApproveWithdrawal(gomock.Any(), transactionID, nil).
			Return(nil, services.ErrStaleBalance)

		req := authedRequest(http.MethodPost, "/admin/withdrawals/"+transactionID.String()+"/approve", nil, admin)
		req = withURLParam(req, "transactionID", transactionID.String())
		w := httptest.NewRecorder()

		NewApproveWithdrawalHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Result
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, services.ErrStaleBalance.Error(), resp.Error)
	})
}

func TestRejectWithdrawalHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWithdrawalFinalizer(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}
	transactionID := uuid.New()

	t.Run("success", func(t *testing.T) {
		reason := "suspicious activity"
		mockSvc.EXPECT().
			RejectWithdrawal(gomock.Any(), transactionID, reason).
			Return(&models.TransactionDB{
				TransactionID: transactionID,
				Status:        models.TransactionRejected,
				RejectReason:  &reason,
			}, nil)

		body, _ := json.Marshal(RejectRequest{Reason: reason})
		req := authedRequest(http.MethodPost, "/admin/withdrawals/"+transactionID.String()+"/reject", body, admin)
		req = withURLParam(req, "transactionID", transactionID.String())
		w := httptest.NewRecorder()

		NewRejectWithdrawalHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TransactionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, models.TransactionRejected, resp.Transaction.Status)
	})

	t.Run("reason is required", func(t *testing.T) {
		body, _ := json.Marshal(RejectRequest{})
		req := authedRequest(http.MethodPost, "/admin/withdrawals/"+transactionID.String()+"/reject", body, admin)
		req = withURLParam(req, "transactionID", transactionID.String())
		w := httptest.NewRecorder()

		NewRejectWithdrawalHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
