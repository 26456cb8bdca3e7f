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

func TestAdminCreditHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminCreditor(ctrl)
	admin := &jwt.Claims{UserID: uuid.New(), IsAdmin: true}
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		reason := "promotional bonus"
		mockSvc.EXPECT().
			AdminCredit(gomock.Any(), userID, 100.0, reason).
			Return(&models.TransactionDB{
				UserID:      userID,
				Type:        models.TransactionAdminCredit,
				Amount:      100,
				Status:      models.TransactionCompleted,
				Description: &reason,
			}, nil)

		body, _ := json.Marshal(AdminCreditRequest{Amount: 100, Reason: reason})
		req := authedRequest(http.MethodPost, "/admin/users/"+userID.String()+"/credit", body, admin)
		req = withURLParam(req, "userID", userID.String())
		w := httptest.NewRecorder()

		NewAdminCreditHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp TransactionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, models.TransactionAdminCredit, resp.Transaction.Type)
		assert.Equal(t, models.TransactionCompleted, resp.Transaction.Status)
	})

	t.Run("invalid amount is a business failure", func(t *testing.T) {
		mockSvc.EXPECT().
			AdminCredit(gomock.Any(), userID, -5.0, "oops").
			Return(nil, services.ErrInvalidAmount)

		body, _ := json.Marshal(AdminCreditRequest{Amount: -5, Reason: "oops"})
		req := authedRequest(http.MethodPost, "/admin/users/"+userID.String()+"/credit", body, admin)
		req = withURLParam(req, "userID", userID.String())
		w := httptest.NewRecorder()

		NewAdminCreditHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Result
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, services.ErrInvalidAmount.Error(), resp.Error)
	})

	t.Run("reason is required", func(t *testing.T) {
		body, _ := json.Marshal(AdminCreditRequest{Amount: 100})
		req := authedRequest(http.MethodPost, "/admin/users/"+userID.String()+"/credit", body, admin)
		req = withURLParam(req, "userID", userID.String())
		w := httptest.NewRecorder()

		NewAdminCreditHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid user id", func(t *testing.T) {
		body, _ := json.Marshal(AdminCreditRequest{Amount: 100, Reason: "bonus"})
		req := authedRequest(http.MethodPost, "/admin/users/not-a-uuid/credit", body, admin)
		req = withURLParam(req, "userID", "not-a-uuid")
		w := httptest.NewRecorder()

		NewAdminCreditHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
