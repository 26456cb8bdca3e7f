package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// WithdrawalRequester defines the interface that the workflow service must implement.
type WithdrawalRequester interface {
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, amount float64, method, reference *string) (*models.TransactionDB, error)
}

// WithdrawRequest represents the JSON body for requesting a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw from the profit balance
	// required: true
	// default: 50.0
	Amount float64 `json:"amount"`

	// Payout method chosen by the user
	// default: bank_transfer
	Method *string `json:"method,omitempty"`

	// External payout reference
	ReferenceID *string `json:"reference_id,omitempty"`
}

// WithdrawResponse represents a recorded withdrawal request
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	Result

	// The pending transaction awaiting admin approval
	Transaction *models.TransactionDB `json:"transaction"`
}

// NewWithdrawHandler returns an HTTP handler for requesting a withdrawal
// from the profit balance. The balance is validated at request time and
// again at approval time.
// @Summary Request a withdrawal
// @Description Records a pending withdrawal transaction against the profit balance. Validates the amount against the configured minimum and the current profit balance.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Pending withdrawal recorded"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawalRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		txn, err := svc.RequestWithdrawal(r.Context(), claims.UserID, req.Amount, req.Method, req.ReferenceID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, WithdrawResponse{
			Result:      ok(),
			Transaction: txn,
		})
	}
}
