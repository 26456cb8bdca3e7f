package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// DepositRequester defines the interface that the workflow service must implement.
type DepositRequester interface {
	RequestDeposit(ctx context.Context, userID uuid.UUID, amount float64, method, reference, description *string) (*models.TransactionDB, error)
}

// DepositRequest represents the JSON body for requesting a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Payment method chosen by the user
	// default: bank_transfer
	Method *string `json:"method,omitempty"`

	// External payment reference
	ReferenceID *string `json:"reference_id,omitempty"`

	// Free-form note
	Description *string `json:"description,omitempty"`
}

// DepositResponse represents a recorded deposit request
// swagger:model DepositResponse
type DepositResponse struct {
	Result

	// The pending transaction awaiting admin approval
	Transaction *models.TransactionDB `json:"transaction"`
}

// NewDepositHandler returns an HTTP handler for requesting a deposit.
// The balance is not touched until an admin approves the request.
// @Summary Request a deposit
// @Description Records a pending deposit transaction. Validates the amount against the configured minimum and rate-limits submissions per user.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Pending deposit recorded"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		txn, err := svc.RequestDeposit(r.Context(), claims.UserID, req.Amount, req.Method, req.ReferenceID, req.Description)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, DepositResponse{
			Result:      ok(),
			Transaction: txn,
		})
	}
}
