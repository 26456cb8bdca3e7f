package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// AdminCreditor defines the direct-credit operation of the workflow service.
type AdminCreditor interface {
	AdminCredit(ctx context.Context, userID uuid.UUID, amount float64, reason string) (*models.TransactionDB, error)
}

// AdminCreditRequest represents the JSON body for crediting a user directly
// swagger:model AdminCreditRequest
type AdminCreditRequest struct {
	// Amount to credit to the user's total balance
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`

	// Reason persisted as the audit trail
	// required: true
	// default: promotional bonus
	Reason string `json:"reason"`
}

// NewAdminCreditHandler returns an HTTP handler for crediting a user's
// total balance outside the deposit workflow.
// @Summary Credit a user
// @Description Credits the user's total balance directly, recording a completed admin_credit transaction with the reason as the audit trail.
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body handlers.AdminCreditRequest true "Credit Request"
// @Success 200 {object} handlers.TransactionResponse "Credit recorded"
// @Failure 400 {object} handlers.Result "Invalid user id or body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/users/{userID}/credit [post]
// @Security BearerAuth
func NewAdminCreditHandler(svc AdminCreditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuidParam(r, "userID")
		if err != nil {
			respondBadRequest(w, "Invalid user id")
			return
		}

		var req AdminCreditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if req.Reason == "" {
			respondBadRequest(w, "Reason is required")
			return
		}

		txn, err := svc.AdminCredit(r.Context(), userID, req.Amount, req.Reason)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, TransactionResponse{
			Result:      ok(),
			Transaction: txn,
		})
	}
}
