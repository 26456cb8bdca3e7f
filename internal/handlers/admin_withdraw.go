package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// WithdrawalFinalizer defines the admin withdrawal operations of the workflow service.
type WithdrawalFinalizer interface {
	ApproveWithdrawal(ctx context.Context, transactionID uuid.UUID, proofURL *string) (*models.TransactionDB, error)
	RejectWithdrawal(ctx context.Context, transactionID uuid.UUID, reason string) (*models.TransactionDB, error)
}

// ApproveWithdrawalRequest represents the JSON body for approving a withdrawal
// swagger:model ApproveWithdrawalRequest
type ApproveWithdrawalRequest struct {
	// Reference to the payout proof upload
	ProofURL *string `json:"proof_url,omitempty"`
}

// NewApproveWithdrawalHandler returns an HTTP handler for approving a
// pending withdrawal. The profit balance is re-validated; when it shrank
// since request time the row stays pending and the error says so.
// @Summary Approve a withdrawal
// @Description Re-validates the profit balance, debits it and completes the withdrawal. A balance that shrank since request time leaves the row pending.
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.ApproveWithdrawalRequest false "Payout proof"
// @Success 200 {object} handlers.TransactionResponse "Withdrawal finalized"
// @Failure 400 {object} handlers.Result "Invalid transaction id"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/withdrawals/{transactionID}/approve [post]
// @Security BearerAuth
func NewApproveWithdrawalHandler(svc WithdrawalFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, err := uuidParam(r, "transactionID")
		if err != nil {
			respondBadRequest(w, "Invalid transaction id")
			return
		}

		// Body is optional; absent means no proof reference.
		var req ApproveWithdrawalRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		txn, err := svc.ApproveWithdrawal(r.Context(), transactionID, req.ProofURL)
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

// NewRejectWithdrawalHandler returns an HTTP handler for rejecting a
// pending withdrawal with a reason.
// @Summary Reject a withdrawal
// @Description Rejects a pending withdrawal. No balance change. The reason is stored on the transaction and surfaced to the user.
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.RejectRequest true "Rejection reason"
// @Success 200 {object} handlers.TransactionResponse "Withdrawal rejected"
// @Failure 400 {object} handlers.Result "Invalid transaction id or body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/withdrawals/{transactionID}/reject [post]
// @Security BearerAuth
func NewRejectWithdrawalHandler(svc WithdrawalFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, err := uuidParam(r, "transactionID")
		if err != nil {
			respondBadRequest(w, "Invalid transaction id")
			return
		}

		var req RejectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if req.Reason == "" {
			respondBadRequest(w, "Reason is required")
			return
		}

		txn, err := svc.RejectWithdrawal(r.Context(), transactionID, req.Reason)
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
