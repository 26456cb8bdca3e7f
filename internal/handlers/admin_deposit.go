package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/services"
)

// DepositFinalizer defines the admin deposit operations of the workflow service.
type DepositFinalizer interface {
	ApproveDeposit(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, error)
	RejectDeposit(ctx context.Context, transactionID uuid.UUID, reason string) (*models.TransactionDB, error)
	ApproveDeposits(ctx context.Context, transactionIDs []uuid.UUID) services.BulkResult
	RejectDeposits(ctx context.Context, transactionIDs []uuid.UUID, reason string) services.BulkResult
}

// PendingLister defines the admin pending-queue read of the workflow service.
type PendingLister interface {
	ListPending(ctx context.Context, txnType models.TransactionType) ([]models.TransactionDB, error)
}

// RejectRequest represents the JSON body for rejecting a transaction
// swagger:model RejectRequest
type RejectRequest struct {
	// Reason surfaced to the user
	// required: true
	// default: document verification failed
	Reason string `json:"reason"`
}

// TransactionResponse represents a finalized transaction
// swagger:model TransactionResponse
type TransactionResponse struct {
	Result

	Transaction *models.TransactionDB `json:"transaction"`
}

// BulkFinalizeRequest represents the JSON body for bulk finalization
// swagger:model BulkFinalizeRequest
type BulkFinalizeRequest struct {
	// Transactions to finalize
	// required: true
	TransactionIDs []uuid.UUID `json:"transaction_ids"`

	// Reason for bulk rejection, ignored on approval
	Reason string `json:"reason,omitempty"`
}

// BulkApproveResponse reports a bulk approval outcome
// swagger:model BulkApproveResponse
type BulkApproveResponse struct {
	Result

	ApprovedCount int `json:"approved_count"`
	FailedCount   int `json:"failed_count"`
}

// BulkRejectResponse reports a bulk rejection outcome
// swagger:model BulkRejectResponse
type BulkRejectResponse struct {
	Result

	RejectedCount int `json:"rejected_count"`
	FailedCount   int `json:"failed_count"`
}

// NewApproveDepositHandler returns an HTTP handler for approving a
// pending deposit.
// @Summary Approve a deposit
// @Description Completes a pending deposit and credits the user's total balance. Approving an already finalized deposit is a no-op returning its current state.
// @Tags admin
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} handlers.TransactionResponse "Deposit finalized"
// @Failure 400 {object} handlers.Result "Invalid transaction id"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/deposits/{transactionID}/approve [post]
// @Security BearerAuth
func NewApproveDepositHandler(svc DepositFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, err := uuidParam(r, "transactionID")
		if err != nil {
			respondBadRequest(w, "Invalid transaction id")
			return
		}

		txn, err := svc.ApproveDeposit(r.Context(), transactionID)
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

// NewRejectDepositHandler returns an HTTP handler for rejecting a
// pending deposit with a reason.
// @Summary Reject a deposit
// @Description Rejects a pending deposit. No balance change. The reason is stored on the transaction and surfaced to the user.
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param request body handlers.RejectRequest true "Rejection reason"
// @Success 200 {object} handlers.TransactionResponse "Deposit rejected"
// @Failure 400 {object} handlers.Result "Invalid transaction id or body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/deposits/{transactionID}/reject [post]
// @Security BearerAuth
func NewRejectDepositHandler(svc DepositFinalizer) http.HandlerFunc {
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

		txn, err := svc.RejectDeposit(r.Context(), transactionID, req.Reason)
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

// NewApproveDepositsBulkHandler returns an HTTP handler for approving
// many pending deposits in one call. Items are processed independently.
// @Summary Bulk approve deposits
// @Description Approves each listed deposit independently. One failure never rolls back the others; the counts report the outcome.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.BulkFinalizeRequest true "Transactions to approve"
// @Success 200 {object} handlers.BulkApproveResponse "Counts of approved and failed items"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/deposits/approve-bulk [post]
// @Security BearerAuth
func NewApproveDepositsBulkHandler(svc DepositFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkFinalizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if len(req.TransactionIDs) == 0 {
			respondBadRequest(w, "transaction_ids is required")
			return
		}

		result := svc.ApproveDeposits(r.Context(), req.TransactionIDs)

		respondJSON(w, http.StatusOK, BulkApproveResponse{
			Result:        ok(),
			ApprovedCount: result.Succeeded,
			FailedCount:   result.Failed,
		})
	}
}

// NewRejectDepositsBulkHandler returns an HTTP handler for rejecting
// many pending deposits with a shared reason.
// @Summary Bulk reject deposits
// @Description Rejects each listed deposit independently with the shared reason.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.BulkFinalizeRequest true "Transactions to reject"
// @Success 200 {object} handlers.BulkRejectResponse "Counts of rejected and failed items"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/deposits/reject-bulk [post]
// @Security BearerAuth
func NewRejectDepositsBulkHandler(svc DepositFinalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BulkFinalizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}
		if len(req.TransactionIDs) == 0 {
			respondBadRequest(w, "transaction_ids is required")
			return
		}
		if req.Reason == "" {
			respondBadRequest(w, "Reason is required")
			return
		}

		result := svc.RejectDeposits(r.Context(), req.TransactionIDs, req.Reason)

		respondJSON(w, http.StatusOK, BulkRejectResponse{
			Result:        ok(),
			RejectedCount: result.Succeeded,
			FailedCount:   result.Failed,
		})
	}
}

// NewListPendingHandler returns an HTTP handler for the admin review
// queue of one transaction type.
func NewListPendingHandler(svc PendingLister, txnType models.TransactionType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactions, err := svc.ListPending(r.Context(), txnType)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, TransactionsResponse{
			Result:       ok(),
			Transactions: transactions,
		})
	}
}
