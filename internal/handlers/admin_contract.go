package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/services"
)

// RefundSettler defines the admin refund operations of the contract service.
type RefundSettler interface {
	ApproveRefund(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error)
	RejectRefund(ctx context.Context, contractID uuid.UUID, reason string) (*models.ContractDB, error)
}

// ContractAdmin defines the admin override operations of the contract service.
type ContractAdmin interface {
	Cancel(ctx context.Context, contractID uuid.UUID) (*models.ContractDB, error)
	AdminUpdate(ctx context.Context, contractID uuid.UUID, updates services.ContractUpdates) (*models.ContractDB, error)
}

// NewApproveRefundHandler returns an HTTP handler for settling an early
// termination. The refund is the principal minus profit already paid,
// floored at zero.
// @Summary Approve a refund
// @Description Settles a pending refund: the contract moves to refunded, its principal leaves the invested balance and the refund amount (principal minus profit already paid) credits the total balance.
// @Tags admin
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} handlers.ContractResponse "Refund settled"
// @Failure 400 {object} handlers.Result "Invalid contract id"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/refunds/{contractID}/approve [post]
// @Security BearerAuth
func NewApproveRefundHandler(svc RefundSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractID, err := uuidParam(r, "contractID")
		if err != nil {
			respondBadRequest(w, "Invalid contract id")
			return
		}

		contract, err := svc.ApproveRefund(r.Context(), contractID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ContractResponse{
			Result:   ok(),
			Contract: contract,
		})
	}
}

// NewRejectRefundHandler returns an HTTP handler for rejecting a refund
// request, returning the contract to active.
// @Summary Reject a refund
// @Description Returns a pending_refund contract to active. No balance change.
// @Tags admin
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param request body handlers.RejectRequest true "Rejection reason"
// @Success 200 {object} handlers.ContractResponse "Refund rejected"
// @Failure 400 {object} handlers.Result "Invalid contract id or body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/refunds/{contractID}/reject [post]
// @Security BearerAuth
func NewRejectRefundHandler(svc RefundSettler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractID, err := uuidParam(r, "contractID")
		if err != nil {
			respondBadRequest(w, "Invalid contract id")
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

		contract, err := svc.RejectRefund(r.Context(), contractID, req.Reason)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ContractResponse{
			Result:   ok(),
			Contract: contract,
		})
	}
}

// NewCancelContractHandler returns an HTTP handler for the admin
// cancellation override: the full principal returns to the total balance.
// @Summary Cancel a contract
// @Description Cancels an active or pending_refund contract and returns its full principal from the invested to the total balance.
// @Tags admin
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} handlers.ContractResponse "Contract cancelled"
// @Failure 400 {object} handlers.Result "Invalid contract id"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/contracts/{contractID}/cancel [post]
// @Security BearerAuth
func NewCancelContractHandler(svc ContractAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractID, err := uuidParam(r, "contractID")
		if err != nil {
			respondBadRequest(w, "Invalid contract id")
			return
		}

		contract, err := svc.Cancel(r.Context(), contractID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ContractResponse{
			Result:   ok(),
			Contract: contract,
		})
	}
}

// NewUpdateContractHandler returns an HTTP handler for the admin
// field override. The principal amount is immutable; status changes must
// follow the lifecycle.
// @Summary Update a contract
// @Description Overrides monthly_rate, duration_months or status of a contract. Omitted fields are left untouched; the principal amount cannot change.
// @Tags admin
// @Accept json
// @Produce json
// @Param contractID path string true "Contract ID"
// @Param request body services.ContractUpdates true "Fields to update"
// @Success 200 {object} handlers.ContractResponse "Contract updated"
// @Failure 400 {object} handlers.Result "Invalid contract id or body"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/contracts/{contractID} [patch]
// @Security BearerAuth
func NewUpdateContractHandler(svc ContractAdmin) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contractID, err := uuidParam(r, "contractID")
		if err != nil {
			respondBadRequest(w, "Invalid contract id")
			return
		}

		var updates services.ContractUpdates
		if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		contract, err := svc.AdminUpdate(r.Context(), contractID, updates)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ContractResponse{
			Result:   ok(),
			Contract: contract,
		})
	}
}
