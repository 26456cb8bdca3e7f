package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// ContractCreator defines the interface that the contract service must implement.
type ContractCreator interface {
	Create(ctx context.Context, userID uuid.UUID, amount float64) (*models.ContractDB, error)
}

// ContractLister defines the interface for listing a user's contracts.
type ContractLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ContractDB, error)
}

// RefundRequester defines the interface for requesting an early refund.
type RefundRequester interface {
	RequestRefund(ctx context.Context, contractID, userID uuid.UUID) (*models.ContractDB, error)
}

// CreateContractRequest represents the JSON body for creating a contract
// swagger:model CreateContractRequest
type CreateContractRequest struct {
	// Principal to invest from the total balance
	// required: true
	// default: 1000.0
	Amount float64 `json:"amount"`
}

// ContractResponse represents a single contract
// swagger:model ContractResponse
type ContractResponse struct {
	Result

	Contract *models.ContractDB `json:"contract"`
}

// ContractsResponse represents the caller's contracts
// swagger:model ContractsResponse
type ContractsResponse struct {
	Result

	Contracts []models.ContractDB `json:"contracts"`
}

// NewCreateContractHandler returns an HTTP handler for creating a
// fixed-term investment contract from available total balance.
// @Summary Create a contract
// @Description Moves the amount from the total to the invested balance and opens an active fixed-term contract. Rate and duration come from settings and are frozen on the contract.
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body handlers.CreateContractRequest true "Create Contract Request"
// @Success 200 {object} handlers.ContractResponse "Contract created"
// @Failure 400 {object} handlers.Result "Invalid request body"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /contracts [post]
// @Security BearerAuth
func NewCreateContractHandler(svc ContractCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		var req CreateContractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "Invalid request body")
			return
		}

		contract, err := svc.Create(r.Context(), claims.UserID, req.Amount)
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

// NewListContractsHandler returns an HTTP handler for the caller's
// contracts, newest first.
// @Summary List contracts
// @Description Returns all of the caller's contracts in every lifecycle state.
// @Tags contracts
// @Produce json
// @Success 200 {object} handlers.ContractsResponse "Contracts"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /contracts [get]
// @Security BearerAuth
func NewListContractsHandler(svc ContractLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		contracts, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ContractsResponse{
			Result:    ok(),
			Contracts: contracts,
		})
	}
}

// NewRequestRefundHandler returns an HTTP handler for requesting an
// early refund of an active contract. Balances stay untouched until an
// admin approves.
// @Summary Request a refund
// @Description Moves the caller's active contract to pending_refund. Settlement happens on admin approval.
// @Tags contracts
// @Produce json
// @Param contractID path string true "Contract ID"
// @Success 200 {object} handlers.ContractResponse "Contract pending refund"
// @Failure 400 {object} handlers.Result "Invalid contract id"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /contracts/{contractID}/refund [post]
// @Security BearerAuth
func NewRequestRefundHandler(svc RefundRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		contractID, err := uuidParam(r, "contractID")
		if err != nil {
			respondBadRequest(w, "Invalid contract id")
			return
		}

		contract, err := svc.RequestRefund(r.Context(), contractID, claims.UserID)
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
