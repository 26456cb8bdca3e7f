package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
)

// WalletGetter defines the interface that the wallet service must implement.
type WalletGetter interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// TransactionLister defines the interface for listing a user's transactions.
type TransactionLister interface {
	ListUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// WalletResponse represents the caller's wallet balances
// swagger:model WalletResponse
type WalletResponse struct {
	Result

	Wallet *models.WalletDB `json:"wallet"`
}

// TransactionsResponse represents the caller's transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Result

	Transactions []models.TransactionDB `json:"transactions"`
}

// NewGetWalletHandler returns an HTTP handler for fetching the caller's
// wallet, creating an empty one on first use.
// @Summary Get wallet
// @Description Returns the caller's wallet with total, invested and profit balances. Creates an empty wallet on first use.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletResponse "Wallet balances"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		wallet, err := svc.GetOrCreate(r.Context(), claims.UserID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, WalletResponse{
			Result: ok(),
			Wallet: wallet,
		})
	}
}

// NewListTransactionsHandler returns an HTTP handler for the caller's
// transaction history, newest first.
// @Summary List transactions
// @Description Returns the caller's transactions of every type and status, newest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.Result "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, authed := callerClaims(w, r)
		if !authed {
			return
		}

		transactions, err := svc.ListUserTransactions(r.Context(), claims.UserID)
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
