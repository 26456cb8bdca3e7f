package models

import (
	"time"

	"github.com/google/uuid"
)

// Default wallet currency
const USD = "USD"

// Wallet balance buckets
const (
	BucketTotal    = "total"
	BucketInvested = "invested"
	BucketProfit   = "profit"
)

// WalletDB represents a wallet row in the database.
// Each user owns exactly one wallet with three balance buckets:
// total (uninvested, depositable), invested (locked in contracts)
// and profit (withdrawable accrued returns).
type WalletDB struct {
	WalletID        uuid.UUID `json:"wallet_id" db:"wallet_id"`               // Unique wallet identifier
	UserID          uuid.UUID `json:"user_id" db:"user_id"`                   // Identifier of the wallet's owner
	TotalBalance    float64   `json:"total_balance" db:"total_balance"`       // Uninvested funds available for contracts
	InvestedBalance float64   `json:"invested_balance" db:"invested_balance"` // Principal locked in active contracts
	ProfitBalance   float64   `json:"profit_balance" db:"profit_balance"`     // Accrued profit available for withdrawal
	Currency        string    `json:"currency" db:"currency"`                 // Currency code (e.g., USD)
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Timestamp when the wallet was created
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`             // Timestamp of the last wallet update
}
