package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is a closed enumeration of financial transaction kinds.
type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdrawal  TransactionType = "withdrawal"
	TransactionProfit      TransactionType = "profit"
	TransactionInvestment  TransactionType = "investment"
	TransactionRefund      TransactionType = "refund"
	TransactionAdminCredit TransactionType = "admin_credit"
	TransactionAssurance   TransactionType = "assurance"
)

// TransactionStatus is a closed enumeration of transaction states.
// Only pending rows may transition; completed and rejected are terminal.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRejected  TransactionStatus = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionCompleted || s == TransactionRejected
}

// TransactionDB represents a financial transaction row in the database.
type TransactionDB struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	UserID        uuid.UUID         `json:"user_id" db:"user_id"`               // Owner of the transaction
	Type          TransactionType   `json:"type" db:"type"`                     // Kind of transaction
	Amount        float64           `json:"amount" db:"amount"`                 // Monetary value, always positive
	Currency      string            `json:"currency" db:"currency"`             // Currency code
	Status        TransactionStatus `json:"status" db:"status"`                 // Lifecycle state
	Method        *string           `json:"method,omitempty" db:"method"`       // Payment method chosen by the user
	ReferenceID   *string           `json:"reference_id,omitempty" db:"reference_id"`
	Description   *string           `json:"description,omitempty" db:"description"`
	RejectReason  *string           `json:"reject_reason,omitempty" db:"reject_reason"` // Reason surfaced to the user on rejection
	ProofURL      *string           `json:"proof_url,omitempty" db:"proof_url"`         // Payment proof reference (external upload)
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// TransactionEvent is the message published to Kafka when a transaction
// reaches a terminal state or profit is posted.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Unique identifier of the finalized transaction
	Timestamp     int64   `json:"timestamp"`      // Unix timestamp (seconds) of the event
	Amount        float64 `json:"amount"`         // Monetary value of the transaction
	UserID        string  `json:"user_id"`        // Identifier of the affected user
	Operation     string  `json:"operation"`      // e.g. "deposit_approved", "withdrawal_rejected", "profit_accrued"
}
