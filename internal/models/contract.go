package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus is a closed enumeration of contract lifecycle states.
type ContractStatus string

const (
	ContractActive        ContractStatus = "active"
	ContractCompleted     ContractStatus = "completed"
	ContractPendingRefund ContractStatus = "pending_refund"
	ContractRefunded      ContractStatus = "refunded"
	ContractCancelled     ContractStatus = "cancelled"
)

// Locked reports whether the contract still holds invested principal.
// The wallet's invested_balance equals the sum of amounts over locked
// contracts of the user.
func (s ContractStatus) Locked() bool {
	return s == ContractActive || s == ContractPendingRefund
}

// ContractDB represents a fixed-term investment contract row.
// The principal amount is immutable after creation; monthly_rate and
// duration_months are frozen on the row at creation time from settings.
type ContractDB struct {
	ContractID      uuid.UUID      `json:"contract_id" db:"contract_id"`             // Unique contract identifier
	UserID          uuid.UUID      `json:"user_id" db:"user_id"`                     // Owner of the contract
	Amount          float64        `json:"amount" db:"amount"`                       // Principal, immutable
	MonthlyRate     float64        `json:"monthly_rate" db:"monthly_rate"`           // Profit rate applied each month
	DurationMonths  int            `json:"duration_months" db:"duration_months"`     // Term length in months
	MonthsPaid      int            `json:"months_paid" db:"months_paid"`             // Number of monthly accruals posted
	TotalProfitPaid float64        `json:"total_profit_paid" db:"total_profit_paid"` // Cumulative profit credited
	Status          ContractStatus `json:"status" db:"status"`
	StartDate       time.Time      `json:"start_date" db:"start_date"`
	EndDate         time.Time      `json:"end_date" db:"end_date"` // start_date + duration_months
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}
