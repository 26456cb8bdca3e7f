package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfitDB represents one monthly profit accrual for a contract.
// Uniqueness over (contract_id, month_number) prevents double accrual.
type ProfitDB struct {
	ProfitID    uuid.UUID `json:"profit_id" db:"profit_id"`
	ContractID  uuid.UUID `json:"contract_id" db:"contract_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	MonthNumber int       `json:"month_number" db:"month_number"` // 1..duration_months
	Amount      float64   `json:"amount" db:"amount"`
	PaidAt      time.Time `json:"paid_at" db:"paid_at"`
}
