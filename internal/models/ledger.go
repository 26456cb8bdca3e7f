package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Well-known ledger account names. Per-user accounts are derived with
// the helper functions below so entries can be grouped by user.
const (
	AccountCash          = "cash"
	AccountCapitalPool   = "capital_pool"
	AccountProfitExpense = "profit_expense"
)

// UserTotalAccount returns the ledger account name for a user's
// uninvested balance bucket.
func UserTotalAccount(userID uuid.UUID) string {
	return fmt.Sprintf("user_total:%s", userID)
}

// UserInvestedAccount returns the ledger account name for a user's
// invested balance bucket.
func UserInvestedAccount(userID uuid.UUID) string {
	return fmt.Sprintf("user_invested:%s", userID)
}

// UserProfitAccount returns the ledger account name for a user's
// profit balance bucket.
func UserProfitAccount(userID uuid.UUID) string {
	return fmt.Sprintf("user_profit:%s", userID)
}

// AccountingEntryDB is one immutable double-entry journal row. Entries
// belonging to the same logical operation share a reference_id; within
// that group debit totals equal credit totals.
type AccountingEntryDB struct {
	EntryID         uuid.UUID `json:"entry_id" db:"entry_id"`
	ReferenceID     uuid.UUID `json:"reference_id" db:"reference_id"` // Groups the legs of one operation
	DebitAccount    string    `json:"debit_account" db:"debit_account"`
	CreditAccount   string    `json:"credit_account" db:"credit_account"`
	Amount          float64   `json:"amount" db:"amount"`
	Description     string    `json:"description" db:"description"`
	TransactionDate time.Time `json:"transaction_date" db:"transaction_date"`
}
