package models

// AdminStats is the read-only platform snapshot for the admin dashboard.
type AdminStats struct {
	TotalUsers          int     `json:"total_users" db:"total_users"`
	TotalBalance        float64 `json:"total_balance" db:"total_balance"`
	TotalInvested       float64 `json:"total_invested" db:"total_invested"`
	TotalProfit         float64 `json:"total_profit" db:"total_profit"`
	ActiveContracts     int     `json:"active_contracts" db:"active_contracts"`
	PendingDeposits     int     `json:"pending_deposits" db:"pending_deposits"`
	PendingWithdrawals  int     `json:"pending_withdrawals" db:"pending_withdrawals"`
	PendingRefunds      int     `json:"pending_refunds" db:"pending_refunds"`
	TotalProfitPaid     float64 `json:"total_profit_paid" db:"total_profit_paid"`
	CompletedDeposits   float64 `json:"completed_deposits" db:"completed_deposits"`
	CompletedWithdrawal float64 `json:"completed_withdrawals" db:"completed_withdrawals"`
}

// MonthlyProfit aggregates posted profit by calendar month.
type MonthlyProfit struct {
	Month  string  `json:"month" db:"month"` // YYYY-MM
	Amount float64 `json:"amount" db:"amount"`
	Count  int     `json:"count" db:"count"`
}

// CashFlowRow aggregates completed money movement by calendar month.
type CashFlowRow struct {
	Month       string  `json:"month" db:"month"` // YYYY-MM
	Deposits    float64 `json:"deposits" db:"deposits"`
	Withdrawals float64 `json:"withdrawals" db:"withdrawals"`
	Refunds     float64 `json:"refunds" db:"refunds"`
	NetFlow     float64 `json:"net_flow" db:"net_flow"`
}
