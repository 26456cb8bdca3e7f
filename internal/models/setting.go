package models

import "time"

// Setting keys read by the core. The settings table is owned by an
// external admin surface; the core only reads it.
const (
	SettingMinimumDeposit      = "minimum_deposit_amount"
	SettingMinimumWithdrawal   = "minimum_withdrawal_amount"
	SettingContractDuration    = "contract_duration_months"
	SettingContractMonthlyRate = "contract_monthly_rate"
)

// Business defaults applied when a setting key is absent.
const (
	DefaultMinimumDeposit    = 50.0
	DefaultMinimumWithdrawal = 10.0
	DefaultDurationMonths    = 10
	DefaultMonthlyRate       = 0.20
)

// SettingDB represents a key/value configuration row.
type SettingDB struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
