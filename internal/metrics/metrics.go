package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DepositsApproved counts deposit transactions moved to completed.
var DepositsApproved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "investflow_deposits_approved_total",
	Help: "Number of deposit transactions approved.",
})

// WithdrawalsApproved counts withdrawal transactions moved to completed.
var WithdrawalsApproved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "investflow_withdrawals_approved_total",
	Help: "Number of withdrawal transactions approved.",
})

// TransactionsRejected counts transactions moved to rejected, by type.
var TransactionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "investflow_transactions_rejected_total",
	Help: "Number of transactions rejected, labeled by transaction type.",
}, []string{"type"})

// ProfitsAccrued counts monthly profit postings.
var ProfitsAccrued = promauto.NewCounter(prometheus.CounterOpts{
	Name: "investflow_profits_accrued_total",
	Help: "Number of monthly profit accruals posted.",
})

// ContractsCreated counts new investment contracts.
var ContractsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "investflow_contracts_created_total",
	Help: "Number of investment contracts created.",
})

// RateLimited counts requests refused by the submission limiter.
var RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "investflow_rate_limited_total",
	Help: "Number of requests refused by the rate limiter, labeled by action.",
}, []string{"action"})
