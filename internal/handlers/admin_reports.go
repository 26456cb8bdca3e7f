package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/investflow/investflow/internal/models"
	"github.com/investflow/investflow/internal/services"
)

// ProfitRunner defines the on-demand accrual sweep of the scheduler service.
type ProfitRunner interface {
	RunOnce(ctx context.Context, asOf time.Time) (services.SweepResult, error)
}

// StatsProvider defines the read-only aggregates of the stats service.
type StatsProvider interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	ProfitsByMonth(ctx context.Context) ([]models.MonthlyProfit, error)
	CashFlowSummary(ctx context.Context) ([]models.CashFlowRow, error)
	Ledger(ctx context.Context, limit, offset int) ([]models.AccountingEntryDB, error)
}

// ProfitRunResponse reports one accrual sweep
// swagger:model ProfitRunResponse
type ProfitRunResponse struct {
	Result

	services.SweepResult
}

// AdminStatsResponse represents the platform snapshot
// swagger:model AdminStatsResponse
type AdminStatsResponse struct {
	Result

	Stats *models.AdminStats `json:"stats"`
}

// ProfitsByMonthResponse aggregates posted profit by calendar month
// swagger:model ProfitsByMonthResponse
type ProfitsByMonthResponse struct {
	Result

	Months []models.MonthlyProfit `json:"months"`
}

// CashFlowResponse aggregates completed money movement by calendar month
// swagger:model CashFlowResponse
type CashFlowResponse struct {
	Result

	Months []models.CashFlowRow `json:"months"`
}

// LedgerResponse is a page of double-entry journal rows
// swagger:model LedgerResponse
type LedgerResponse struct {
	Result

	Entries []models.AccountingEntryDB `json:"entries"`
}

// NewRunProfitsHandler returns an HTTP handler for running the accrual
// sweep on demand. The sweep is idempotent, so running it while the
// background scheduler is active is safe.
// @Summary Run profit accrual
// @Description Posts the due monthly profit for every active contract past its next monthly anniversary. Contracts are independent; one failure never blocks the others.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ProfitRunResponse "Sweep counts"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/profits/run [post]
// @Security BearerAuth
func NewRunProfitsHandler(svc ProfitRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.RunOnce(r.Context(), time.Now().UTC())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ProfitRunResponse{
			Result:      ok(),
			SweepResult: result,
		})
	}
}

// NewAdminStatsHandler returns an HTTP handler for the platform snapshot.
// @Summary Platform statistics
// @Description Returns user counts, aggregated balances by bucket, pending queue sizes, active contract count and total profit paid.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminStatsResponse "Platform snapshot"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.AdminStats(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, AdminStatsResponse{
			Result: ok(),
			Stats:  stats,
		})
	}
}

// NewProfitsByMonthHandler returns an HTTP handler aggregating posted
// profit by calendar month.
// @Summary Profits by month
// @Description Returns the sum and count of posted profit rows per calendar month.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ProfitsByMonthResponse "Monthly profit aggregates"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/profits/by-month [get]
// @Security BearerAuth
func NewProfitsByMonthHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months, err := svc.ProfitsByMonth(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, ProfitsByMonthResponse{
			Result: ok(),
			Months: months,
		})
	}
}

// NewCashFlowHandler returns an HTTP handler for the monthly cash-flow
// summary over completed transactions.
// @Summary Cash-flow summary
// @Description Returns completed deposits, withdrawals, refunds and the net flow per calendar month.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.CashFlowResponse "Monthly cash-flow"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/cash-flow [get]
// @Security BearerAuth
func NewCashFlowHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months, err := svc.CashFlowSummary(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, CashFlowResponse{
			Result: ok(),
			Months: months,
		})
	}
}

// NewLedgerHandler returns an HTTP handler for the grand ledger view.
// @Summary Grand ledger
// @Description Returns a page of double-entry journal rows, newest first. Entries of one logical operation share a reference_id.
// @Tags admin
// @Produce json
// @Param limit query int false "Page size, default 100, max 500"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.LedgerResponse "Journal entries"
// @Failure 403 {object} handlers.Result "Admin required"
// @Router /admin/ledger [get]
// @Security BearerAuth
func NewLedgerHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		entries, err := svc.Ledger(r.Context(), limit, offset)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, LedgerResponse{
			Result:  ok(),
			Entries: entries,
		})
	}
}
