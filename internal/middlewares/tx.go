package middlewares

import (
	"context"
	"net/http"

	"github.com/investflow/investflow/internal/logger"
	"github.com/jmoiron/sqlx"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// Handlers mark the transaction for rollback when a business operation
// fails partway, which keeps every financial mutation all-or-nothing.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			marker := &rollbackMarker{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, rollbackKey, marker)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)

			if marker.rollback {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to roll back transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

type rollbackKeyType struct{}

var (
	txKey       = contextKey{}
	rollbackKey = rollbackKeyType{}
)

type rollbackMarker struct {
	rollback bool
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// WithTx stores a transaction in the context for callers outside the
// HTTP path, such as the accrual scheduler.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return setTxToContext(ctx, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// MarkRollback flags the request transaction for rollback instead of
// commit. No-op when no transaction middleware is active.
func MarkRollback(ctx context.Context) {
	if marker, ok := ctx.Value(rollbackKey).(*rollbackMarker); ok {
		marker.rollback = true
	}
}
