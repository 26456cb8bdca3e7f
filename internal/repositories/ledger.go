package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/logger"
	"github.com/investflow/investflow/internal/models"
	"github.com/jmoiron/sqlx"
)

// LedgerWriterRepository appends accounting entries. The journal is
// append-only: there is no update or delete path.
type LedgerWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLedgerWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LedgerWriterRepository {
	return &LedgerWriterRepository{db: db, txGetter: txGetter}
}

func (r *LedgerWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Record appends one balanced journal entry.
func (r *LedgerWriterRepository) Record(ctx context.Context, entry models.AccountingEntryDB) error {
	query := `
		INSERT INTO accounting_entries (entry_id, reference_id, debit_account, credit_account, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{entry.EntryID, entry.ReferenceID, entry.DebitAccount, entry.CreditAccount, entry.Amount, entry.Description}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", entry.EntryID,
		"error", err,
	)

	return err
}

// LedgerReaderRepository handles journal read operations
type LedgerReaderRepository struct {
	db *sqlx.DB
}

func NewLedgerReaderRepository(db *sqlx.DB) *LedgerReaderRepository {
	return &LedgerReaderRepository{db: db}
}

// List returns journal entries ordered so that the legs of one logical
// operation (shared reference_id) stay together, newest operation first.
func (r *LedgerReaderRepository) List(ctx context.Context, limit, offset int) ([]models.AccountingEntryDB, error) {
	const query = `
		SELECT entry_id, reference_id, debit_account, credit_account, amount, description, transaction_date
		FROM accounting_entries
		ORDER BY transaction_date DESC, reference_id, entry_id
		LIMIT $1 OFFSET $2
	`

	var entries []models.AccountingEntryDB
	err := r.db.SelectContext(ctx, &entries, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// ListByReference returns the legs of one logical operation.
func (r *LedgerReaderRepository) ListByReference(ctx context.Context, referenceID uuid.UUID) ([]models.AccountingEntryDB, error) {
	const query = `
		SELECT entry_id, reference_id, debit_account, credit_account, amount, description, transaction_date
		FROM accounting_entries
		WHERE reference_id = $1
		ORDER BY entry_id
	`

	var entries []models.AccountingEntryDB
	err := r.db.SelectContext(ctx, &entries, query, referenceID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{referenceID},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
