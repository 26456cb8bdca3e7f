package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/investflow/investflow/internal/models"
	"github.com/stretchr/testify/assert"
)

func saveContract(t *testing.T, writer *ContractWriterRepository, userID uuid.UUID, start time.Time, months int) *models.ContractDB {
	contract, err := writer.Save(context.Background(), models.ContractDB{
		ContractID:     uuid.New(),
		UserID:         userID,
		Amount:         1000,
		MonthlyRate:    0.20,
		DurationMonths: months,
		Status:         models.ContractActive,
		StartDate:      start,
		EndDate:        start.AddDate(0, months, 0),
	})
	assert.NoError(t, err)
	return contract
}

func TestContractWriterRepository_Transition(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "alice")
	writer := NewContractWriterRepository(db, nil)

	contract := saveContract(t, writer, userID, time.Now().UTC(), 10)

	t.Run("active to pending_refund", func(t *testing.T) {
		updated, err := writer.Transition(ctx, contract.ContractID,
			[]models.ContractStatus{models.ContractActive}, models.ContractPendingRefund)
		assert.NoError(t, err)
		assert.Equal(t, models.ContractPendingRefund, updated.Status)
	})

	t.Run("wrong source state affects zero rows", func(t *testing.T) {
		_, err := writer.Transition(ctx, contract.ContractID,
			[]models.ContractStatus{models.ContractActive}, models.ContractCompleted)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("pending_refund to refunded", func(t *testing.T) {
		updated, err := writer.Transition(ctx, contract.ContractID,
			[]models.ContractStatus{models.ContractPendingRefund}, models.ContractRefunded)
		assert.NoError(t, err)
		assert.Equal(t, models.ContractRefunded, updated.Status)
	})

	t.Run("terminal state admits nothing", func(t *testing.T) {
		_, err := writer.Transition(ctx, contract.ContractID,
			[]models.ContractStatus{models.ContractActive, models.ContractPendingRefund}, models.ContractCancelled)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestContractWriterRepository_ApplyAccrual(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "bob")
	writer := NewContractWriterRepository(db, nil)

	contract := saveContract(t, writer, userID, time.Now().UTC().AddDate(0, -3, 0), 2)

	first, err := writer.ApplyAccrual(ctx, contract.ContractID, 200)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.MonthsPaid)
	assert.Equal(t, 200.0, first.TotalProfitPaid)
	assert.Equal(t, models.ContractActive, first.Status)

	// Final month completes the contract in the same statement.
	second, err := writer.ApplyAccrual(ctx, contract.ContractID, 200)
	assert.NoError(t, err)
	assert.Equal(t, 2, second.MonthsPaid)
	assert.Equal(t, 400.0, second.TotalProfitPaid)
	assert.Equal(t, models.ContractCompleted, second.Status)

	// A completed contract accrues nothing further.
	_, err = writer.ApplyAccrual(ctx, contract.ContractID, 200)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestContractWriterRepository_UpdateFields(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "carol")
	writer := NewContractWriterRepository(db, nil)

	contract := saveContract(t, writer, userID, time.Now().UTC(), 10)

	rate := 0.25
	updated, err := writer.UpdateFields(ctx, contract.ContractID, &rate, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, updated.MonthlyRate)
	assert.Equal(t, 10, updated.DurationMonths)

	months := 12
	updated, err = writer.UpdateFields(ctx, contract.ContractID, nil, &months, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.25, updated.MonthlyRate)
	assert.Equal(t, 12, updated.DurationMonths)
	assert.Equal(t, contract.StartDate.AddDate(0, 12, 0).Unix(), updated.EndDate.Unix())
}

func TestContractReaderRepository_ListDueForAccrual(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	userID := createUser(t, db, "dave")
	writer := NewContractWriterRepository(db, nil)
	reader := NewContractReaderRepository(db)

	now := time.Now().UTC()

	due := saveContract(t, writer, userID, now.AddDate(0, -2, 0), 10)
	notYet := saveContract(t, writer, userID, now.AddDate(0, 0, -5), 10)
	refunded := saveContract(t, writer, userID, now.AddDate(0, -2, 0), 10)
	_, err := writer.Transition(ctx, refunded.ContractID,
		[]models.ContractStatus{models.ContractActive}, models.ContractPendingRefund)
	assert.NoError(t, err)

	contracts, err := reader.ListDueForAccrual(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, contracts, 1)
	assert.Equal(t, due.ContractID, contracts[0].ContractID)

	// Once the due contract is paid up for the elapsed months it drops
	// out of the queue.
	_, err = writer.ApplyAccrual(ctx, due.ContractID, 200)
	assert.NoError(t, err)
	_, err = writer.ApplyAccrual(ctx, due.ContractID, 200)
	assert.NoError(t, err)

	contracts, err = reader.ListDueForAccrual(ctx, now)
	assert.NoError(t, err)
	assert.Empty(t, contracts)

	// The not-yet-due contract was never touched.
	got, err := reader.GetByID(ctx, notYet.ContractID)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.MonthsPaid)

	t.Run("list by user includes every state", func(t *testing.T) {
		all, err := reader.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
