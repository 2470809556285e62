package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educrm/models"
)

func TestPaymentCreateThenGetByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	created, err := svc.Create(CreatePaymentInput{
		StudentID: student.ID,
		Amount:    40000,
		Status:    "paid",
		Method:    "card",
	})
	require.NoError(t, err)
	require.False(t, created.Date.IsZero())
	assert.Equal(t, "Иван Петров", created.StudentName)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.StudentID)
	assert.Equal(t, 40000.0, got.Amount)
	assert.Equal(t, "paid", got.Status)
	assert.Equal(t, "card", got.Method)
	assert.Equal(t, "Иван Петров", got.StudentName)
}

func TestPaymentCreateRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	for _, amount := range []float64{0, -1} {
		_, err := svc.Create(CreatePaymentInput{
			StudentID: student.ID,
			Amount:    amount,
			Status:    "paid",
			Method:    "card",
		})
		require.True(t, errors.Is(err, ErrInvalidAmount), "amount %v", amount)
	}

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count, "nothing inserted")
}

func TestPaymentUpdateRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	created, err := svc.Create(CreatePaymentInput{
		StudentID: student.ID,
		Amount:    1000,
		Status:    "pending",
		Method:    "transfer",
	})
	require.NoError(t, err)

	_, err = svc.Update(created.ID, UpdatePaymentInput{Amount: floatPtr(0)})
	require.True(t, errors.Is(err, ErrInvalidAmount))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Amount)
}

func TestPaymentEmptyUpdateIsNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	created, err := svc.Create(CreatePaymentInput{
		StudentID: student.ID,
		Amount:    500,
		Status:    "pending",
		Method:    "card",
	})
	require.NoError(t, err)

	got, err := svc.Update(created.ID, UpdatePaymentInput{})
	require.NoError(t, err)
	assert.Equal(t, created.Amount, got.Amount)
	assert.Equal(t, created.Status, got.Status)
}

func TestPaymentGetAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	// Insert directly so the dates are distinct and deterministic.
	old := models.Payment{ID: uuid.New(), StudentID: student.ID, Amount: 100, Date: timeAgo(48 * time.Hour), Status: "paid", Method: "card"}
	recent := models.Payment{ID: uuid.New(), StudentID: student.ID, Amount: 200, Date: timeAgo(time.Hour), Status: "paid", Method: "card"}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)

	payments, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 200.0, payments[0].Amount)
	assert.Equal(t, 100.0, payments[1].Amount)
	assert.Equal(t, "Иван Петров", payments[0].StudentName)
}

func TestPaymentDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(db)
	student := seedStudent(t, db, "Иван Петров")

	created, err := svc.Create(CreatePaymentInput{
		StudentID: student.ID,
		Amount:    500,
		Status:    "paid",
		Method:    "card",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}
