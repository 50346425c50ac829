package customer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"hostal/internal/database"
	"hostal/internal/domain"
	"hostal/internal/repository"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:customer_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewService(repository.NewCustomerRepository(db)), db
}

func TestCreateRejectsDuplicateDocument(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	first := &domain.Customer{FullName: "Ana Condori", DocumentNumber: "CI-1000"}
	require.NoError(t, svc.Create(ctx, first))

	dup := &domain.Customer{FullName: "Otra Persona", DocumentNumber: "CI-1000"}
	assert.ErrorIs(t, svc.Create(ctx, dup), ErrDuplicateDocument)

	assert.ErrorIs(t, svc.Create(ctx, &domain.Customer{FullName: "Sin Documento"}), ErrValidation)
}

func TestSearchRequiresThreeChars(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.Search(context.Background(), "an", 10)
	assert.ErrorIs(t, err, ErrQueryTooShort)
}

func TestSearchJoinsStayAggregates(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	customer := &domain.Customer{
		FullName:       "Ana Condori",
		DocumentNumber: "CI-1001",
		TotalSpent:     decimal.RequireFromString("350.00"),
	}
	require.NoError(t, db.Create(customer).Error)

	checkOut := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Create(&domain.Booking{
		BookingCode: "BK1", RoomID: 1, CustomerID: customer.ID,
		Status: domain.BookingCheckedOut, CheckOut: &checkOut,
	}).Error)
	require.NoError(t, db.Create(&domain.Booking{
		BookingCode: "BK2", RoomID: 1, CustomerID: customer.ID,
		Status: domain.BookingCheckedIn,
	}).Error)

	rows, err := svc.Search(ctx, "Condori", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].TotalBookings, "only completed stays count")
	require.NotNil(t, rows[0].LastVisit)
}
