package refund

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"hostal/internal/database"
	"hostal/internal/domain"
)

type verifierStub struct {
	adminID int64
	fail    bool
}

func (v *verifierStub) VerifyAdminPassword(_ context.Context, _, _ string) (int64, error) {
	if v.fail {
		return 0, ErrAdminAuthorization
	}
	return v.adminID, nil
}

type senderStub struct{}

func (senderStub) Notify(context.Context, string, any) bool { return true }

func setupService(t *testing.T) (*Service, *gorm.DB, *verifierStub) {
	t.Helper()
	dsn := fmt.Sprintf("file:refund_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	verifier := &verifierStub{adminID: 99}
	return NewService(db, verifier, senderStub{}, zerolog.Nop()), db, verifier
}

func seedPaidBooking(t *testing.T, db *gorm.DB, paid string) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		BookingCode: fmt.Sprintf("BK-%s", t.Name()),
		RoomID:      1,
		CustomerID:  1,
		Status:      domain.BookingCheckedOut,
		TotalAmount: decimal.RequireFromString(paid),
		AmountPaid:  decimal.RequireFromString(paid),
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func TestIssueRefundDecreasesAmountPaid(t *testing.T) {
	svc, db, _ := setupService(t)
	booking := seedPaidBooking(t, db, "150.00")

	refund, err := svc.Issue(context.Background(), IssueRequest{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("50.00"),
		Reason:        "cobro duplicado",
		AdminUsername: "admin",
		AdminPassword: "secreto123",
		CashierID:     1,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 99, refund.AuthorizedBy)
	assert.Equal(t, domain.RefundApproved, refund.Status)

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, "100.00", reloaded.AmountPaid.StringFixed(2))
	// total stays immutable after checkout
	assert.Equal(t, "150.00", reloaded.TotalAmount.StringFixed(2))
}

func TestIssueRefundExceedsPaid(t *testing.T) {
	svc, db, _ := setupService(t)
	booking := seedPaidBooking(t, db, "80.00")

	_, err := svc.Issue(context.Background(), IssueRequest{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("80.01"),
		Reason:        "error",
		AdminUsername: "admin",
		AdminPassword: "secreto123",
	})
	require.ErrorIs(t, err, ErrRefundExceedsPaid)

	var count int64
	require.NoError(t, db.Model(&domain.Refund{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestIssueRefundRequiresAdminAuthorization(t *testing.T) {
	svc, db, verifier := setupService(t)
	booking := seedPaidBooking(t, db, "80.00")
	verifier.fail = true

	_, err := svc.Issue(context.Background(), IssueRequest{
		BookingID:     booking.ID,
		Amount:        decimal.RequireFromString("10.00"),
		Reason:        "error",
		AdminUsername: "admin",
		AdminPassword: "incorrecta",
	})
	assert.ErrorIs(t, err, ErrAdminAuthorization)
}

func TestListByBooking(t *testing.T) {
	svc, db, _ := setupService(t)
	booking := seedPaidBooking(t, db, "100.00")
	ctx := context.Background()

	for _, amt := range []string{"10.00", "20.00"} {
		_, err := svc.Issue(ctx, IssueRequest{
			BookingID:     booking.ID,
			Amount:        decimal.RequireFromString(amt),
			Reason:        "ajuste",
			AdminUsername: "admin",
			AdminPassword: "secreto123",
		})
		require.NoError(t, err)
	}

	refunds, err := svc.ListByBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Len(t, refunds, 2)
}
