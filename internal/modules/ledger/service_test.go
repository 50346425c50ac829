package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"hostal/internal/database"
	"hostal/internal/domain"
	"hostal/internal/repository"
)

type guardStub struct {
	blocked bool
	reason  string
}

func (g *guardStub) IsBlocked(_ context.Context, _ *gorm.DB, _ string) (bool, string, error) {
	return g.blocked, g.reason, nil
}

type senderStub struct {
	kinds []string
	fail  bool
}

func (s *senderStub) Notify(_ context.Context, kind string, _ any) bool {
	s.kinds = append(s.kinds, kind)
	return !s.fail
}

func setupService(t *testing.T) (*Service, *gorm.DB, *guardStub, *senderStub) {
	t.Helper()
	dsn := fmt.Sprintf("file:ledger_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	guard := &guardStub{}
	sender := &senderStub{}
	svc := NewService(db, repository.NewBookingRepository(db), guard, sender, zerolog.Nop())
	return svc, db, guard, sender
}

var roomSeq atomic.Int64

func seedRoom(t *testing.T, db *gorm.DB, base, p3h, p6h string) *domain.Room {
	t.Helper()
	room := &domain.Room{
		RoomNumber:       fmt.Sprintf("R%d", roomSeq.Add(1)),
		RoomType:         "matrimonial",
		Status:           domain.RoomAvailable,
		BasePrice:        dec(base),
		ShortStay3hPrice: dec(p3h),
		ShortStay6hPrice: dec(p6h),
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedCustomer(t *testing.T, db *gorm.DB, doc string) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{FullName: "Maria Flores", DocumentNumber: doc}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.StringFixed(2))
}

func checkIn(t *testing.T, svc *Service, roomID, customerID int64, expected time.Time) *domain.Booking {
	t.Helper()
	booking, err := svc.CheckIn(context.Background(), CheckInRequest{
		CustomerID:       customerID,
		RoomID:           roomID,
		StayKind:         domain.StayDaily,
		NumberOfNights:   1,
		CashierID:        1,
		ExpectedCheckout: expected,
	})
	require.NoError(t, err)
	return booking
}

func TestCheckInDailyPricing(t *testing.T) {
	svc, db, _, sender := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-100")

	booking, err := svc.CheckIn(context.Background(), CheckInRequest{
		CustomerID:       customer.ID,
		RoomID:           room.ID,
		StayKind:         domain.StayDaily,
		NumberOfNights:   2,
		CashierID:        1,
		ExpectedCheckout: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(booking.BookingCode, "BK"))
	assert.Equal(t, domain.BookingCheckedIn, booking.Status)
	assertMoney(t, "200.00", booking.BasePrice)
	assertMoney(t, "200.00", booking.TotalAmount)
	assertMoney(t, "200.00", booking.Balance())

	var reloaded domain.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	assert.Equal(t, domain.RoomOccupied, reloaded.Status)
	assert.Contains(t, sender.kinds, "booking.checked_in")
}

func TestCheckInHourlyNormalization(t *testing.T) {
	svc, db, _, _ := setupService(t)
	customer := seedCustomer(t, db, "CI-101")
	expected := time.Now().Add(6 * time.Hour)

	cases := []struct {
		hours     int
		wantKind  domain.StayKind
		wantPrice string
	}{
		{3, domain.Stay3Hours, "30.00"},
		{6, domain.Stay6Hours, "50.00"},
		{5, domain.StayHourly, "50.00"}, // 30/3 per hour * 5
	}
	for _, tc := range cases {
		room := seedRoom(t, db, "100.00", "30.00", "50.00")
		booking, err := svc.CheckIn(context.Background(), CheckInRequest{
			CustomerID:       customer.ID,
			RoomID:           room.ID,
			StayKind:         domain.StayHourly,
			NumberOfHours:    tc.hours,
			CashierID:        1,
			ExpectedCheckout: expected,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.wantKind, booking.StayKind, "hours=%d", tc.hours)
		assertMoney(t, tc.wantPrice, booking.BasePrice)
	}
}

func TestCheckInRoomUnavailable(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	first := seedCustomer(t, db, "CI-102")
	second := seedCustomer(t, db, "CI-103")
	expected := time.Now().Add(24 * time.Hour)

	checkIn(t, svc, room.ID, first.ID, expected)

	_, err := svc.CheckIn(context.Background(), CheckInRequest{
		CustomerID:       second.ID,
		RoomID:           room.ID,
		StayKind:         domain.StayDaily,
		CashierID:        1,
		ExpectedCheckout: expected,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestCheckInGeneratesDistinctCodes(t *testing.T) {
	svc, db, _, _ := setupService(t)
	customer := seedCustomer(t, db, "CI-110")
	expected := time.Now().Add(24 * time.Hour)

	// Back-to-back check-ins land in the same millisecond; the codes
	// must still differ.
	codes := map[string]bool{}
	for i := 0; i < 5; i++ {
		room := seedRoom(t, db, "100.00", "30.00", "50.00")
		booking := checkIn(t, svc, room.ID, customer.ID, expected)
		assert.True(t, strings.HasPrefix(booking.BookingCode, "BK"))
		codes[booking.BookingCode] = true
	}
	assert.Len(t, codes, 5)
}

func TestCheckInConcurrentSingleWinner(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	first := seedCustomer(t, db, "CI-111")
	second := seedCustomer(t, db, "CI-112")
	expected := time.Now().Add(24 * time.Hour)

	errs := make(chan error, 2)
	for _, customerID := range []int64{first.ID, second.ID} {
		go func(id int64) {
			_, err := svc.CheckIn(context.Background(), CheckInRequest{
				CustomerID:       id,
				RoomID:           room.ID,
				StayKind:         domain.StayDaily,
				CashierID:        1,
				ExpectedCheckout: expected,
			})
			errs <- err
		}(customerID)
	}

	var won, lost int
	for i := 0; i < 2; i++ {
		if err := <-errs; err == nil {
			won++
		} else {
			require.ErrorIs(t, err, ErrRoomUnavailable)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	var reloaded domain.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	assert.Equal(t, domain.RoomOccupied, reloaded.Status)

	var bookings int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&bookings).Error)
	assert.EqualValues(t, 1, bookings)
}

func TestCheckInBlockedCustomer(t *testing.T) {
	svc, db, guard, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-104")
	guard.blocked = true
	guard.reason = "prior incident"

	_, err := svc.CheckIn(context.Background(), CheckInRequest{
		CustomerID:       customer.ID,
		RoomID:           room.ID,
		StayKind:         domain.StayDaily,
		CashierID:        1,
		ExpectedCheckout: time.Now().Add(24 * time.Hour),
	})
	require.ErrorIs(t, err, ErrCustomerBlocked)
	assert.Contains(t, err.Error(), "prior incident")

	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterGuestOneShot(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "80.00", "30.00", "50.00")

	booking, err := svc.RegisterGuest(context.Background(), RegisterGuestRequest{
		FullName:         "Jorge Mamani",
		DocumentNumber:   "CI-200",
		RoomID:           room.ID,
		StayKind:         domain.StayDaily,
		NumberOfNights:   1,
		CashierID:        1,
		ExpectedCheckout: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, booking.Customer)
	assert.Equal(t, "CI-200", booking.Customer.DocumentNumber)
	assertMoney(t, "80.00", booking.TotalAmount)

	var customer domain.Customer
	require.NoError(t, db.Where("document_number = ?", "CI-200").First(&customer).Error)
}

func TestRegisterGuestBlockedCreatesNothing(t *testing.T) {
	svc, db, guard, _ := setupService(t)
	seedRoom(t, db, "80.00", "30.00", "50.00")
	guard.blocked = true
	guard.reason = "unpaid bill"

	_, err := svc.RegisterGuest(context.Background(), RegisterGuestRequest{
		FullName:         "Jorge Mamani",
		DocumentNumber:   "CI-201",
		RoomID:           1,
		StayKind:         domain.StayDaily,
		CashierID:        1,
		ExpectedCheckout: time.Now().Add(24 * time.Hour),
	})
	require.ErrorIs(t, err, ErrCustomerBlocked)

	var customers, bookings int64
	require.NoError(t, db.Model(&domain.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&domain.Booking{}).Count(&bookings).Error)
	assert.Zero(t, customers)
	assert.Zero(t, bookings)
}

func TestAddChargesProductTaxAndStock(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-300")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	product := &domain.Product{
		Name:           "Agua 2L",
		UnitPrice:      dec("10.00"),
		TaxRate:        dec("13.00"),
		TrackInventory: true,
		StockQuantity:  5,
		IsActive:       true,
	}
	require.NoError(t, db.Create(product).Error)

	total, err := svc.AddCharges(context.Background(), AddChargesRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Items:     []ChargeItem{{ProductID: &product.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	// 10.00 * 2 + 13% tax
	assertMoney(t, "22.60", total)

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assertMoney(t, "22.60", reloaded.AdditionalCharges)
	assertMoney(t, "122.60", reloaded.TotalAmount)

	var stocked domain.Product
	require.NoError(t, db.First(&stocked, product.ID).Error)
	assert.Equal(t, 3, stocked.StockQuantity)
}

func TestAddChargesInsufficientStockRollsBack(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-301")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	soap := &domain.Product{Name: "Jabón", UnitPrice: dec("5.00"), IsActive: true}
	require.NoError(t, db.Create(soap).Error)
	soda := &domain.Product{
		Name: "Refresco", UnitPrice: dec("8.00"),
		TrackInventory: true, StockQuantity: 1, IsActive: true,
	}
	require.NoError(t, db.Create(soda).Error)

	_, err := svc.AddCharges(context.Background(), AddChargesRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Items: []ChargeItem{
			{ProductID: &soap.ID, Quantity: 1},
			{ProductID: &soda.ID, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	var charges int64
	require.NoError(t, db.Model(&domain.BookingCharge{}).Count(&charges).Error)
	assert.Zero(t, charges, "first line must roll back with the failing one")

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assertMoney(t, "100.00", reloaded.TotalAmount)
}

func TestAddChargesIdempotentReplay(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-302")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	req := AddChargesRequest{
		BookingID:      booking.ID,
		CashierID:      1,
		IdempotencyKey: "charge-key-1",
		Items:          []ChargeItem{{Description: "Lavandería", Quantity: 1, UnitPrice: dec("15.00")}},
	}
	first, err := svc.AddCharges(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.AddCharges(context.Background(), req)
	require.NoError(t, err)
	assertMoney(t, "15.00", first)
	assertMoney(t, "15.00", second)

	var charges int64
	require.NoError(t, db.Model(&domain.BookingCharge{}).Count(&charges).Error)
	assert.EqualValues(t, 1, charges)

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assertMoney(t, "115.00", reloaded.TotalAmount)
}

func TestChargeBatchKeyUniquePerLine(t *testing.T) {
	_, db, _, _ := setupService(t)
	key := "charge-key-7"

	first := domain.BookingCharge{
		BookingID: 7, CashierID: 1, Quantity: 1,
		UnitPrice: dec("5.00"), TotalAmount: dec("5.00"),
		IdempotencyKey: &key,
	}
	require.NoError(t, db.Create(&first).Error)

	// A second batch reusing the key collides on line 0.
	dup := domain.BookingCharge{
		BookingID: 7, CashierID: 1, Quantity: 1,
		UnitPrice: dec("5.00"), TotalAmount: dec("5.00"),
		IdempotencyKey: &key,
	}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err))

	// Further lines of the same batch do not collide.
	next := domain.BookingCharge{
		BookingID: 7, CashierID: 1, Quantity: 1,
		UnitPrice: dec("3.00"), TotalAmount: dec("3.00"),
		IdempotencyKey: &key, BatchLine: 1,
	}
	require.NoError(t, db.Create(&next).Error)

	// Unkeyed charges never participate in the index.
	for i := 0; i < 2; i++ {
		plain := domain.BookingCharge{
			BookingID: 7, CashierID: 1, Quantity: 1,
			UnitPrice: dec("2.00"), TotalAmount: dec("2.00"),
		}
		require.NoError(t, db.Create(&plain).Error)
	}
}

func TestApplyDiscountPercentageThenFixedRejected(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "200.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-400")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	amount, err := svc.ApplyDiscount(context.Background(), ApplyDiscountRequest{
		BookingID:     booking.ID,
		CashierID:     1,
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: dec("15"),
		Reason:        "cliente frecuente",
	})
	require.NoError(t, err)
	assertMoney(t, "30.00", amount)

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assertMoney(t, "170.00", reloaded.TotalAmount)

	_, err = svc.ApplyDiscount(context.Background(), ApplyDiscountRequest{
		BookingID:     booking.ID,
		CashierID:     1,
		DiscountType:  domain.DiscountFixed,
		DiscountValue: dec("200.00"),
		Reason:        "error correction",
	})
	assert.ErrorIs(t, err, ErrDiscountExceedsTotal)
}

func TestRecordPaymentLifecycle(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-500")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	balance, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Amount:    dec("60.00"),
		Method:    domain.PayCash,
	})
	require.NoError(t, err)
	assertMoney(t, "40.00", balance)

	// Overpayment beyond the 0.01 tolerance is rejected, not capped.
	_, err = svc.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Amount:    dec("40.02"),
		Method:    domain.PayCash,
	})
	require.ErrorIs(t, err, ErrPaymentExceedsBalance)

	var reloaded domain.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assertMoney(t, "60.00", reloaded.AmountPaid)
}

func TestRecordPaymentSplitsMustSum(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-501")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	_, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Amount:    dec("100.00"),
		Method:    domain.PayOther,
		Splits: []PaymentSplitInput{
			{Method: domain.PayCash, Amount: dec("50.00")},
			{Method: domain.PayCard, Amount: dec("40.00")},
		},
	})
	require.ErrorIs(t, err, ErrValidation)

	balance, err := svc.RecordPayment(context.Background(), RecordPaymentRequest{
		BookingID: booking.ID,
		CashierID: 1,
		Amount:    dec("100.00"),
		Method:    domain.PayOther,
		Splits: []PaymentSplitInput{
			{Method: domain.PayCash, Amount: dec("50.00")},
			{Method: domain.PayCard, Amount: dec("50.00"), CardLastDigits: "4242"},
		},
	})
	require.NoError(t, err)
	assertMoney(t, "0.00", balance)

	var splits []domain.PaymentSplit
	require.NoError(t, db.Find(&splits).Error)
	assert.Len(t, splits, 2)
}

func TestRecordPaymentIdempotentReplay(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "50.00")
	customer := seedCustomer(t, db, "CI-502")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))

	req := RecordPaymentRequest{
		BookingID:      booking.ID,
		CashierID:      1,
		Amount:         dec("100.00"),
		Method:         domain.PayCash,
		IdempotencyKey: "pay-key-1",
	}
	first, err := svc.RecordPayment(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.RecordPayment(context.Background(), req)
	require.NoError(t, err)
	assertMoney(t, "0.00", first)
	assertMoney(t, "0.00", second)

	var payments int64
	require.NoError(t, db.Model(&domain.Payment{}).Count(&payments).Error)
	assert.EqualValues(t, 1, payments)
}

func TestLateCheckoutPreviewAndCommit(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "20.00")
	customer := seedCustomer(t, db, "CI-600")

	expected := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	booking := checkIn(t, svc, room.ID, customer.ID, expected)
	ctx := context.Background()

	onTime, err := svc.PreviewLateCheckout(ctx, booking.ID, expected.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.False(t, onTime.IsLate)
	assertMoney(t, "0.00", onTime.LateCheckoutCharge)

	// 2h10m past the deadline rounds up to 3 started hours.
	late, err := svc.PreviewLateCheckout(ctx, booking.ID, expected.Add(2*time.Hour+10*time.Minute))
	require.NoError(t, err)
	assert.True(t, late.IsLate)
	assert.Equal(t, 3, late.HoursLate)
	assertMoney(t, "60.00", late.LateCheckoutCharge)
	assertMoney(t, "160.00", late.NewTotal)
	assert.False(t, late.Committed)

	// Preview never mutates the booking.
	var untouched domain.Booking
	require.NoError(t, db.First(&untouched, booking.ID).Error)
	assertMoney(t, "100.00", untouched.TotalAmount)

	checkoutAt := expected.Add(2*time.Hour + 10*time.Minute)
	_, err = svc.Checkout(ctx, booking.ID, checkoutAt)
	require.ErrorIs(t, err, ErrOutstandingBalance)
	assert.Contains(t, err.Error(), "160.00")

	// Rejection must leave the fee uncommitted.
	require.NoError(t, db.First(&untouched, booking.ID).Error)
	assertMoney(t, "100.00", untouched.TotalAmount)
	assert.Equal(t, domain.BookingCheckedIn, untouched.Status)

	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID: booking.ID, CashierID: 1, Amount: dec("100.00"), Method: domain.PayCash,
	})
	require.NoError(t, err)

	// Fee is paid at the desk and recorded once the checkout commits it;
	// here the guest settles before the deadline instead.
	result, err := svc.Checkout(ctx, booking.ID, expected.Add(-5*time.Minute))
	require.NoError(t, err)
	assertMoney(t, "0.00", result.LateCheckoutCharge)
	assertMoney(t, "100.00", result.FinalTotal)
}

func TestCheckoutCommitsLateFeeOnceAndFreezes(t *testing.T) {
	svc, db, _, sender := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "20.00")
	customer := seedCustomer(t, db, "CI-601")

	expected := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	booking := checkIn(t, svc, room.ID, customer.ID, expected)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID: booking.ID, CashierID: 1, Amount: dec("100.00"), Method: domain.PayCash,
	})
	require.NoError(t, err)

	// One started hour late, rate 20, fee 20: still outstanding.
	lateBy := expected.Add(30 * time.Minute)
	_, err = svc.Checkout(ctx, booking.ID, lateBy)
	require.ErrorIs(t, err, ErrOutstandingBalance)

	// On-time checkout proves the rejected attempt committed nothing.
	result, err := svc.Checkout(ctx, booking.ID, expected)
	require.NoError(t, err)
	assertMoney(t, "100.00", result.FinalTotal)
	assert.True(t, result.NotificationSent)
	assert.Contains(t, sender.kinds, "booking.checked_out")

	_, err = svc.Checkout(ctx, booking.ID, expected)
	assert.ErrorIs(t, err, ErrBookingAlreadyProcessed)

	// Frozen after checkout: a later now never changes the stored charge.
	preview, err := svc.PreviewLateCheckout(ctx, booking.ID, expected.Add(48*time.Hour))
	require.NoError(t, err)
	assert.True(t, preview.Committed)
	assertMoney(t, "0.00", preview.LateCheckoutCharge)
	assertMoney(t, "100.00", preview.NewTotal)
}

func TestCheckoutSideEffects(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "20.00")
	customer := seedCustomer(t, db, "CI-602")

	expected := time.Now().Add(24 * time.Hour)
	booking := checkIn(t, svc, room.ID, customer.ID, expected)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID: booking.ID, CashierID: 1, Amount: dec("100.00"), Method: domain.PayTransfer,
	})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, booking.ID, time.Now())
	require.NoError(t, err)

	var freedRoom domain.Room
	require.NoError(t, db.First(&freedRoom, room.ID).Error)
	assert.Equal(t, domain.RoomCleaning, freedRoom.Status)

	var stats domain.Customer
	require.NoError(t, db.First(&stats, customer.ID).Error)
	assert.Equal(t, 1, stats.TotalStays)
	assertMoney(t, "100.00", stats.TotalSpent)
	assert.False(t, stats.IsFrequent)
	require.NotNil(t, stats.LastStayDate)

	// Payments on a checked-out booking are rejected.
	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID: booking.ID, CashierID: 1, Amount: dec("5.00"), Method: domain.PayCash,
	})
	assert.ErrorIs(t, err, ErrBookingNotActive)
}

func TestActiveBookingsCarriesLivePreview(t *testing.T) {
	svc, db, _, _ := setupService(t)
	roomA := seedRoom(t, db, "100.00", "30.00", "20.00")
	roomB := seedRoom(t, db, "100.00", "30.00", "20.00")
	customer := seedCustomer(t, db, "CI-700")

	now := time.Now()
	checkIn(t, svc, roomA.ID, customer.ID, now.Add(-90*time.Minute))
	checkIn(t, svc, roomB.ID, customer.ID, now.Add(24*time.Hour))

	rows, err := svc.ActiveBookings(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byRoom := map[int64]ActiveBookingRow{}
	for _, r := range rows {
		byRoom[r.RoomID] = r
	}
	lateRow := byRoom[roomA.ID]
	assert.True(t, lateRow.IsLate)
	assert.Equal(t, 2, lateRow.LateCheckoutHours)
	assertMoney(t, "40.00", lateRow.LateCheckoutCharge)
	assertMoney(t, "140.00", lateRow.CurrentBalance)

	onTimeRow := byRoom[roomB.ID]
	assert.False(t, onTimeRow.IsLate)
	assertMoney(t, "100.00", onTimeRow.CurrentBalance)
}

func TestGetDetailAggregates(t *testing.T) {
	svc, db, _, _ := setupService(t)
	room := seedRoom(t, db, "100.00", "30.00", "20.00")
	customer := seedCustomer(t, db, "CI-800")
	booking := checkIn(t, svc, room.ID, customer.ID, time.Now().Add(24*time.Hour))
	ctx := context.Background()

	_, err := svc.AddCharges(ctx, AddChargesRequest{
		BookingID: booking.ID, CashierID: 1,
		Items: []ChargeItem{{Description: "Toalla extra", Quantity: 2, UnitPrice: dec("5.00")}},
	})
	require.NoError(t, err)
	_, err = svc.ApplyDiscount(ctx, ApplyDiscountRequest{
		BookingID: booking.ID, CashierID: 1,
		DiscountType: domain.DiscountFixed, DiscountValue: dec("10.00"), Reason: "promo",
	})
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, RecordPaymentRequest{
		BookingID: booking.ID, CashierID: 1, Amount: dec("50.00"), Method: domain.PayCash,
	})
	require.NoError(t, err)

	detail, err := svc.GetDetail(ctx, booking.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Charges, 1)
	assert.Len(t, detail.Discounts, 1)
	assert.Len(t, detail.Payments, 1)
	// 100 + 10 - 10 - 50
	assertMoney(t, "50.00", detail.Balance)
}
