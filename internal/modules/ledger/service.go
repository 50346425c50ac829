package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostal/internal/domain"
	"hostal/internal/notify"
	"hostal/internal/pkg/latefee"
	"hostal/internal/pkg/money"
	"hostal/internal/repository"
)

// Service owns every mutation of a booking's financial state. Each
// operation runs as one transaction: the booking row (and the room row
// where occupancy changes) is locked for update, so concurrent attempts
// against the same booking or room serialize and observe committed state.
type Service struct {
	db       *gorm.DB
	bookings *repository.BookingRepository
	guard    GuardGate
	notifs   NotificationSender
	logger   zerolog.Logger
	nowFn    func() time.Time
}

func NewService(db *gorm.DB, bookings *repository.BookingRepository, guard GuardGate, notifs NotificationSender, logger zerolog.Logger) *Service {
	if notifs == nil {
		notifs = notify.NopSender{}
	}
	return &Service{
		db:       db,
		bookings: bookings,
		guard:    guard,
		notifs:   notifs,
		logger:   logger,
		nowFn:    time.Now,
	}
}

// errConcurrentReplay aborts a transaction that lost an idempotency-key
// race; the caller answers with the committed state.
var errConcurrentReplay = errors.New("idempotency key already committed")

// CheckIn registers a stay for an existing customer: consults the guard
// gate, prices the stay, creates the booking and occupies the room in one
// atomic unit.
func (s *Service) CheckIn(ctx context.Context, req CheckInRequest) (*domain.Booking, error) {
	if err := validateStayWindow(req.CheckIn, req.ExpectedCheckout); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer domain.Customer
		if err := tx.First(&customer, req.CustomerID).Error; err != nil {
			return err
		}

		blocked, reason, err := s.guard.IsBlocked(ctx, tx, customer.DocumentNumber)
		if err != nil {
			return err
		}
		if blocked {
			return fmt.Errorf("%w: %s", ErrCustomerBlocked, reason)
		}

		b, err := s.createBookingTx(tx, &customer, checkInParams{
			RoomID:           req.RoomID,
			CashierID:        req.CashierID,
			StayKind:         req.StayKind,
			NumberOfNights:   req.NumberOfNights,
			NumberOfHours:    req.NumberOfHours,
			NumberOfGuests:   req.NumberOfGuests,
			CheckIn:          req.CheckIn,
			ExpectedCheckout: req.ExpectedCheckout,
			Notes:            req.Notes,
		})
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCheckInRegistered, booking)
	return booking, nil
}

// RegisterGuest is the one-shot front-desk flow: blacklist check, customer
// creation, room check and booking creation in a single transaction.
func (s *Service) RegisterGuest(ctx context.Context, req RegisterGuestRequest) (*domain.Booking, error) {
	if err := validateStayWindow(req.CheckIn, req.ExpectedCheckout); err != nil {
		return nil, err
	}

	var booking *domain.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		blocked, reason, err := s.guard.IsBlocked(ctx, tx, req.DocumentNumber)
		if err != nil {
			return err
		}
		if blocked {
			return fmt.Errorf("%w: %s", ErrCustomerBlocked, reason)
		}

		customer := domain.Customer{
			FullName:       req.FullName,
			DocumentNumber: req.DocumentNumber,
			Phone:          req.Phone,
			Age:            req.Age,
			Nationality:    req.Nationality,
			Origin:         req.Origin,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		b, err := s.createBookingTx(tx, &customer, checkInParams{
			RoomID:           req.RoomID,
			CashierID:        req.CashierID,
			StayKind:         req.StayKind,
			NumberOfNights:   req.NumberOfNights,
			NumberOfHours:    req.NumberOfHours,
			NumberOfGuests:   1,
			CheckIn:          req.CheckIn,
			ExpectedCheckout: req.ExpectedCheckout,
		})
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCheckInRegistered, booking)
	return booking, nil
}

type checkInParams struct {
	RoomID           int64
	CashierID        int64
	StayKind         domain.StayKind
	NumberOfNights   int
	NumberOfHours    int
	NumberOfGuests   int
	CheckIn          time.Time
	ExpectedCheckout time.Time
	Notes            string
}

func (s *Service) createBookingTx(tx *gorm.DB, customer *domain.Customer, p checkInParams) (*domain.Booking, error) {
	var room domain.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, p.RoomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomUnavailable
	}
	if err != nil {
		return nil, err
	}
	if room.Status != domain.RoomAvailable {
		return nil, ErrRoomUnavailable
	}

	basePrice, stayKind, nights, err := priceStay(&room, p.StayKind, p.NumberOfNights, p.NumberOfHours)
	if err != nil {
		return nil, err
	}

	checkIn := p.CheckIn
	if checkIn.IsZero() {
		checkIn = s.nowFn()
	}
	guests := p.NumberOfGuests
	if guests <= 0 {
		guests = 1
	}

	booking := domain.Booking{
		BookingCode:      newBookingCode(s.nowFn()),
		RoomID:           room.ID,
		CustomerID:       customer.ID,
		CashierID:        p.CashierID,
		Status:           domain.BookingCheckedIn,
		StayKind:         stayKind,
		NumberOfNights:   nights,
		NumberOfHours:    p.NumberOfHours,
		NumberOfGuests:   guests,
		CheckIn:          checkIn,
		ExpectedCheckout: p.ExpectedCheckout,
		BasePrice:        basePrice,
		TotalAmount:      basePrice,
		AmountPaid:       decimal.Zero,
		Notes:            p.Notes,
	}
	if err := tx.Create(&booking).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&domain.Room{}).Where("id = ?", room.ID).Update("status", domain.RoomOccupied).Error; err != nil {
		return nil, err
	}

	booking.Room = &room
	booking.Customer = customer
	return &booking, nil
}

// newBookingCode keeps codes sortable by check-in time; the random
// suffix disambiguates same-millisecond check-ins.
func newBookingCode(now time.Time) string {
	return fmt.Sprintf("BK%d-%s", now.UnixMilli(), strings.ToUpper(uuid.NewString()[:4]))
}

// priceStay computes the base price for a stay. Fixed-bucket hourly stays
// use the bucket price; an arbitrary-hour stay is prorated from the
// 3-hour bucket. Daily stays multiply the base rate by nights.
func priceStay(room *domain.Room, kind domain.StayKind, nights, hours int) (decimal.Decimal, domain.StayKind, int, error) {
	switch kind {
	case domain.StayDaily:
		if nights <= 0 {
			nights = 1
		}
		return money.Round2(room.BasePrice.Mul(decimal.NewFromInt(int64(nights)))), domain.StayDaily, nights, nil
	case domain.Stay3Hours:
		return room.ShortStay3hPrice, domain.Stay3Hours, 1, nil
	case domain.Stay6Hours:
		return room.ShortStay6hPrice, domain.Stay6Hours, 1, nil
	case domain.StayHourly:
		switch {
		case hours <= 0:
			return decimal.Zero, kind, 0, fmt.Errorf("%w: hourly stay requires number_of_hours", ErrValidation)
		case hours == 3:
			return room.ShortStay3hPrice, domain.Stay3Hours, 1, nil
		case hours == 6:
			return room.ShortStay6hPrice, domain.Stay6Hours, 1, nil
		default:
			perHour := room.ShortStay3hPrice.Div(decimal.NewFromInt(3))
			return money.Round2(perHour.Mul(decimal.NewFromInt(int64(hours)))), domain.StayHourly, 1, nil
		}
	default:
		return decimal.Zero, kind, 0, fmt.Errorf("%w: unknown stay kind %q", ErrValidation, kind)
	}
}

// AddCharges appends charge lines to an active booking. Product-backed
// lines take the catalog tax rate and decrement tracked stock inside the
// same transaction; any failure rolls back every line.
func (s *Service) AddCharges(ctx context.Context, req AddChargesRequest) (decimal.Decimal, error) {
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: quantity must be positive and unit price non-negative", ErrValidation)
		}
	}

	var total decimal.Decimal
	var replay bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IdempotencyKey != "" {
			var prior []domain.BookingCharge
			if err := tx.Where("booking_id = ? AND idempotency_key = ?", req.BookingID, req.IdempotencyKey).Find(&prior).Error; err != nil {
				return err
			}
			if len(prior) > 0 {
				for _, ch := range prior {
					total = total.Add(ch.TotalAmount)
				}
				replay = true
				return nil
			}
		}

		booking, err := lockActiveBooking(tx, req.BookingID)
		if err != nil {
			return err
		}

		for i, item := range req.Items {
			charge := domain.BookingCharge{
				BookingID:   booking.ID,
				ProductID:   item.ProductID,
				CashierID:   req.CashierID,
				ChargeType:  domain.ChargeService,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TaxAmount:   decimal.Zero,
				BatchLine:   i,
			}
			if req.IdempotencyKey != "" {
				key := req.IdempotencyKey
				charge.IdempotencyKey = &key
			}

			if item.ProductID != nil {
				var product domain.Product
				err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, *item.ProductID).Error
				if err != nil {
					return err
				}

				charge.ChargeType = domain.ChargeProduct
				if charge.Description == "" {
					charge.Description = product.Name
				}
				if charge.UnitPrice.IsZero() {
					charge.UnitPrice = product.UnitPrice
				}
				charge.TaxAmount = money.Tax(charge.UnitPrice, item.Quantity, product.TaxRate)

				if product.TrackInventory {
					res := tx.Model(&domain.Product{}).
						Where("id = ? AND stock_quantity >= ?", product.ID, item.Quantity).
						Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
					if res.Error != nil {
						return res.Error
					}
					if res.RowsAffected == 0 {
						return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
					}
				}
			}

			charge.TotalAmount = money.LineTotal(charge.UnitPrice, item.Quantity, charge.TaxAmount)
			if err := tx.Create(&charge).Error; err != nil {
				// Two concurrent batches with the same key race past the
				// lookup; the unique index decides, the loser replays.
				if charge.IdempotencyKey != nil && repository.IsUniqueViolation(err) {
					return errConcurrentReplay
				}
				return err
			}
			total = total.Add(charge.TotalAmount)
		}

		return tx.Model(&domain.Booking{}).Where("id = ?", booking.ID).Updates(map[string]any{
			"additional_charges": booking.AdditionalCharges.Add(total),
			"total_amount":       booking.TotalAmount.Add(total),
		}).Error
	})
	if errors.Is(err, errConcurrentReplay) {
		var prior []domain.BookingCharge
		if err := s.db.WithContext(ctx).
			Where("booking_id = ? AND idempotency_key = ?", req.BookingID, req.IdempotencyKey).
			Find(&prior).Error; err != nil {
			return decimal.Zero, err
		}
		total = decimal.Zero
		for _, ch := range prior {
			total = total.Add(ch.TotalAmount)
		}
		return total, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	if !replay {
		s.emit(ctx, notify.EventChargeAdded, map[string]any{"booking_id": req.BookingID, "total_charges": total})
	}
	return total, nil
}

// ApplyDiscount records a discount against an active booking. The
// computed amount can never exceed the current total.
func (s *Service) ApplyDiscount(ctx context.Context, req ApplyDiscountRequest) (decimal.Decimal, error) {
	if req.DiscountType != domain.DiscountPercentage && req.DiscountType != domain.DiscountFixed {
		return decimal.Zero, fmt.Errorf("%w: unknown discount type %q", ErrValidation, req.DiscountType)
	}
	if !req.DiscountValue.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: discount value must be positive", ErrValidation)
	}

	var amount decimal.Decimal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := lockActiveBooking(tx, req.BookingID)
		if err != nil {
			return err
		}

		if req.DiscountType == domain.DiscountPercentage {
			amount = money.Percent(booking.TotalAmount, req.DiscountValue)
		} else {
			amount = money.Round2(req.DiscountValue)
		}
		if amount.GreaterThan(booking.TotalAmount) {
			return fmt.Errorf("%w: %s > %s", ErrDiscountExceedsTotal, amount.StringFixed(2), booking.TotalAmount.StringFixed(2))
		}

		discount := domain.Discount{
			BookingID:      booking.ID,
			CashierID:      req.CashierID,
			DiscountType:   req.DiscountType,
			DiscountValue:  req.DiscountValue,
			ComputedAmount: amount,
			Reason:         req.Reason,
			AuthorizedBy:   req.AuthorizedBy,
		}
		if err := tx.Create(&discount).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Booking{}).Where("id = ?", booking.ID).Updates(map[string]any{
			"discounts":    booking.Discounts.Add(amount),
			"total_amount": booking.TotalAmount.Sub(amount),
		}).Error
	})
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// RecordPayment applies a payment to an active booking and returns the
// new balance. Overpayment is rejected, not capped. A replayed
// idempotency key returns the current balance without applying again.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (decimal.Decimal, error) {
	if !req.Amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !req.Method.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.Method)
	}
	if len(req.Splits) > 0 {
		sum := decimal.Zero
		for _, sp := range req.Splits {
			if !sp.Method.Valid() || !sp.Amount.IsPositive() {
				return decimal.Zero, fmt.Errorf("%w: invalid payment split", ErrValidation)
			}
			sum = sum.Add(sp.Amount)
		}
		if !sum.Equal(req.Amount) {
			return decimal.Zero, fmt.Errorf("%w: split amounts must sum to the payment amount", ErrValidation)
		}
	}

	var newBalance decimal.Decimal
	var replay bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IdempotencyKey != "" {
			var prior domain.Payment
			err := tx.Where("idempotency_key = ?", req.IdempotencyKey).First(&prior).Error
			if err == nil {
				if prior.BookingID != req.BookingID {
					return fmt.Errorf("%w: idempotency key reused for another booking", ErrValidation)
				}
				var b domain.Booking
				if err := tx.First(&b, req.BookingID).Error; err != nil {
					return err
				}
				newBalance = b.Balance()
				replay = true
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		booking, err := lockActiveBooking(tx, req.BookingID)
		if err != nil {
			return err
		}

		balance := booking.Balance()
		if money.Exceeds(req.Amount, balance) {
			return fmt.Errorf("%w: %s > %s", ErrPaymentExceedsBalance, req.Amount.StringFixed(2), balance.StringFixed(2))
		}

		payment := domain.Payment{
			BookingID:            booking.ID,
			CashierID:            req.CashierID,
			Amount:               req.Amount,
			Method:               req.Method,
			PaymentDate:          s.nowFn(),
			CardLastDigits:       req.CardLastDigits,
			TransactionReference: req.TransactionReference,
			Notes:                req.Notes,
		}
		if req.IdempotencyKey != "" {
			key := req.IdempotencyKey
			payment.IdempotencyKey = &key
		}
		if err := tx.Create(&payment).Error; err != nil {
			// Two concurrent requests with the same key race past the
			// lookup; the unique index decides, the loser replays.
			if payment.IdempotencyKey != nil && repository.IsUniqueViolation(err) {
				return errConcurrentReplay
			}
			return err
		}

		for _, sp := range req.Splits {
			split := domain.PaymentSplit{
				PaymentID:            payment.ID,
				Method:               sp.Method,
				Amount:               sp.Amount,
				CardLastDigits:       sp.CardLastDigits,
				TransactionReference: sp.TransactionReference,
			}
			if err := tx.Create(&split).Error; err != nil {
				return err
			}
		}

		newBalance = balance.Sub(req.Amount)
		return tx.Model(&domain.Booking{}).Where("id = ?", booking.ID).
			Update("amount_paid", booking.AmountPaid.Add(req.Amount)).Error
	})
	if errors.Is(err, errConcurrentReplay) {
		var b domain.Booking
		if err := s.db.WithContext(ctx).First(&b, req.BookingID).Error; err != nil {
			return decimal.Zero, err
		}
		return b.Balance(), nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	if !replay {
		s.emit(ctx, notify.EventPaymentRecorded, map[string]any{
			"booking_id": req.BookingID, "amount": req.Amount, "new_balance": newBalance,
		})
	}
	return newBalance, nil
}

// PreviewLateCheckout is side-effect free. Before checkout it recomputes
// the surcharge against now on every call; after checkout it reports the
// frozen, committed charge.
func (s *Service) PreviewLateCheckout(ctx context.Context, bookingID int64, now time.Time) (*LateCheckoutPreview, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.BookingCheckedOut {
		return &LateCheckoutPreview{
			IsLate:             booking.LateCheckoutHours > 0,
			HoursLate:          booking.LateCheckoutHours,
			HourlyRate:         booking.Room.LateCheckoutHourlyRate(),
			LateCheckoutCharge: booking.LateCheckoutCharge,
			NewTotal:           booking.TotalAmount,
			Committed:          true,
		}, nil
	}

	r := latefee.Compute(booking.ExpectedCheckout, now, booking.Room.LateCheckoutHourlyRate())
	return &LateCheckoutPreview{
		IsLate:             r.IsLate,
		HoursLate:          r.HoursLate,
		HourlyRate:         r.HourlyRate,
		LateCheckoutCharge: r.Charge,
		NewTotal:           booking.TotalAmount.Add(r.Charge),
	}, nil
}

// Checkout commits the late surcharge once, gates on full payment, frees
// the room to cleaning and updates the customer's aggregates, all in one
// transaction.
func (s *Service) Checkout(ctx context.Context, bookingID int64, now time.Time) (*CheckoutResult, error) {
	var result CheckoutResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking domain.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingAlreadyProcessed
		}
		if err != nil {
			return err
		}
		if booking.Status != domain.BookingCheckedIn {
			return ErrBookingAlreadyProcessed
		}

		var room domain.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, booking.RoomID).Error; err != nil {
			return err
		}

		fee := latefee.Compute(booking.ExpectedCheckout, now, room.LateCheckoutHourlyRate())
		if fee.Charge.IsPositive() {
			booking.LateCheckoutCharge = fee.Charge
			booking.LateCheckoutHours = fee.HoursLate
			booking.TotalAmount = booking.TotalAmount.Add(fee.Charge)
		}

		balance := booking.Balance()
		if !money.Settled(balance) {
			return fmt.Errorf("%w: Bs. %s", ErrOutstandingBalance, balance.StringFixed(2))
		}

		booking.Status = domain.BookingCheckedOut
		booking.CheckOut = &now
		if err := tx.Model(&domain.Booking{}).Where("id = ?", booking.ID).Updates(map[string]any{
			"status":               booking.Status,
			"check_out":            now,
			"late_checkout_charge": booking.LateCheckoutCharge,
			"late_checkout_hours":  booking.LateCheckoutHours,
			"total_amount":         booking.TotalAmount,
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Room{}).Where("id = ?", room.ID).Update("status", domain.RoomCleaning).Error; err != nil {
			return err
		}

		var customer domain.Customer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&customer, booking.CustomerID).Error; err != nil {
			return err
		}
		stays := customer.TotalStays + 1
		if err := tx.Model(&domain.Customer{}).Where("id = ?", customer.ID).Updates(map[string]any{
			"total_stays":    stays,
			"total_spent":    customer.TotalSpent.Add(booking.TotalAmount),
			"is_frequent":    stays >= 3,
			"last_stay_date": now,
		}).Error; err != nil {
			return err
		}

		result = CheckoutResult{
			BookingID:          booking.ID,
			LateCheckoutCharge: booking.LateCheckoutCharge,
			FinalTotal:         booking.TotalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.NotificationSent = s.emit(ctx, notify.EventCheckoutCompleted, result)
	return &result, nil
}

// ActiveBookings lists checked-in and reserved bookings with a live
// late-checkout preview per row.
func (s *Service) ActiveBookings(ctx context.Context, now time.Time) ([]ActiveBookingRow, error) {
	bookings, err := s.bookings.Active(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ActiveBookingRow, 0, len(bookings))
	for _, b := range bookings {
		fee := latefee.Compute(b.ExpectedCheckout, now, b.Room.LateCheckoutHourlyRate())
		rows = append(rows, ActiveBookingRow{
			Booking:            b,
			IsLate:             fee.IsLate,
			LateCheckoutHours:  fee.HoursLate,
			LateCheckoutCharge: fee.Charge,
			CurrentBalance:     b.TotalAmount.Add(fee.Charge).Sub(b.AmountPaid),
		})
	}
	return rows, nil
}

func (s *Service) GetDetail(ctx context.Context, bookingID int64) (*BookingDetail, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	charges, err := s.bookings.ListCharges(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	payments, err := s.bookings.ListPayments(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	discounts, err := s.bookings.ListDiscounts(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return &BookingDetail{
		Booking:   booking,
		Balance:   booking.Balance(),
		Charges:   charges,
		Payments:  payments,
		Discounts: discounts,
	}, nil
}

func (s *Service) Search(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	return s.bookings.Search(ctx, f)
}

// emit notifies after a successful commit; failures are logged, never
// surfaced as operation errors.
func (s *Service) emit(ctx context.Context, kind string, payload any) bool {
	ok := s.notifs.Notify(ctx, kind, payload)
	if !ok {
		s.logger.Warn().Str("kind", kind).Msg("notification emission failed")
	}
	return ok
}

func lockActiveBooking(tx *gorm.DB, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotActive
	}
	if err != nil {
		return nil, err
	}
	if !booking.IsActive() {
		return nil, ErrBookingNotActive
	}
	return &booking, nil
}

func validateStayWindow(checkIn, expectedCheckout time.Time) error {
	if expectedCheckout.IsZero() {
		return fmt.Errorf("%w: expected_checkout is required", ErrValidation)
	}
	if !checkIn.IsZero() && !expectedCheckout.After(checkIn) {
		return fmt.Errorf("%w: expected_checkout must be after check_in", ErrValidation)
	}
	return nil
}
