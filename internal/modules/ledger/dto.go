package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"hostal/internal/domain"
)

type CheckInRequest struct {
	CustomerID       int64           `json:"customer_id" binding:"required"`
	RoomID           int64           `json:"room_id" binding:"required"`
	StayKind         domain.StayKind `json:"stay_kind" binding:"required"`
	NumberOfNights   int             `json:"number_of_nights"`
	NumberOfHours    int             `json:"number_of_hours"`
	NumberOfGuests   int             `json:"number_of_guests"`
	CheckIn          time.Time       `json:"check_in"`
	ExpectedCheckout time.Time       `json:"expected_checkout" binding:"required"`
	Notes            string          `json:"notes"`

	CashierID int64 `json:"-"`
}

type RegisterGuestRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	Phone          string `json:"phone"`
	Age            *int   `json:"age"`
	Nationality    string `json:"nationality"`
	Origin         string `json:"origin"`

	RoomID           int64           `json:"room_id" binding:"required"`
	StayKind         domain.StayKind `json:"stay_kind" binding:"required"`
	NumberOfNights   int             `json:"number_of_nights"`
	NumberOfHours    int             `json:"number_of_hours"`
	CheckIn          time.Time       `json:"check_in"`
	ExpectedCheckout time.Time       `json:"expected_checkout" binding:"required"`

	CashierID int64 `json:"-"`
}

type ChargeItem struct {
	ProductID   *int64          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type AddChargesRequest struct {
	Items          []ChargeItem `json:"items" binding:"required,min=1"`
	IdempotencyKey string       `json:"idempotency_key"`

	BookingID int64 `json:"-"`
	CashierID int64 `json:"-"`
}

type ApplyDiscountRequest struct {
	DiscountType  domain.DiscountType `json:"discount_type" binding:"required"`
	DiscountValue decimal.Decimal     `json:"discount_value" binding:"required"`
	Reason        string              `json:"reason" binding:"required"`
	AuthorizedBy  *int64              `json:"authorized_by"`

	BookingID int64 `json:"-"`
	CashierID int64 `json:"-"`
}

type PaymentSplitInput struct {
	Method               domain.PaymentMethod `json:"payment_method" binding:"required"`
	Amount               decimal.Decimal      `json:"amount" binding:"required"`
	CardLastDigits       string               `json:"card_last_digits"`
	TransactionReference string               `json:"transaction_reference"`
}

type RecordPaymentRequest struct {
	BookingID            int64                `json:"booking_id" binding:"required"`
	Amount               decimal.Decimal      `json:"amount" binding:"required"`
	Method               domain.PaymentMethod `json:"payment_method" binding:"required"`
	Splits               []PaymentSplitInput  `json:"payment_splits"`
	CardLastDigits       string               `json:"card_last_digits"`
	TransactionReference string               `json:"transaction_reference"`
	Notes                string               `json:"notes"`
	IdempotencyKey       string               `json:"idempotency_key"`

	CashierID int64 `json:"-"`
}

type LateCheckoutPreview struct {
	IsLate             bool            `json:"is_late"`
	HoursLate          int             `json:"hours_late"`
	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	LateCheckoutCharge decimal.Decimal `json:"late_checkout_charge"`
	NewTotal           decimal.Decimal `json:"new_total"`
	Committed          bool            `json:"committed"`
}

type CheckoutResult struct {
	BookingID          int64           `json:"booking_id"`
	LateCheckoutCharge decimal.Decimal `json:"late_checkout_charge"`
	FinalTotal         decimal.Decimal `json:"final_total"`
	NotificationSent   bool            `json:"notification_sent"`
}

type ActiveBookingRow struct {
	domain.Booking
	IsLate             bool            `json:"is_late"`
	LateCheckoutHours  int             `json:"late_checkout_hours"`
	LateCheckoutCharge decimal.Decimal `json:"late_checkout_charge"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
}

type BookingDetail struct {
	Booking   *domain.Booking        `json:"booking"`
	Balance   decimal.Decimal        `json:"balance"`
	Charges   []domain.BookingCharge `json:"charges"`
	Payments  []domain.Payment       `json:"payments"`
	Discounts []domain.Discount      `json:"discounts"`
}
