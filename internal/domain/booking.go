package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	// BookingReserved exists for future-dated bookings; the billing engine
	// only mutates bookings once they reach checked_in.
	BookingReserved   BookingStatus = "reserved"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
)

type StayKind string

const (
	StayDaily    StayKind = "daily"
	StayHourly   StayKind = "hourly"
	Stay3Hours   StayKind = "3_hours"
	Stay6Hours   StayKind = "6_hours"
)

// Booking owns one guest's financial state from check-in to checkout.
// TotalAmount is maintained as base_price + additional_charges - discounts
// + late_checkout_charge; Balance() derives from it and AmountPaid.
type Booking struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	BookingCode string `gorm:"uniqueIndex;size:30" json:"booking_code"`
	RoomID      int64  `gorm:"index" json:"room_id"`
	CustomerID  int64  `gorm:"index" json:"customer_id"`
	CashierID   int64  `json:"cashier_id"`

	Status          BookingStatus `gorm:"size:20;index" json:"status"`
	StayKind        StayKind      `gorm:"size:10" json:"stay_kind"`
	NumberOfNights  int           `gorm:"default:1" json:"number_of_nights"`
	NumberOfHours   int           `gorm:"default:0" json:"number_of_hours"`
	NumberOfGuests  int           `gorm:"default:1" json:"number_of_guests"`
	CheckIn         time.Time     `json:"check_in"`
	ExpectedCheckout time.Time    `json:"expected_checkout"`
	CheckOut        *time.Time    `json:"check_out,omitempty"`

	BasePrice          decimal.Decimal `gorm:"type:decimal(12,2)" json:"base_price"`
	AdditionalCharges  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"additional_charges"`
	Discounts          decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discounts"`
	LateCheckoutCharge decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"late_checkout_charge"`
	LateCheckoutHours  int             `gorm:"default:0" json:"late_checkout_hours"`
	TotalAmount        decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	AmountPaid         decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"amount_paid"`

	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room     *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) Balance() decimal.Decimal {
	return b.TotalAmount.Sub(b.AmountPaid)
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingCheckedIn
}

type ChargeType string

const (
	ChargeProduct ChargeType = "product"
	ChargeService ChargeType = "service"
)

// BookingCharge lines are append-only; their totals are summed into the
// booking's AdditionalCharges. Lines of one keyed batch share the
// idempotency key and are numbered by BatchLine, so the unique index
// rejects a concurrent same-key batch without rejecting multi-line ones.
type BookingCharge struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	BookingID      int64           `gorm:"index;uniqueIndex:uniq_charge_batch_line,priority:1" json:"booking_id"`
	ProductID      *int64          `json:"product_id,omitempty"`
	CashierID      int64           `json:"cashier_id"`
	ChargeType     ChargeType      `gorm:"size:20;default:product" json:"charge_type"`
	Description    string          `gorm:"size:200" json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_amount"`
	IdempotencyKey *string         `gorm:"size:40;uniqueIndex:uniq_charge_batch_line,priority:2" json:"-"`
	BatchLine      int             `gorm:"uniqueIndex:uniq_charge_batch_line,priority:3" json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (BookingCharge) TableName() string { return "booking_charges" }

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount entries are append-only; ComputedAmount is summed into the
// booking's Discounts and can never push the total negative.
type Discount struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	BookingID      int64           `gorm:"index" json:"booking_id"`
	CashierID      int64           `json:"cashier_id"`
	DiscountType   DiscountType    `gorm:"size:20" json:"discount_type"`
	DiscountValue  decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount_value"`
	ComputedAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"computed_amount"`
	Reason         string          `gorm:"size:200" json:"reason"`
	AuthorizedBy   *int64          `json:"authorized_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (Discount) TableName() string { return "discounts" }
