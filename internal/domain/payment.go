package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PayCash     PaymentMethod = "cash"
	PayCard     PaymentMethod = "card"
	PayTransfer PaymentMethod = "transfer"
	PayCheck    PaymentMethod = "check"
	PayOther    PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCash, PayCard, PayTransfer, PayCheck, PayOther:
		return true
	}
	return false
}

// Payment belongs to a booking and, by time-window membership, to the
// cashier session open at PaymentDate for its cashier.
type Payment struct {
	ID                   int64           `gorm:"primaryKey" json:"id"`
	BookingID            int64           `gorm:"index" json:"booking_id"`
	CashierID            int64           `gorm:"index" json:"cashier_id"`
	Amount               decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Method               PaymentMethod   `gorm:"column:payment_method;size:20" json:"payment_method"`
	PaymentDate          time.Time       `gorm:"index" json:"payment_date"`
	CardLastDigits       string          `gorm:"size:4" json:"card_last_digits,omitempty"`
	TransactionReference string          `gorm:"size:100" json:"transaction_reference,omitempty"`
	Notes                string          `gorm:"size:255" json:"notes,omitempty"`
	IdempotencyKey       *string         `gorm:"size:40;uniqueIndex" json:"-"`
	CreatedAt            time.Time       `json:"created_at"`

	Splits []PaymentSplit `gorm:"foreignKey:PaymentID" json:"splits,omitempty"`
}

func (Payment) TableName() string { return "payments" }

// PaymentSplit details a mixed-method payment under its parent Payment.
type PaymentSplit struct {
	ID                   int64           `gorm:"primaryKey" json:"id"`
	PaymentID            int64           `gorm:"index" json:"payment_id"`
	Method               PaymentMethod   `gorm:"column:payment_method;size:20" json:"payment_method"`
	Amount               decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	CardLastDigits       string          `gorm:"size:4" json:"card_last_digits,omitempty"`
	TransactionReference string          `gorm:"size:100" json:"transaction_reference,omitempty"`
}

func (PaymentSplit) TableName() string { return "payment_splits" }

type RefundStatus string

const (
	RefundApproved RefundStatus = "approved"
)

// Refund decreases a booking's AmountPaid and requires admin authorization.
type Refund struct {
	ID           int64           `gorm:"primaryKey" json:"id"`
	BookingID    int64           `gorm:"index" json:"booking_id"`
	PaymentID    *int64          `json:"payment_id,omitempty"`
	CashierID    int64           `json:"cashier_id"`
	AuthorizedBy int64           `json:"authorized_by"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Reason       string          `gorm:"size:200" json:"reason"`
	Notes        string          `gorm:"size:255" json:"notes,omitempty"`
	Status       RefundStatus    `gorm:"size:20;default:approved" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Refund) TableName() string { return "refunds" }
