package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashSessionStatus string

const (
	SessionOpen            CashSessionStatus = "open"
	SessionPendingApproval CashSessionStatus = "pending_approval"
	SessionClosed          CashSessionStatus = "closed"
)

// CashSession tracks one cashier's shift. Per-method totals are derived by
// summing payments whose payment_date falls within the open window; they are
// only persisted at close time. A cashier has at most one open session.
type CashSession struct {
	ID          int64             `gorm:"primaryKey" json:"id"`
	CashierID   int64             `gorm:"index" json:"cashier_id"`
	OpeningTime time.Time         `json:"opening_time"`
	ClosingTime *time.Time        `json:"closing_time,omitempty"`
	Status      CashSessionStatus `gorm:"size:20;index" json:"status"`

	InitialCash decimal.Decimal `gorm:"type:decimal(12,2)" json:"initial_cash"`

	TotalCashPayments     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_cash_payments"`
	TotalCardPayments     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_card_payments"`
	TotalTransferPayments decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_transfer_payments"`
	TotalCheckPayments    decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_check_payments"`

	ExpectedCash decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"expected_cash"`
	ActualCash   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"actual_cash"`
	Difference   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"difference"`

	Notes     string    `gorm:"size:255" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CashSession) TableName() string { return "cash_sessions" }
