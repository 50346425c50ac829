package cashier

import (
	"github.com/shopspring/decimal"

	"hostal/internal/domain"
)

type OpenSessionRequest struct {
	InitialCash decimal.Decimal `json:"initial_cash"`
}

type CloseSessionRequest struct {
	ActualCash decimal.Decimal `json:"actual_cash"`
	Notes      string          `json:"notes"`
}

// SessionSnapshot is the live view of an open session: per-method totals
// aggregated from payments inside the open window, recomputed on every read.
type SessionSnapshot struct {
	Session domain.CashSession `json:"session"`

	TotalCashPayments     decimal.Decimal `json:"total_cash_payments"`
	TotalCardPayments     decimal.Decimal `json:"total_card_payments"`
	TotalTransferPayments decimal.Decimal `json:"total_transfer_payments"`
	TotalCheckPayments    decimal.Decimal `json:"total_check_payments"`
	TotalOtherPayments    decimal.Decimal `json:"total_other_payments"`

	ExpectedCash      decimal.Decimal `json:"expected_cash"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	TotalTransactions int             `json:"total_transactions"`
}

type CloseResult struct {
	Session      domain.CashSession `json:"session"`
	ExpectedCash decimal.Decimal    `json:"expected_cash"`
	ActualCash   decimal.Decimal    `json:"actual_cash"`
	Difference   decimal.Decimal    `json:"difference"`
}
