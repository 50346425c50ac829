// Package notify is the fire-and-forget side channel invoked after a
// ledger operation commits. Emission failures are reported to the caller
// as booleans or logged, never escalated into operation failures.
package notify

import "context"

// Event kinds pushed to front-desk dashboards.
const (
	EventCheckInRegistered = "booking.checked_in"
	EventChargeAdded       = "booking.charge_added"
	EventPaymentRecorded   = "booking.payment_recorded"
	EventCheckoutCompleted = "booking.checked_out"
	EventRefundIssued      = "booking.refund_issued"
)

// Sender delivers a committed-event notification. The boolean result is
// advisory only.
type Sender interface {
	Notify(ctx context.Context, kind string, payload any) bool
}

// NopSender drops every event; used where no live feed is wired.
type NopSender struct{}

func (NopSender) Notify(context.Context, string, any) bool { return true }
