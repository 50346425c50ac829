// Package latefee computes the late-checkout surcharge from wall-clock time.
// It is a pure computation: callers re-evaluate it on every preview so the
// result always reflects elapsed time, and commit it exactly once at checkout.
package latefee

import (
	"time"

	"github.com/shopspring/decimal"

	"hostal/internal/pkg/money"
)

type Result struct {
	IsLate     bool            `json:"is_late"`
	HoursLate  int             `json:"hours_late"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Charge     decimal.Decimal `json:"late_checkout_charge"`
}

// Compute returns the surcharge owed when checking out at now against
// expectedCheckout. Any started hour counts as a full hour. A room without
// an hourly rate configured never produces a fee.
func Compute(expectedCheckout, now time.Time, hourlyRate decimal.Decimal) Result {
	r := Result{HourlyRate: hourlyRate, Charge: decimal.Zero}
	if !now.After(expectedCheckout) {
		return r
	}

	r.IsLate = true
	elapsed := now.Sub(expectedCheckout)
	hours := int(elapsed / time.Hour)
	if elapsed%time.Hour != 0 {
		hours++
	}
	r.HoursLate = hours

	if hourlyRate.IsPositive() {
		r.Charge = money.Round2(hourlyRate.Mul(decimal.NewFromInt(int64(hours))))
	}
	return r
}
