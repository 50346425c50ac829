package money

import "github.com/shopspring/decimal"

// Epsilon absorbs rounding noise when comparing balances: amounts within
// 0.01 of each other are treated as settled.
var Epsilon = decimal.New(1, -2)

var Zero = decimal.Zero

// Round2 rounds half-up to two decimal places, the precision every stored
// amount carries.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent computes pct% of base, rounded to two places.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(pct).Div(decimal.NewFromInt(100)))
}

// LineTotal computes unitPrice*qty + tax for a charge line.
func LineTotal(unitPrice decimal.Decimal, qty int, tax decimal.Decimal) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt(int64(qty))).Add(tax))
}

// Tax computes a flat per-line tax: ratePct% of unitPrice*qty.
func Tax(unitPrice decimal.Decimal, qty int, ratePct decimal.Decimal) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt(int64(qty))).Mul(ratePct).Div(decimal.NewFromInt(100)))
}

// Settled reports whether a balance is fully covered, allowing Epsilon of
// rounding slack.
func Settled(balance decimal.Decimal) bool {
	return balance.LessThanOrEqual(Epsilon)
}

// Exceeds reports whether amount is more than limit by over Epsilon.
func Exceeds(amount, limit decimal.Decimal) bool {
	return amount.Sub(limit).GreaterThan(Epsilon)
}
