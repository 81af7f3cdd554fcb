package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CNY formats a yuan amount for display, e.g. "¥1,700.04". Per-share sums
// keep their full precision elsewhere; this is presentation only.
func CNY(v decimal.Decimal) string {
	// The Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, money.CNY).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).IntPart())
}
