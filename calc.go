package totalreturn

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// ReturnResult is one output row, either fully populated or carrying only
// Symbol, Name and Err. Percentage fields are a presentation derivation of
// the raw decimals, no rounding is applied here.
type ReturnResult struct {
	Symbol           string          `json:"code"`
	Name             string          `json:"name"`
	Start            date.Date       `json:"start_trade_date"`
	End              date.Date       `json:"end_trade_date"`
	StartClose       decimal.Decimal `json:"start_close"`
	EndClose         decimal.Decimal `json:"end_close"`
	DividendPerShare decimal.Decimal `json:"div_sum_per_share"`
	DividendEvents   int             `json:"div_event_count"`
	AdditionalShares decimal.Decimal `json:"additional_shares_per_share"`
	AdditionalEvents int             `json:"additional_event_count"`
	AdditionalValue  decimal.Decimal `json:"additional_value_per_share"`
	BonusAllotDesc   string          `json:"bonus_allot_desc"`
	TotalReturn      float64         `json:"total_return"`
	AnnualizedReturn float64         `json:"annualized_return"`
	Err              string          `json:"error,omitempty"`
}

// Failed reports whether this row carries an error instead of metrics.
func (r ReturnResult) Failed() bool { return r.Err != "" }

// MarshalJSON adds the derived percentage fields to the encoded row.
func (r ReturnResult) MarshalJSON() ([]byte, error) {
	type plain ReturnResult
	return json.Marshal(struct {
		plain
		TotalReturnPct      float64 `json:"total_return_pct"`
		AnnualizedReturnPct float64 `json:"annualized_return_pct"`
	}{plain(r), r.TotalReturnPct(), r.AnnualizedReturnPct()})
}

// TotalReturnPct returns the total return as a percentage.
func (r ReturnResult) TotalReturnPct() float64 { return r.TotalReturn * 100 }

// AnnualizedReturnPct returns the annualized return as a percentage.
func (r ReturnResult) AnnualizedReturnPct() float64 { return r.AnnualizedReturn * 100 }

// Compute combines the window's close prices with the interval summary:
//
//	additional_value = end_close * additional_shares_per_share
//	total_return     = (end_close + dividends + additional_value - start_close) / start_close
//	annualized       = (1 + total_return)^(365/days) - 1
//
// days are calendar days between the two trading dates, not trading days.
func Compute(w TradingWindow, startClose, endClose decimal.Decimal, sum IntervalSummary) (addValue decimal.Decimal, totalReturn, annualized float64, err error) {
	if startClose.IsZero() {
		return decimal.Decimal{}, 0, 0, fmt.Errorf("%w on %s", ErrDivisionByZeroPrice, w.Start)
	}
	if w.Start == w.End {
		return decimal.Decimal{}, 0, 0, fmt.Errorf("%w (%s)", ErrDegenerateWindow, w.Start)
	}

	addValue = endClose.Mul(sum.AdditionalShares)
	total := endClose.Add(sum.CashPerShare).Add(addValue).Sub(startClose).Div(startClose)
	totalReturn = total.InexactFloat64()
	annualized = math.Pow(1+totalReturn, 365/float64(w.Days())) - 1
	return addValue, totalReturn, annualized, nil
}
