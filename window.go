package totalreturn

import (
	"context"
	"fmt"

	"github.com/etnz/totalreturn/date"
)

// referenceSymbols are large, always-liquid securities whose own price
// history stands in as a market calendar when the target symbol has no
// usable data in the requested range (delisted, newly listed, provider gap).
var referenceSymbols = []string{"600000", "000001", "601318", "000002"}

// TradingWindow is a resolved pair of actual trading dates, Start <= End.
type TradingWindow struct {
	Start date.Date
	End   date.Date
}

// Days returns the calendar day count between the window bounds.
func (w TradingWindow) Days() int { return w.End.Sub(w.Start) }

func (w TradingWindow) String() string { return w.Start.String() + ".." + w.End.String() }

// ResolveWindow derives the actual trading window for a symbol from its own
// unadjusted price history.
//
//   - Start snapping: first trading day >= start.
//   - End snapping: last trading day <= end; an absent end (zero Date)
//     selects the most recent trading day strictly before today.
//   - Fallback: when the symbol itself has no prices in range, the calendar
//     of the first reference symbol with data is used instead. Price values
//     are still looked up on the target symbol afterwards.
func ResolveWindow(ctx context.Context, md MarketData, symbol string, start, end date.Date) (TradingWindow, error) {
	boundary := end
	if boundary.IsZero() {
		boundary = date.Today()
	}
	r := date.Range{From: start, To: boundary}

	cal := fetchCalendar(ctx, md, symbol, r)
	if cal.Len() == 0 {
		for _, ref := range referenceSymbols {
			if cal = fetchCalendar(ctx, md, ref, r); cal.Len() > 0 {
				break
			}
		}
	}
	if cal.Len() == 0 {
		return TradingWindow{}, fmt.Errorf("%w: no price history for %s or any reference symbol in %s", ErrNoTradingWindow, symbol, r)
	}

	startTrade, ok := cal.NextOnOrAfter(start)
	if !ok {
		return TradingWindow{}, fmt.Errorf("%w: no trading day on or after %s for %s", ErrNoTradingWindow, start, symbol)
	}

	var endTrade date.Date
	if end.IsZero() {
		// Previous trading day rule: today is never selected, to avoid
		// partial-day effects.
		endTrade, ok = cal.LastBefore(date.Today())
	} else {
		endTrade, ok = cal.LastOnOrBefore(end)
	}
	if !ok {
		return TradingWindow{}, fmt.Errorf("%w: no trading day on or before %s for %s", ErrNoTradingWindow, boundary, symbol)
	}

	if startTrade.After(endTrade) {
		return TradingWindow{}, fmt.Errorf("%w: resolved start %s is after end %s for %s", ErrNoTradingWindow, startTrade, endTrade, symbol)
	}
	return TradingWindow{Start: startTrade, End: endTrade}, nil
}

// fetchCalendar returns the symbol's trading days in r, empty on any failure.
func fetchCalendar(ctx context.Context, md MarketData, symbol string, r date.Range) *date.Calendar {
	series, err := md.PriceSeries(ctx, symbol, r)
	if err != nil || series == nil {
		return date.NewCalendar()
	}
	return series.Calendar()
}
