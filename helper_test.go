package totalreturn

import (
	"context"

	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// dec parses a decimal literal for test fixtures.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// decp returns a pointer to a decimal literal, to populate the optional
// structured fields of raw records.
func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// fakeSource is an in-memory MarketData snapshot. Zero maps mean no data.
type fakeSource struct {
	prices      map[string]*PriceSeries
	pricesErr   error
	dividends   map[string][]DividendRecord
	divErr      error
	fallback    map[string][]DividendRecord
	fallbackErr error
	allotments  map[string][]AllotmentRecord
	allotErr    error
	names       map[string]string
}

func (f *fakeSource) PriceSeries(_ context.Context, symbol string, r date.Range) (*PriceSeries, error) {
	if f.pricesErr != nil {
		return nil, f.pricesErr
	}
	full, ok := f.prices[symbol]
	if !ok {
		return NewPriceSeries(), nil
	}
	// Restrict to the requested range, as a real provider would.
	out := NewPriceSeries()
	for i, on := range full.days {
		if r.Contains(on) {
			out.Append(on, full.closes[i])
		}
	}
	return out, nil
}

func (f *fakeSource) DividendRecords(_ context.Context, symbol string) ([]DividendRecord, error) {
	if f.divErr != nil {
		return nil, f.divErr
	}
	return f.dividends[symbol], nil
}

func (f *fakeSource) DividendRecordsFallback(_ context.Context, symbol string) ([]DividendRecord, error) {
	if f.fallbackErr != nil {
		return nil, f.fallbackErr
	}
	return f.fallback[symbol], nil
}

func (f *fakeSource) AllotmentRecords(_ context.Context, symbol string) ([]AllotmentRecord, error) {
	if f.allotErr != nil {
		return nil, f.allotErr
	}
	return f.allotments[symbol], nil
}

func (f *fakeSource) SecurityName(_ context.Context, symbol string) (string, error) {
	return f.names[symbol], nil
}

// series builds a PriceSeries from alternating "date", "close" literals.
func series(pairs ...string) *PriceSeries {
	s := NewPriceSeries()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Append(date.MustParse(pairs[i]), dec(pairs[i+1]))
	}
	return s
}
