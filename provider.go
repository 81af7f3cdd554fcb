package totalreturn

import (
	"context"
	"errors"
	"slices"
	"sort"

	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// Errors surfaced by the engine. Provider failures and empty payloads on
// corporate-action endpoints are absorbed as "no data"; only window
// resolution and price lookups are fatal to a symbol's run.
var (
	// ErrNoTradingWindow is returned when neither the symbol nor any
	// reference symbol yields a trading day in the requested neighborhood.
	ErrNoTradingWindow = errors.New("no resolvable trading window")
	// ErrProviderUnavailable is returned by providers when an upstream
	// fetch failed or timed out.
	ErrProviderUnavailable = errors.New("market data provider unavailable")
	// ErrDivisionByZeroPrice is returned when the starting close price is
	// zero or unavailable.
	ErrDivisionByZeroPrice = errors.New("start close price is zero")
	// ErrDegenerateWindow is returned when start and end trading dates are
	// identical, which leaves annualization undefined.
	ErrDegenerateWindow = errors.New("start and end trading dates are identical")
)

// MarketData is the upstream market-data collaborator. Implementations may
// fail with ErrProviderUnavailable or return empty sequences; the engine
// treats both as "no data" on corporate-action endpoints.
type MarketData interface {
	// PriceSeries returns the unadjusted daily close series for symbol
	// covering r (bounds included).
	PriceSeries(ctx context.Context, symbol string, r date.Range) (*PriceSeries, error)
	// DividendRecords returns raw distribution rows from the primary
	// source, structured numeric fields populated when available.
	DividendRecords(ctx context.Context, symbol string) ([]DividendRecord, error)
	// DividendRecordsFallback returns raw distribution rows from the
	// fallback source, which carries textual plan descriptions only.
	DividendRecordsFallback(ctx context.Context, symbol string) ([]DividendRecord, error)
	// AllotmentRecords returns raw rights-issue rows.
	AllotmentRecords(ctx context.Context, symbol string) ([]AllotmentRecord, error)
	// SecurityName resolves the short display name for a symbol.
	SecurityName(ctx context.Context, symbol string) (string, error)
}

// PriceSeries is the ordered unadjusted daily close history of one symbol.
// It is immutable once fetched: every query re-fetches and recomputes.
type PriceSeries struct {
	days   []date.Date
	closes []decimal.Decimal
}

// NewPriceSeries builds an empty series.
func NewPriceSeries() *PriceSeries { return &PriceSeries{} }

// Append adds a close price observation. An existing value at that date is
// overwritten, the last data wins.
func (s *PriceSeries) Append(on date.Date, close decimal.Decimal) *PriceSeries {
	if i := slices.Index(s.days, on); i >= 0 {
		s.closes[i] = close
		return s
	}
	s.days, s.closes = append(s.days, on), append(s.closes, close)
	sort.Sort(chronological{s})
	return s
}

// chronological is a private implementation to keep the series sorted by day.
type chronological struct{ *PriceSeries }

func (s chronological) Len() int           { return len(s.days) }
func (s chronological) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.closes[i], s.closes[j] = s.closes[j], s.closes[i]
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int { return len(s.days) }

// Close returns the close price at exactly 'on' and true, or zero and false.
func (s *PriceSeries) Close(on date.Date) (decimal.Decimal, bool) {
	if i := slices.Index(s.days, on); i >= 0 {
		return s.closes[i], true
	}
	return decimal.Decimal{}, false
}

// Calendar returns the trading days of this series as a calendar.
func (s *PriceSeries) Calendar() *date.Calendar {
	return date.NewCalendar(s.days...)
}

// DividendRecord is one raw distribution row as delivered by a provider.
// It is a tagged variant: structured numeric fields are pointers that are
// nil when the source did not carry them, and PlanText holds the free-text
// plan description used as a last resort.
type DividendRecord struct {
	ExDate date.Date
	// CashPerShare is the explicit per-one-share cash dividend.
	CashPerShare *decimal.Decimal
	// CashPerTen is the cash dividend quoted per 10 held shares.
	CashPerTen *decimal.Decimal
	// BonusPerTen is the bonus share count quoted per 10 held shares (送股).
	BonusPerTen *decimal.Decimal
	// TransferPerTen is the transfer share count quoted per 10 held shares (转增).
	TransferPerTen *decimal.Decimal
	// PlanText is the free-text plan description, e.g. "10派4.3元(含税)".
	PlanText string
}

// AllotmentRecord is one raw rights-issue row (配股).
type AllotmentRecord struct {
	ExDate date.Date
	// SharesPerTen is the subscribable share count quoted per 10 held shares.
	SharesPerTen *decimal.Decimal
}
