package totalreturn

import (
	"context"
	"fmt"

	"github.com/etnz/totalreturn/date"
	"golang.org/x/sync/errgroup"
)

// Stage tracks a pipeline run through its sequential states. Computed and
// failed are terminal.
type Stage int

const (
	StagePending Stage = iota
	StageWindowResolved
	StagePricesFetched
	StageEventsNormalized
	StageAggregated
	StageComputed
)

func (s Stage) String() string {
	switch s {
	case StagePending:
		return "pending"
	case StageWindowResolved:
		return "window"
	case StagePricesFetched:
		return "prices"
	case StageEventsNormalized:
		return "events"
	case StageAggregated:
		return "aggregated"
	case StageComputed:
		return "computed"
	}
	return "unknown"
}

// Request asks for the interval total return of one symbol. End may be the
// zero Date to mean "up to the previous trading day".
type Request struct {
	Symbol string
	Start  date.Date
	End    date.Date
}

// Pipeline orchestrates one symbol's computation: window resolution, price
// lookups, corporate-action fetch with source fallback, normalization,
// aggregation and the final return calculation. It holds no mutable state,
// every run re-fetches and recomputes from scratch.
type Pipeline struct {
	Source MarketData
}

// NewPipeline returns a pipeline reading from the given provider.
func NewPipeline(md MarketData) *Pipeline { return &Pipeline{Source: md} }

// Run executes the pipeline for one symbol. A failure at any stage is
// converted into a result row carrying only symbol, name and error: one
// symbol's failure never aborts a batch.
func (p *Pipeline) Run(ctx context.Context, req Request) ReturnResult {
	row := ReturnResult{Symbol: req.Symbol, Name: p.securityName(ctx, req.Symbol)}
	stage := StagePending

	fail := func(err error) ReturnResult {
		row.Err = fmt.Sprintf("%s: %v", stage, err)
		return row
	}

	window, err := ResolveWindow(ctx, p.Source, req.Symbol, req.Start, req.End)
	if err != nil {
		return fail(err)
	}
	stage = StageWindowResolved
	row.Start, row.End = window.Start, window.End

	series, err := p.Source.PriceSeries(ctx, req.Symbol, date.Range{From: window.Start, To: window.End})
	if err != nil {
		return fail(err)
	}
	startClose, ok := series.Close(window.Start)
	if !ok {
		return fail(fmt.Errorf("no close price for %s on %s", req.Symbol, window.Start))
	}
	endClose, ok := series.Close(window.End)
	if !ok {
		return fail(fmt.Errorf("no close price for %s on %s", req.Symbol, window.End))
	}
	stage = StagePricesFetched
	row.StartClose, row.EndClose = startClose, endClose

	// Corporate-action fetches degrade to "no data": an unavailable source
	// or an empty payload yields zero events, not a failed row.
	dividends, err := p.Source.DividendRecords(ctx, req.Symbol)
	if err != nil || len(dividends) == 0 {
		dividends, _ = p.Source.DividendRecordsFallback(ctx, req.Symbol)
	}
	allotments, _ := p.Source.AllotmentRecords(ctx, req.Symbol)
	events := Normalize(dividends, allotments)
	stage = StageEventsNormalized

	sum := Aggregate(events, window.Start, window.End)
	stage = StageAggregated
	row.DividendPerShare = sum.CashPerShare
	row.DividendEvents = sum.CashEvents
	row.AdditionalShares = sum.AdditionalShares
	row.AdditionalEvents = sum.AdditionalEvents
	row.BonusAllotDesc = sum.Description

	addValue, total, annualized, err := Compute(window, startClose, endClose, sum)
	if err != nil {
		return fail(err)
	}
	row.AdditionalValue = addValue
	row.TotalReturn = total
	row.AnnualizedReturn = annualized
	return row
}

// securityName resolves the display name, falling back to the symbol itself.
func (p *Pipeline) securityName(ctx context.Context, symbol string) string {
	name, err := p.Source.SecurityName(ctx, symbol)
	if err != nil || name == "" {
		return symbol
	}
	return name
}

// RunBatch runs the pipeline for every request, at most limit symbols at a
// time (limit <= 0 means sequential). Rows come back in request order
// regardless of completion order, and a batch of N requests always yields N rows.
func (p *Pipeline) RunBatch(ctx context.Context, reqs []Request, limit int) []ReturnResult {
	rows := make([]ReturnResult, len(reqs))
	if limit <= 0 {
		limit = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		g.Go(func() error {
			rows[i] = p.Run(ctx, req)
			return nil
		})
	}
	g.Wait() // Run never returns an error, each row carries its own.
	return rows
}
