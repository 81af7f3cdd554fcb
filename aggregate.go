package totalreturn

import (
	"fmt"
	"strings"

	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// IntervalSummary sums the canonical events whose effective date falls in
// the open-closed interval (start, end]. It is derived per query and never
// persisted.
type IntervalSummary struct {
	// CashPerShare is the accumulated cash dividend per held share.
	CashPerShare decimal.Decimal
	// CashEvents is the number of raw dividend rows behind CashPerShare.
	CashEvents int
	// AdditionalShares is the accumulated share count added per held share
	// by bonus, transfer and rights-issue actions together.
	AdditionalShares decimal.Decimal
	// AdditionalEvents is the number of raw rows behind AdditionalShares.
	AdditionalEvents int
	// Description lists each qualifying share-addition event, date ascending.
	Description string
}

// Aggregate sums events with start < event date <= end. The starting price
// already reflects any action effective on the start date itself, while an
// action on the end date still affects the terminal value. No events in
// range is a valid empty summary, not an error.
func Aggregate(events []Event, start, end date.Date) IntervalSummary {
	var sum IntervalSummary
	var notes []string
	for _, ev := range events {
		if !inInterval(ev.Date, start, end) {
			continue
		}
		switch ev.Kind {
		case CashDividend:
			sum.CashPerShare = sum.CashPerShare.Add(ev.PerShare)
			sum.CashEvents += ev.Records
		case BonusShare, TransferShare, RightsIssue:
			sum.AdditionalShares = sum.AdditionalShares.Add(ev.PerShare)
			sum.AdditionalEvents += ev.Records
			notes = append(notes, fmt.Sprintf("%s: %s%s股/股", ev.Date, ev.Kind.glyph(), ev.PerShare))
		}
	}
	sum.Description = strings.Join(notes, "; ")
	return sum
}

// inInterval implements the open-closed settlement rule (start, end].
func inInterval(on, start, end date.Date) bool {
	return on.After(start) && !on.After(end)
}
