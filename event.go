package totalreturn

import (
	"sort"

	"github.com/etnz/totalreturn/date"
	"github.com/shopspring/decimal"
)

// EventKind identifies the kind of a corporate action.
type EventKind int

const (
	// CashDividend is a cash payout per held share (派息).
	CashDividend EventKind = iota
	// BonusShare is a free share distribution out of profit (送股).
	BonusShare
	// TransferShare is a free share distribution out of capital reserve (转增).
	TransferShare
	// RightsIssue is a subscription right for new shares (配股). Only the
	// resulting shares are valued, the subscription outflow is not modeled.
	RightsIssue
)

func (k EventKind) String() string {
	switch k {
	case CashDividend:
		return "dividend"
	case BonusShare:
		return "bonus"
	case TransferShare:
		return "transfer"
	case RightsIssue:
		return "rights"
	}
	return "unknown"
}

// glyph is the single-character Chinese marker used in plan descriptions.
func (k EventKind) glyph() string {
	switch k {
	case BonusShare:
		return "送"
	case TransferShare:
		return "转"
	case RightsIssue:
		return "配"
	}
	return ""
}

// Event is a canonical corporate-action event. PerShare is always
// expressed per one held share: per-10-shares upstream figures have been
// divided by 10 before an event exists.
type Event struct {
	Date date.Date
	Kind EventKind
	// PerShare is the cash amount (CashDividend) or the share count added
	// per one held share (bonus, transfer, rights).
	PerShare decimal.Decimal
	// Records is the number of raw upstream rows merged into this event.
	Records int
}

// mergeEvents combines events sharing the same (date, kind) by summing
// their per-share amounts, and returns the result ordered by date then kind.
func mergeEvents(events []Event) []Event {
	type key struct {
		on   date.Date
		kind EventKind
	}
	index := make(map[key]int)
	merged := make([]Event, 0, len(events))
	for _, ev := range events {
		k := key{ev.Date, ev.Kind}
		if i, ok := index[k]; ok {
			merged[i].PerShare = merged[i].PerShare.Add(ev.PerShare)
			merged[i].Records += ev.Records
			continue
		}
		index[k] = len(merged)
		merged = append(merged, ev)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Date != merged[j].Date {
			return merged[i].Date.Before(merged[j].Date)
		}
		return merged[i].Kind < merged[j].Kind
	})
	return merged
}
