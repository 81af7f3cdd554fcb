package totalreturn

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ten is the divisor for figures quoted on the per-10-shares convention.
var ten = decimal.NewFromInt(10)

// Normalize converts raw distribution and rights-issue rows into the
// canonical per-share event list. Structured numeric fields are preferred;
// the free-text plan description is parsed only when no numeric field is
// present. Rows whose text is unrecognized yield no event, never an error.
// Rows sharing the same (ex-date, kind) are merged by summation.
func Normalize(dividends []DividendRecord, allotments []AllotmentRecord) []Event {
	var events []Event
	for _, rec := range dividends {
		if rec.ExDate.IsZero() {
			continue
		}
		if cash, ok := cashPerShare(rec); ok {
			// A zero amount still counts: the upstream explicitly listed a
			// distribution action on that day.
			events = append(events, Event{Date: rec.ExDate, Kind: CashDividend, PerShare: cash, Records: 1})
		}
		if rec.BonusPerTen != nil {
			events = append(events, Event{Date: rec.ExDate, Kind: BonusShare, PerShare: rec.BonusPerTen.Div(ten), Records: 1})
		}
		if rec.TransferPerTen != nil {
			events = append(events, Event{Date: rec.ExDate, Kind: TransferShare, PerShare: rec.TransferPerTen.Div(ten), Records: 1})
		}
	}
	for _, rec := range allotments {
		if rec.ExDate.IsZero() || rec.SharesPerTen == nil {
			continue
		}
		events = append(events, Event{Date: rec.ExDate, Kind: RightsIssue, PerShare: rec.SharesPerTen.Div(ten), Records: 1})
	}
	return mergeEvents(events)
}

// cashPerShare extracts the per-one-share cash dividend from a raw row.
// Preference order: explicit per-share field, per-10-shares field, plan text.
func cashPerShare(rec DividendRecord) (decimal.Decimal, bool) {
	if rec.CashPerShare != nil {
		return *rec.CashPerShare, true
	}
	if rec.CashPerTen != nil {
		return rec.CashPerTen.Div(ten), true
	}
	return ParseCashPerShare(rec.PlanText)
}

// Plan-text grammar. Figures quoted "per N shares" are divided by N.
// Optional infixes 发/息/现金/红利 appear between 派 and the amount.
var (
	// "每股派0.5元", "每股派发现金红利0.5元"
	rePerShare = regexp.MustCompile(`每股派(?:发|息)?(?:现金)?(?:红利)?([0-9.]+)元`)
	// "每10股派4.3元", "每10股派发现金红利4.3元"
	rePerN = regexp.MustCompile(`每([0-9]+)股派(?:发|息)?(?:现金)?(?:红利)?([0-9.]+)元`)
	// "10派5元", also matches the tail of "10送2转3派5元"
	reNPay = regexp.MustCompile(`(?:^|[^0-9.])([0-9]+)(?:送[0-9.]*股?)?(?:转[0-9.]*股?)?派([0-9.]+)元`)
	// last resort: a bare "派0.5元" with a per-10 marker elsewhere in the text
	reBarePay = regexp.MustCompile(`派([0-9.]+)元`)
)

// ParseCashPerShare parses a free-text dividend-plan description and
// returns the cash amount per one held share. Parsing is best-effort:
// unrecognized text reports false.
func ParseCashPerShare(text string) (decimal.Decimal, bool) {
	if text == "" {
		return decimal.Decimal{}, false
	}
	// Normalize full-width punctuation and drop spaces before matching.
	text = strings.NewReplacer("（", "(", "）", ")", " ", "", "　", "").Replace(text)

	if m := rePerShare.FindStringSubmatch(text); m != nil {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v, true
		}
	}
	if m := rePerN.FindStringSubmatch(text); m != nil {
		n, errN := decimal.NewFromString(m[1])
		v, errV := decimal.NewFromString(m[2])
		if errN == nil && errV == nil && !n.IsZero() {
			return v.Div(n), true
		}
	}
	if m := reNPay.FindStringSubmatch(text); m != nil {
		n, errN := decimal.NewFromString(m[1])
		v, errV := decimal.NewFromString(m[2])
		if errN == nil && errV == nil && !n.IsZero() {
			return v.Div(n), true
		}
	}
	if m := reBarePay.FindStringSubmatch(text); m != nil && strings.Contains(text, "每10股") {
		if v, err := decimal.NewFromString(m[1]); err == nil {
			return v.Div(ten), true
		}
	}
	return decimal.Decimal{}, false
}
