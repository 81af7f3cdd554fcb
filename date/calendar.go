package date

import (
	"slices"
	"sort"
)

// Calendar stores the sorted, unique set of known trading days for one
// security (or for a reference security used as a market-wide calendar).
// The zero value is an empty calendar ready to use.
type Calendar struct {
	days []Date
}

// NewCalendar returns a Calendar holding the given days, deduplicated and sorted.
func NewCalendar(days ...Date) *Calendar {
	c := &Calendar{}
	for _, on := range days {
		c.Add(on)
	}
	return c
}

// Add inserts a trading day. Adding a day twice is a no-op.
func (c *Calendar) Add(on Date) *Calendar {
	if slices.Contains(c.days, on) {
		return c
	}
	c.days = append(c.days, on)
	sort.Slice(c.days, func(i, j int) bool { return c.days[i].Before(c.days[j]) })
	return c
}

// Len returns the number of trading days in the calendar.
func (c *Calendar) Len() int { return len(c.days) }

// Contains reports whether on is a known trading day.
func (c *Calendar) Contains(on Date) bool { return slices.Contains(c.days, on) }

// NextOnOrAfter returns the first trading day >= on.
func (c *Calendar) NextOnOrAfter(on Date) (Date, bool) {
	for _, d := range c.days {
		if !d.Before(on) {
			return d, true
		}
	}
	return Date{}, false
}

// LastOnOrBefore returns the last trading day <= on.
func (c *Calendar) LastOnOrBefore(on Date) (Date, bool) {
	for i := len(c.days) - 1; i >= 0; i-- {
		if !c.days[i].After(on) {
			return c.days[i], true
		}
	}
	return Date{}, false
}

// LastBefore returns the last trading day strictly before on.
func (c *Calendar) LastBefore(on Date) (Date, bool) {
	for i := len(c.days) - 1; i >= 0; i-- {
		if c.days[i].Before(on) {
			return c.days[i], true
		}
	}
	return Date{}, false
}

// Days returns the trading days in chronological order. The returned slice
// is owned by the calendar and must not be mutated.
func (c *Calendar) Days() []Date { return c.days }
