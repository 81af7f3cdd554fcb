package totalreturn

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/totalreturn/date"
)

func TestResolveWindow_SnapsBothEnds(t *testing.T) {
	src := &fakeSource{prices: map[string]*PriceSeries{
		"600519": series(
			"2024-06-17", "1500",
			"2024-06-18", "1510",
			"2024-06-19", "1520",
			"2024-06-20", "1530",
			"2024-06-21", "1540",
		),
	}}
	// 2024-06-15 is a Saturday, 2024-06-23 a Sunday.
	w, err := ResolveWindow(context.Background(), src, "600519", date.MustParse("2024-06-15"), date.MustParse("2024-06-23"))
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}
	if w.Start != date.MustParse("2024-06-17") {
		t.Errorf("start = %v, want next trading day 2024-06-17", w.Start)
	}
	if w.End != date.MustParse("2024-06-21") {
		t.Errorf("end = %v, want last trading day 2024-06-21", w.End)
	}
}

func TestResolveWindow_AbsentEndUsesPreviousTradingDay(t *testing.T) {
	today := date.Today()
	src := &fakeSource{prices: map[string]*PriceSeries{
		"600519": NewPriceSeries().
			Append(today.Add(-3), dec("10")).
			Append(today.Add(-1), dec("11")).
			Append(today, dec("12")),
	}}
	w, err := ResolveWindow(context.Background(), src, "600519", today.Add(-3), date.Date{})
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}
	if !w.End.Before(today) {
		t.Errorf("end = %v, want a day strictly before today %v", w.End, today)
	}
	if w.End != today.Add(-1) {
		t.Errorf("end = %v, want %v", w.End, today.Add(-1))
	}
}

func TestResolveWindow_ReferenceCalendarFallback(t *testing.T) {
	// The target has no data at all; the first reference symbol does.
	src := &fakeSource{prices: map[string]*PriceSeries{
		"600000": series("2024-06-17", "8", "2024-06-18", "8.1", "2024-06-19", "8.2"),
	}}
	w, err := ResolveWindow(context.Background(), src, "688999", date.MustParse("2024-06-16"), date.MustParse("2024-06-19"))
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}
	if w.Start != date.MustParse("2024-06-17") || w.End != date.MustParse("2024-06-19") {
		t.Errorf("window = %v, want 2024-06-17..2024-06-19 from the reference calendar", w)
	}
}

func TestResolveWindow_NoData(t *testing.T) {
	src := &fakeSource{}
	_, err := ResolveWindow(context.Background(), src, "688999", date.MustParse("2024-06-16"), date.MustParse("2024-06-19"))
	if !errors.Is(err, ErrNoTradingWindow) {
		t.Errorf("ResolveWindow() error = %v, want ErrNoTradingWindow", err)
	}
}

func TestResolveWindow_StartAfterRange(t *testing.T) {
	src := &fakeSource{prices: map[string]*PriceSeries{
		"600519": series("2024-06-17", "1500"),
	}}
	_, err := ResolveWindow(context.Background(), src, "600519", date.MustParse("2024-06-18"), date.MustParse("2024-06-19"))
	if !errors.Is(err, ErrNoTradingWindow) {
		t.Errorf("ResolveWindow() error = %v, want ErrNoTradingWindow", err)
	}
}
