package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-06-19", want: New(2024, time.June, 19)},
		{in: "2024-6-9", want: New(2024, time.June, 9)},
		{in: "not-a-date", wantErr: true},
		{in: "2024/06/19", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSub_CalendarDays(t *testing.T) {
	start := New(2023, time.June, 19)
	end := New(2024, time.June, 18)
	if got := end.Sub(start); got != 365 {
		t.Errorf("Sub() = %d, want 365", got)
	}
	if got := start.Sub(start); got != 0 {
		t.Errorf("Sub() same day = %d, want 0", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.January, 2)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `"2024-01-02"` {
		t.Errorf("Marshal() = %s, want \"2024-01-02\"", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestCompact(t *testing.T) {
	if got := New(2024, time.June, 9).Compact(); got != "20240609" {
		t.Errorf("Compact() = %q, want 20240609", got)
	}
}
