package clock

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	in := time.Date(2025, 3, 14, 23, 59, 58, 123, time.UTC)
	got := DateOf(in)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOf = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 3, 14, 0, 1, 0, 0, time.UTC)
	night := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Fatalf("expected same calendar day for %v and %v", morning, night)
	}
	if SameDay(night, next) {
		t.Fatalf("expected different calendar days for %v and %v", night, next)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 14, 22, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "midnight boundary counts as one day",
			a:    time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "week apart",
			a:    time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 21, 12, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "negative when b precedes a",
			a:    time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC),
			want: -1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DaysBetween(c.a, c.b); got != c.want {
				t.Fatalf("DaysBetween(%v, %v) = %d, want %d", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestFakeClock(t *testing.T) {
	start := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	clk := NewFake(start)

	if !clk.Now().Equal(start) {
		t.Fatalf("Now = %v, want %v", clk.Now(), start)
	}

	clk.Advance(48 * time.Hour)
	if got := clk.Now(); !got.Equal(start.Add(48 * time.Hour)) {
		t.Fatalf("after Advance: Now = %v", got)
	}

	reset := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	clk.Set(reset)
	if !clk.Now().Equal(reset) {
		t.Fatalf("after Set: Now = %v, want %v", clk.Now(), reset)
	}
}
