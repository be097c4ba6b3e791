package domain

import (
	"testing"
	"time"
)

func TestTimeWindow_Start(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("MSK", 3*60*60)
	// Wednesday
	wednesday := time.Date(2024, 5, 15, 13, 45, 12, 0, loc)

	cases := []struct {
		name   string
		window TimeWindow
		ref    time.Time
		want   time.Time
	}{
		{
			name:   "day is local midnight",
			window: WindowDay,
			ref:    wednesday,
			want:   time.Date(2024, 5, 15, 0, 0, 0, 0, loc),
		},
		{
			name:   "week from wednesday is most recent monday",
			window: WindowWeek,
			ref:    wednesday,
			want:   time.Date(2024, 5, 13, 0, 0, 0, 0, loc),
		},
		{
			name:   "week on monday is that monday",
			window: WindowWeek,
			ref:    time.Date(2024, 5, 13, 0, 0, 0, 0, loc),
			want:   time.Date(2024, 5, 13, 0, 0, 0, 0, loc),
		},
		{
			name:   "week on sunday reaches back six days",
			window: WindowWeek,
			ref:    time.Date(2024, 5, 19, 23, 59, 59, 0, loc),
			want:   time.Date(2024, 5, 13, 0, 0, 0, 0, loc),
		},
		{
			name:   "month is the first",
			window: WindowMonth,
			ref:    wednesday,
			want:   time.Date(2024, 5, 1, 0, 0, 0, 0, loc),
		},
		{
			name:   "unknown window degrades to day",
			window: TimeWindow("year"),
			ref:    wednesday,
			want:   time.Date(2024, 5, 15, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.window.Start(tc.ref)
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTimeWindow_Start_KeepsLocation(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("YEKT", 5*60*60)
	ref := time.Date(2024, 1, 1, 10, 0, 0, 0, loc)

	got := WindowDay.Start(ref)
	if got.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, got.Location())
	}
}
