package leave

import (
	"testing"
	"time"
)

func date(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{"partial overlap at the end", date(5), date(10), date(8), date(12), true},
		{"partial overlap at the start", date(8), date(12), date(5), date(10), true},
		{"contained interval", date(5), date(10), date(6), date(7), true},
		{"containing interval", date(6), date(7), date(5), date(10), true},
		{"identical intervals", date(5), date(10), date(5), date(10), true},
		{"shared end boundary", date(5), date(10), date(10), date(12), true},
		{"shared start boundary", date(10), date(12), date(5), date(10), true},
		{"single-day equals single-day", date(5), date(5), date(5), date(5), true},
		{"disjoint after", date(5), date(10), date(11), date(15), false},
		{"disjoint before", date(11), date(15), date(5), date(10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.startA, tt.endA, tt.startB, tt.endB); got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tt.startA, tt.endA, tt.startB, tt.endB, got, tt.want)
			}
		})
	}
}
