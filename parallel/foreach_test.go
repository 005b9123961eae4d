package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForEach(t *testing.T) {
	testCases := []struct {
		name   string
		length int
		limit  int
		calls  int64
	}{
		{"empty", 0, 4, 0},
		{"negative", -3, 4, 0},
		{"zero_limit", 10, 0, 10},
		{"single", 1, 1, 1},
		{"wide", 1000, 16, 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int64
			var seen = make([]atomic.Bool, max(tc.length, 0))
			ForEach(tc.length, tc.limit, func(i int) {
				calls.Add(1)
				if seen[i].Swap(true) {
					t.Errorf("index %d visited twice", i)
				}
			})
			if calls.Load() != tc.calls {
				t.Errorf("got %d calls, want %d", calls.Load(), tc.calls)
			}
		})
	}
}

// concurrency never exceeds the limit
func TestForEachLimit(t *testing.T) {
	const limit = 3
	var running, peak atomic.Int64
	ForEach(200, limit, func(i int) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		running.Add(-1)
	})
	if peak.Load() > limit {
		t.Errorf("peak concurrency %d exceeds limit %d", peak.Load(), limit)
	}
}
