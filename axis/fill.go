package axis

import (
	"time"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/timex"
)

// large gaps are filled with a coarser stride
const (
	largeGap       = 100
	largeGapSteps  = 20
	zeroFillMinGap = 1
)

func fillStride(gap int) int {
	if gap >= largeGap {
		return gap / largeGapSteps
	}
	return 1
}

// CanZeroFill reports intervals eligible for zero filling.
func CanZeroFill(interval types.TimeInterval) bool {
	return interval.IsValid() && interval != types.IntervalSecond && interval != types.IntervalMinute
}

// ZeroFill inserts zero buckets into the gaps of a date series, including
// the gaps between the window bounds and the first and last buckets.
// Synthetic buckets are flagged and the gaps next to them are left alone,
// so filling an already filled series adds nothing.
func ZeroFill(s Series, interval types.TimeInterval, window types.DateWindow) Series {
	if !s.IsDate() || !CanZeroFill(interval) {
		return s
	}

	out := Series{Kind: s.Kind, Format: s.Format}
	zero := func(t time.Time) {
		out.append(s.Format.Format(t), float64(0), t, true)
	}

	if s.Len() == 0 {
		if window.IsSet() {
			start := timex.StartOf(*window.Start, interval)
			end := timex.StartOf(*window.End, interval)
			gap := timex.Diff(start, end, interval)
			stride := fillStride(gap)
			for k := 0; k <= gap; k += stride {
				zero(timex.Add(start, interval, k))
			}
		}
		return out
	}

	if window.Start != nil && !s.Filled[0] {
		start := timex.StartOf(window.Start.In(s.Instants[0].Location()), interval)
		gap := timex.Diff(start, s.Instants[0], interval)
		stride := fillStride(gap)
		for k := 0; k < gap; k += stride {
			zero(timex.Add(start, interval, k))
		}
	}

	for i := range s.X {
		if i > 0 && !s.Filled[i-1] && !s.Filled[i] {
			prev := s.Instants[i-1]
			gap := timex.Diff(prev, s.Instants[i], interval)
			if gap > zeroFillMinGap {
				stride := fillStride(gap)
				for k := stride; k < gap; k += stride {
					zero(timex.Add(prev, interval, k))
				}
			}
		}
		out.append(s.X[i], s.Y[i], s.Instants[i], s.Filled[i])
	}

	last := s.Len() - 1
	if window.End != nil && !s.Filled[last] {
		lastInstant := s.Instants[last]
		end := timex.StartOf(window.End.In(lastInstant.Location()), interval)
		gap := timex.Diff(lastInstant, end, interval)
		stride := fillStride(gap)
		for k := stride; k <= gap; k += stride {
			zero(timex.Add(lastInstant, interval, k))
		}
	}
	return out
}
