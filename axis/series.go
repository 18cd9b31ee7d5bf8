package axis

import (
	"time"

	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/rulego/chartdata/valuetype"
)

// Series is the resolved axis of one dataset. X and Y always have the
// same length; for date axes Instants and Filled are aligned with them.
type Series struct {
	X []string
	Y []interface{}
	// Kind is the kind of the raw x values.
	Kind   valuetype.Kind
	Format timex.BucketFormat
	// Instants holds the bucket start of every date label.
	Instants []time.Time
	// Filled marks synthetic zero buckets.
	Filled []bool
}

func (s Series) Len() int {
	return len(s.X)
}

func (s Series) IsDate() bool {
	return s.Kind == valuetype.KindDate
}

// append adds a point keeping the parallel slices aligned.
func (s *Series) append(label string, value interface{}, instant time.Time, filled bool) {
	s.X = append(s.X, label)
	s.Y = append(s.Y, value)
	if s.IsDate() {
		s.Instants = append(s.Instants, instant)
		s.Filled = append(s.Filled, filled)
	}
}

// Cumulative replaces numeric values with the running total. A non-numeric
// value is kept as is and restarts the total.
func Cumulative(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	var running float64
	for i, v := range values {
		f, ok := cast.ToFloat64(v)
		if !ok {
			out[i] = v
			running = 0
			continue
		}
		running += f
		out[i] = running
	}
	return out
}
