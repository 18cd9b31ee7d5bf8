package aggregator

import (
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
)

// AggregatorFunction reduces the values of one bucket.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() interface{}
}

// LastAggregator keeps the last value added (operation none).
type LastAggregator struct {
	value interface{}
}

func (l *LastAggregator) New() AggregatorFunction {
	return &LastAggregator{}
}

func (l *LastAggregator) Add(v interface{}) {
	l.value = v
}

func (l *LastAggregator) Result() interface{} {
	return l.value
}

type CountAggregator struct {
	count int
}

func (c *CountAggregator) New() AggregatorFunction {
	return &CountAggregator{}
}

func (c *CountAggregator) Add(_ interface{}) {
	c.count++
}

func (c *CountAggregator) Result() interface{} {
	return float64(c.count)
}

// CountUniqueAggregator counts distinct stringified values.
type CountUniqueAggregator struct {
	seen map[string]struct{}
}

func (c *CountUniqueAggregator) New() AggregatorFunction {
	return &CountUniqueAggregator{}
}

func (c *CountUniqueAggregator) Add(v interface{}) {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	c.seen[cast.ToString(v)] = struct{}{}
}

func (c *CountUniqueAggregator) Result() interface{} {
	return float64(len(c.seen))
}

// SumAggregator: non-numeric values count as 0.
type SumAggregator struct {
	value float64
}

func (s *SumAggregator) New() AggregatorFunction {
	return &SumAggregator{}
}

func (s *SumAggregator) Add(v interface{}) {
	s.value += cast.ToFloatOrZero(v)
}

func (s *SumAggregator) Result() interface{} {
	return s.value
}

// AvgAggregator: non-numeric values count as 0.
type AvgAggregator struct {
	sum   float64
	count int
}

func (a *AvgAggregator) New() AggregatorFunction {
	return &AvgAggregator{}
}

func (a *AvgAggregator) Add(v interface{}) {
	a.sum += cast.ToFloatOrZero(v)
	a.count++
}

func (a *AvgAggregator) Result() interface{} {
	if a.count == 0 {
		return float64(0)
	}
	return a.sum / float64(a.count)
}

// MinAggregator skips non-numeric values; 0 when nothing was numeric.
type MinAggregator struct {
	value float64
	set   bool
}

func (m *MinAggregator) New() AggregatorFunction {
	return &MinAggregator{}
}

func (m *MinAggregator) Add(v interface{}) {
	f, ok := cast.ToFloat64(v)
	if !ok {
		return
	}
	if !m.set || f < m.value {
		m.value = f
		m.set = true
	}
}

func (m *MinAggregator) Result() interface{} {
	return m.value
}

// MaxAggregator skips non-numeric values; 0 when nothing was numeric.
type MaxAggregator struct {
	value float64
	set   bool
}

func (m *MaxAggregator) New() AggregatorFunction {
	return &MaxAggregator{}
}

func (m *MaxAggregator) Add(v interface{}) {
	f, ok := cast.ToFloat64(v)
	if !ok {
		return
	}
	if !m.set || f > m.value {
		m.value = f
		m.set = true
	}
}

func (m *MaxAggregator) Result() interface{} {
	return m.value
}

// CreateBuiltinAggregator returns a fresh aggregator for op. An unset
// operation behaves like none.
func CreateBuiltinAggregator(op types.Operation) AggregatorFunction {
	switch op.OrDefault() {
	case types.OperationCount:
		return &CountAggregator{}
	case types.OperationCountUnique:
		return &CountUniqueAggregator{}
	case types.OperationSum:
		return &SumAggregator{}
	case types.OperationAvg:
		return &AvgAggregator{}
	case types.OperationMin:
		return &MinAggregator{}
	case types.OperationMax:
		return &MaxAggregator{}
	default:
		return &LastAggregator{}
	}
}
