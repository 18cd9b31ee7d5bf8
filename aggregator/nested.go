package aggregator

import (
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
)

// NestedAggregator reduces collections nested inside each record, e.g. the
// prices of root[].items[].price. Every Add receives the values of one
// record's collection.
//
// count is the number of nested items, sum their total and min/max the
// extremes over all items. avg is the mean of the per-record means, or with
// averageByTotal the pooled mean over all items of the bucket.
type NestedAggregator struct {
	op             types.Operation
	averageByTotal bool

	items    int
	sum      float64
	means    []float64
	unique   map[string]struct{}
	last     interface{}
	extreme  float64
	hasValue bool
}

func NewNestedAggregator(op types.Operation, averageByTotal bool) *NestedAggregator {
	return &NestedAggregator{op: op.OrDefault(), averageByTotal: averageByTotal}
}

func (n *NestedAggregator) New() AggregatorFunction {
	return NewNestedAggregator(n.op, n.averageByTotal)
}

// Add takes a []interface{} collection; any other value is one item.
func (n *NestedAggregator) Add(v interface{}) {
	collection, ok := v.([]interface{})
	if !ok {
		if v == nil {
			return
		}
		collection = []interface{}{v}
	}

	var recordSum float64
	for _, item := range collection {
		n.items++
		n.last = item
		f, numeric := cast.ToFloat64(item)
		recordSum += f
		switch n.op {
		case types.OperationCountUnique:
			if n.unique == nil {
				n.unique = make(map[string]struct{})
			}
			n.unique[cast.ToString(item)] = struct{}{}
		case types.OperationMin:
			if numeric && (!n.hasValue || f < n.extreme) {
				n.extreme, n.hasValue = f, true
			}
		case types.OperationMax:
			if numeric && (!n.hasValue || f > n.extreme) {
				n.extreme, n.hasValue = f, true
			}
		}
	}
	n.sum += recordSum
	if len(collection) > 0 {
		n.means = append(n.means, recordSum/float64(len(collection)))
	}
}

func (n *NestedAggregator) Result() interface{} {
	switch n.op {
	case types.OperationCount:
		return float64(n.items)
	case types.OperationCountUnique:
		return float64(len(n.unique))
	case types.OperationSum:
		return n.sum
	case types.OperationMin, types.OperationMax:
		return n.extreme
	case types.OperationAvg:
		if n.averageByTotal {
			if n.items == 0 {
				return float64(0)
			}
			return n.sum / float64(n.items)
		}
		if len(n.means) == 0 {
			return float64(0)
		}
		var total float64
		for _, m := range n.means {
			total += m
		}
		return total / float64(len(n.means))
	default:
		return n.last
	}
}
