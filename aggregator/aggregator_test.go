package aggregator

import (
	"testing"

	"github.com/rulego/chartdata/types"
	"github.com/stretchr/testify/assert"
)

func TestBuiltinAggregators(t *testing.T) {
	values := []interface{}{3, "7", "abc", nil, 2.5, "3"}

	tests := []struct {
		op       types.Operation
		expected interface{}
	}{
		{types.OperationNone, "3"},
		{0, "3"},
		{types.OperationCount, float64(6)},
		{types.OperationCountUnique, float64(5)},
		{types.OperationSum, 15.5},
		{types.OperationAvg, 15.5 / 6},
		{types.OperationMin, 2.5},
		{types.OperationMax, float64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			agg := CreateBuiltinAggregator(tt.op)
			for _, v := range values {
				agg.Add(v)
			}
			assert.Equal(t, tt.expected, agg.Result())
		})
	}
}

func TestEmptyAggregators(t *testing.T) {
	assert.Equal(t, float64(0), CreateBuiltinAggregator(types.OperationAvg).Result())
	assert.Equal(t, float64(0), CreateBuiltinAggregator(types.OperationMin).Result())
	assert.Equal(t, float64(0), CreateBuiltinAggregator(types.OperationCountUnique).Result())
	assert.Nil(t, CreateBuiltinAggregator(types.OperationNone).Result())

	minAgg := CreateBuiltinAggregator(types.OperationMin)
	minAgg.Add("n/a")
	assert.Equal(t, float64(0), minAgg.Result())
}

func TestNewIsIndependent(t *testing.T) {
	sum := CreateBuiltinAggregator(types.OperationSum)
	sum.Add(10)
	fresh := sum.New()
	fresh.Add(1)
	assert.Equal(t, float64(10), sum.Result())
	assert.Equal(t, float64(1), fresh.Result())
}

func TestNestedAggregator(t *testing.T) {
	records := [][]interface{}{
		{10, 20},
		{30},
		{},
		{"x", 4},
	}

	tests := []struct {
		name           string
		op             types.Operation
		averageByTotal bool
		expected       interface{}
	}{
		{"count", types.OperationCount, false, float64(5)},
		{"count_unique", types.OperationCountUnique, false, float64(5)},
		{"sum", types.OperationSum, false, float64(64)},
		{"min", types.OperationMin, false, float64(4)},
		{"max", types.OperationMax, false, float64(30)},
		// (15 + 30 + 2) / 3
		{"avg 每条记录平均", types.OperationAvg, false, float64(47) / 3},
		// 64 / 5
		{"avg averageByTotal", types.OperationAvg, true, 12.8},
		{"none", types.OperationNone, false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewNestedAggregator(tt.op, tt.averageByTotal)
			for _, r := range records {
				agg.Add(r)
			}
			assert.Equal(t, tt.expected, agg.Result())
		})
	}

	t.Run("单个值", func(t *testing.T) {
		agg := NewNestedAggregator(types.OperationCount, false)
		agg.Add("a")
		agg.Add(nil)
		assert.Equal(t, float64(1), agg.Result())
	})
}

func TestGroupAggregator(t *testing.T) {
	ga := NewGroupAggregator(CreateBuiltinAggregator(types.OperationSum))
	ga.Add("Feb", 1)
	ga.Add("Jan", 2)
	ga.Add("Feb", 3)
	ga.Touch("Mar")

	assert.Equal(t, []string{"Feb", "Jan", "Mar"}, ga.Keys())
	assert.Equal(t, []interface{}{float64(4), float64(2), float64(0)}, ga.Results())

	empty := NewGroupAggregator(CreateBuiltinAggregator(types.OperationCount))
	assert.Empty(t, empty.Keys())
	assert.Empty(t, empty.Results())
}
