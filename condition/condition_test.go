package condition

import (
	"testing"
	"time"

	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{Interval: types.IntervalDay, Location: time.UTC, Logger: logger.NewDiscardLogger()}
}

func records(r ...map[string]interface{}) []interface{} {
	out := make([]interface{}, len(r))
	for i := range r {
		out[i] = r[i]
	}
	return out
}

func TestFilter_StatusIs(t *testing.T) {
	data := records(
		map[string]interface{}{"status": "active"},
		map[string]interface{}{"status": "inactive"},
	)
	res, err := Filter(data, "root[]", []types.Condition{
		{ID: "c1", Field: "status", Operator: types.OperatorIs, Value: "active", Exposed: true},
	}, testOptions())
	require.NoError(t, err)

	filtered := res.Data.([]interface{})
	require.Len(t, filtered, 1)
	assert.Equal(t, "active", filtered[0].(map[string]interface{})["status"])

	require.Len(t, res.Options, 1)
	assert.Equal(t, ConditionOptions{ID: "c1", Field: "status", Exposed: true, Values: []interface{}{"active", "inactive"}}, res.Options[0])
	// 输入不被修改
	assert.Len(t, data, 2)
}

func TestFilter_Operators(t *testing.T) {
	data := records(
		map[string]interface{}{"name": "Alice", "age": 30, "score": 12, "vip": true, "created": "2024-01-01T10:00:00Z", "tags": []interface{}{"a", "b"}},
		map[string]interface{}{"name": "bob", "age": 25, "score": "7", "vip": false, "created": "2024-01-02T09:00:00Z", "tags": []interface{}{"c"}},
		map[string]interface{}{"name": "Carol", "created": "2024-01-03T08:00:00Z"},
	)

	tests := []struct {
		name     string
		cond     types.Condition
		expected int
	}{
		{"string is", types.Condition{Field: "name", Operator: types.OperatorIs, Value: "bob"}, 1},
		{"string isNot", types.Condition{Field: "name", Operator: types.OperatorIsNot, Value: "bob"}, 2},
		{"string contains 不区分大小写", types.Condition{Field: "name", Operator: types.OperatorContains, Value: "AL"}, 1},
		{"string notContains", types.Condition{Field: "name", Operator: types.OperatorNotContains, Value: "o"}, 1},
		{"string greaterThan 字典序", types.Condition{Field: "name", Operator: types.OperatorGreaterThan, Value: "B"}, 2},
		{"number greaterThan", types.Condition{Field: "age", Operator: types.OperatorGreaterThan, Value: 26}, 1},
		{"number 字符串条件值", types.Condition{Field: "age", Operator: types.OperatorLessOrEqual, Value: "30"}, 2},
		{"number contains 子串", types.Condition{Field: "age", Operator: types.OperatorContains, Value: "3"}, 1},
		{"数字字符串按数字比较", types.Condition{Field: "score", Operator: types.OperatorGreaterThan, Value: "8"}, 1},
		{"boolean is", types.Condition{Field: "vip", Operator: types.OperatorIs, Value: true}, 1},
		{"boolean isNot", types.Condition{Field: "vip", Operator: types.OperatorIsNot, Value: "true"}, 2},
		{"boolean greaterThan 不支持", types.Condition{Field: "vip", Operator: types.OperatorGreaterThan, Value: true}, 3},
		{"date is 按天比较", types.Condition{Field: "created", Operator: types.OperatorIs, Value: "2024-01-02"}, 1},
		{"date greaterOrEqual", types.Condition{Field: "created", Operator: types.OperatorGreaterOrEqual, Value: "2024-01-02"}, 2},
		{"date lessThan", types.Condition{Field: "created", Operator: types.OperatorLessThan, Value: "2024-01-02T23:00:00Z"}, 1},
		{"date contains 不支持", types.Condition{Field: "created", Operator: types.OperatorContains, Value: "2024"}, 3},
		{"array contains", types.Condition{Field: "tags", Operator: types.OperatorContains, Value: "c"}, 1},
		{"array notContains", types.Condition{Field: "tags", Operator: types.OperatorNotContains, Value: "a"}, 2},
		{"isNull", types.Condition{Field: "vip", Operator: types.OperatorIsNull}, 1},
		{"isNotNull", types.Condition{Field: "vip", Operator: types.OperatorIsNotNull}, 2},
		{"缺少条件值", types.Condition{Field: "name", Operator: types.OperatorIs}, 3},
		{"空字符串条件值", types.Condition{Field: "name", Operator: types.OperatorIs, Value: ""}, 3},
		{"字段不存在只支持空值判断", types.Condition{Field: "missing", Operator: types.OperatorIs, Value: "x"}, 3},
		{"字段不存在 isNull", types.Condition{Field: "missing", Operator: types.OperatorIsNull}, 3},
		{"绝对路径字段", types.Condition{Field: "root[].name", Operator: types.OperatorIs, Value: "Carol"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Filter(data, "root[].created", []types.Condition{tt.cond}, testOptions())
			require.NoError(t, err)
			assert.Len(t, res.Data, tt.expected)
		})
	}
}

func TestFilter_DatePrecision(t *testing.T) {
	data := records(
		map[string]interface{}{"ts": "2024-01-01T10:15:00Z"},
		map[string]interface{}{"ts": "2024-01-01T10:45:00Z"},
		map[string]interface{}{"ts": "2024-01-01T11:05:00Z"},
	)
	cond := []types.Condition{{Field: "ts", Operator: types.OperatorIs, Value: "2024-01-01T10:00:00Z"}}

	opts := testOptions()
	res, err := Filter(data, "root[]", cond, opts)
	require.NoError(t, err)
	assert.Len(t, res.Data, 3)

	opts.Interval = types.IntervalHour
	res, err = Filter(data, "root[]", cond, opts)
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
}

func TestFilter_Monotonic(t *testing.T) {
	data := records(
		map[string]interface{}{"status": "active", "amount": 10},
		map[string]interface{}{"status": "active", "amount": 20},
		map[string]interface{}{"status": "inactive", "amount": 30},
		map[string]interface{}{"status": "pending", "amount": 40},
	)
	conditions := []types.Condition{
		{Field: "amount", Operator: types.OperatorGreaterThan, Value: 5},
		{Field: "status", Operator: types.OperatorIsNot, Value: "pending"},
		{Field: "amount", Operator: types.OperatorLessThan, Value: 25},
		{Field: "status", Operator: types.OperatorContains, Value: "act"},
		{Field: "status", Operator: types.OperatorIs, Value: "active"},
	}

	previous := len(data)
	for i := range conditions {
		res, err := Filter(data, "root[]", conditions[:i+1], testOptions())
		require.NoError(t, err)
		size := len(res.Data.([]interface{}))
		assert.LessOrEqual(t, size, previous, "condition %d", i)
		previous = size
	}
	assert.Equal(t, 2, previous)
}

func TestFilter_ValuesBeforeEachCondition(t *testing.T) {
	data := records(
		map[string]interface{}{"status": "active", "country": "DE"},
		map[string]interface{}{"status": "inactive", "country": "FR"},
		map[string]interface{}{"status": "active", "country": "DE"},
	)
	res, err := Filter(data, "root[]", []types.Condition{
		{Field: "status", Operator: types.OperatorIs, Value: "active"},
		{Field: "country", Operator: types.OperatorIs, Value: "DE"},
	}, testOptions())
	require.NoError(t, err)
	require.Len(t, res.Options, 2)
	assert.Equal(t, []interface{}{"active", "inactive"}, res.Options[0].Values)
	assert.Equal(t, []interface{}{"DE"}, res.Options[1].Values)
}

func TestFilter_SubArray(t *testing.T) {
	data := map[string]interface{}{
		"total": 2,
		"data": map[string]interface{}{
			"rows": []interface{}{
				map[string]interface{}{"status": "active"},
				map[string]interface{}{"status": "inactive"},
			},
		},
	}
	res, err := Filter(data, "root.data.rows[].status", []types.Condition{
		{Field: "root.data.rows[].status", Operator: types.OperatorIs, Value: "inactive"},
	}, testOptions())
	require.NoError(t, err)

	out := res.Data.(map[string]interface{})
	assert.Equal(t, 2, out["total"])
	rows := out["data"].(map[string]interface{})["rows"].([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "inactive", rows[0].(map[string]interface{})["status"])
}

func TestFilter_NestedField(t *testing.T) {
	data := records(
		map[string]interface{}{"id": 1, "items": []interface{}{map[string]interface{}{"sku": "A"}, map[string]interface{}{"sku": "B"}}},
		map[string]interface{}{"id": 2, "items": []interface{}{map[string]interface{}{"sku": "C"}}},
	)
	res, err := Filter(data, "root[]", []types.Condition{
		{Field: "root[].items[].sku", Operator: types.OperatorIs, Value: "B"},
	}, testOptions())
	require.NoError(t, err)
	assert.Len(t, res.Data, 1)
	assert.Equal(t, []interface{}{"A", "B", "C"}, res.Options[0].Values)
}

func TestFilter_InvalidBasePath(t *testing.T) {
	_, err := Filter(records(), "root[].a[].b[].c", nil, testOptions())
	assert.Error(t, err)
}

func TestFilterDateRange(t *testing.T) {
	data := records(
		map[string]interface{}{"created": "2023-12-31T23:00:00Z"},
		map[string]interface{}{"created": "2024-01-01T05:00:00Z"},
		map[string]interface{}{"created": "2024-01-04T22:00:00Z"},
		map[string]interface{}{"created": "2024-01-05T00:00:00Z"},
		map[string]interface{}{"created": "not a date"},
	)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	out, err := FilterDateRange(data, "root[]", "root[].created", types.NewDateWindow(&start, &end), testOptions())
	require.NoError(t, err)
	assert.Len(t, out, 2)

	t.Run("未配置窗口", func(t *testing.T) {
		out, err := FilterDateRange(data, "root[]", "created", types.DateWindow{}, testOptions())
		require.NoError(t, err)
		assert.Len(t, out, 5)
	})

	t.Run("只有开始日期", func(t *testing.T) {
		out, err := FilterDateRange(data, "root[]", "created", types.NewDateWindow(&start, nil), testOptions())
		require.NoError(t, err)
		assert.Len(t, out, 3)
	})
}
