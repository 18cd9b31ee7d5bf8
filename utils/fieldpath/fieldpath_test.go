package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseFieldPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []FieldPart
		hasError bool
	}{
		{
			name:     "简单字段",
			path:     "name",
			expected: []FieldPart{{Type: PartField, Name: "name"}},
		},
		{
			name: "嵌套字段",
			path: "user.profile.name",
			expected: []FieldPart{
				{Type: PartField, Name: "user"},
				{Type: PartField, Name: "profile"},
				{Type: PartField, Name: "name"},
			},
		},
		{
			name: "数组索引与字段",
			path: "users[1].name",
			expected: []FieldPart{
				{Type: PartField, Name: "users"},
				{Type: PartArrayIndex, Index: 1, Key: "1"},
				{Type: PartField, Name: "name"},
			},
		},
		{
			name: "带点的字符串键",
			path: "labels['app.kubernetes.io/name']",
			expected: []FieldPart{
				{Type: PartField, Name: "labels"},
				{Type: PartMapKey, Key: "app.kubernetes.io/name"},
			},
		},
		{
			name: "二维索引",
			path: "matrix[1][-1]",
			expected: []FieldPart{
				{Type: PartField, Name: "matrix"},
				{Type: PartArrayIndex, Index: 1, Key: "1"},
				{Type: PartArrayIndex, Index: -1, Key: "-1"},
			},
		},
		{name: "括号未闭合", path: "data[0", hasError: true},
		{name: "非法括号内容", path: "data[abc]", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessor, err := ParseFieldPath(tt.path)
			if tt.hasError {
				var accessErr *FieldAccessError
				assert.ErrorAs(t, err, &accessErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, accessor.Parts)
		})
	}
}

func TestGetNestedField(t *testing.T) {
	type device struct {
		Name  string
		Model string `json:"model_name"`
	}

	testData := map[string]interface{}{
		"users": []interface{}{
			map[string]interface{}{
				"id":      1,
				"profile": map[string]interface{}{"name": "Alice"},
				"scores":  []interface{}{95, 87, 92},
			},
			map[string]interface{}{
				"id":      2,
				"profile": map[string]interface{}{"name": "Bob"},
			},
		},
		"config": map[string]interface{}{"settings": map[string]interface{}{"timeout": 5000}},
		"doc":    bson.D{{Key: "status", Value: "active"}},
		"meta":   bson.M{"source": "mongo"},
		"device": &device{Name: "sensor", Model: "x1"},
		"matrix": []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}},
	}

	tests := []struct {
		name     string
		path     string
		expected interface{}
		found    bool
	}{
		{"数组元素字段", "users[1].profile.name", "Bob", true},
		{"Map键访问", "config.settings['timeout']", 5000, true},
		{"负数索引", "users[0].scores[-1]", 92, true},
		{"二维数组", "matrix[1][0]", 3, true},
		{"bson.D", "doc.status", "active", true},
		{"bson.M", "meta.source", "mongo", true},
		{"结构体指针", "device.Name", "sensor", true},
		{"结构体json标签", "device.model_name", "x1", true},
		{"不存在的字段", "users[0].profile.age", nil, false},
		{"超出索引范围", "users[10].id", nil, false},
		{"空路径", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := GetNestedField(testData, tt.path)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	record := map[string]interface{}{"a": 1}

	v, ok := Lookup(record, "")
	assert.True(t, ok)
	assert.Equal(t, record, v)

	v, ok = Lookup(record, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = Lookup(nil, "")
	assert.False(t, ok)
}

func TestToSlice(t *testing.T) {
	items, ok := ToSlice([]interface{}{1, 2})
	assert.True(t, ok)
	assert.Len(t, items, 2)

	items, ok = ToSlice(bson.A{"x"})
	assert.True(t, ok)
	assert.Equal(t, []interface{}{"x"}, items)

	items, ok = ToSlice([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, []interface{}{"a", "b"}, items)

	_, ok = ToSlice([]byte("abc"))
	assert.False(t, ok)
	_, ok = ToSlice(bson.D{{Key: "a", Value: 1}})
	assert.False(t, ok)
	_, ok = ToSlice(map[string]interface{}{})
	assert.False(t, ok)
}

func TestFieldAccessErrorMessage(t *testing.T) {
	err := &FieldAccessError{Path: "a[", Message: "unmatched bracket in field path"}
	assert.Equal(t, "field access error for path 'a[': unmatched bracket in field path", err.Error())
}
