package reflectutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStruct 用于测试的结构体
type TestStruct struct {
	Name      string  `json:"name"`
	Age       int     `json:"age,omitempty"`
	Country   string  `bson:"country_code"`
	Balance   float64 `json:"-"`
	CreatedAt string
	secret    string
}

// TestSafeFieldByName 测试 SafeFieldByName 函数的基本功能
func TestSafeFieldByName(t *testing.T) {
	testObj := TestStruct{Name: "John Doe", Age: 30, Country: "NO", Balance: 1000.5, CreatedAt: "2024-01-01", secret: "x"}

	tests := []struct {
		name     string
		field    string
		expected interface{}
	}{
		{name: "field name", field: "Name", expected: "John Doe"},
		{name: "json tag", field: "name", expected: "John Doe"},
		{name: "json tag with options", field: "age", expected: 30},
		{name: "bson tag", field: "country_code", expected: "NO"},
		{name: "ignored tag keeps field name", field: "Balance", expected: 1000.5},
		{name: "untagged", field: "CreatedAt", expected: "2024-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := SafeFieldByName(reflect.ValueOf(testObj), tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, field.Interface())

			field, err = SafeFieldByName(reflect.ValueOf(&testObj), tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, field.Interface())
		})
	}
}

func TestSafeFieldByName_Errors(t *testing.T) {
	var nilPtr *TestStruct
	tests := []struct {
		name  string
		value reflect.Value
		field string
	}{
		{name: "invalid value", value: reflect.Value{}, field: "Name"},
		{name: "nil pointer", value: reflect.ValueOf(nilPtr), field: "Name"},
		{name: "not a struct", value: reflect.ValueOf(42), field: "Name"},
		{name: "missing field", value: reflect.ValueOf(TestStruct{}), field: "Missing"},
		{name: "unexported field", value: reflect.ValueOf(TestStruct{}), field: "secret"},
		{name: "ignored json tag", value: reflect.ValueOf(TestStruct{}), field: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SafeFieldByName(tt.value, tt.field)
			assert.Error(t, err)
		})
	}
}

func TestFieldValue(t *testing.T) {
	v, ok := FieldValue(&TestStruct{Name: "ann"}, "name")
	assert.True(t, ok)
	assert.Equal(t, "ann", v)

	_, ok = FieldValue(map[string]interface{}{"name": "ann"}, "name")
	assert.False(t, ok)
}
