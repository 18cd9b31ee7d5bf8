/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cast

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		input  interface{}
		expect float64
		ok     bool
	}{
		{"int", 123, 123, true},
		{"int8", int8(12), 12, true},
		{"uint64", uint64(7), 7, true},
		{"float32", float32(1.5), 1.5, true},
		{"float64", 2.25, 2.25, true},
		{"json.Number", json.Number("42.5"), 42.5, true},
		{"数字字符串", "123", 123, true},
		{"负小数字符串", "-3.5", -3.5, true},
		{"带空格", " 8 ", 8, true},
		{"科学计数法不算", "1e5", 0, false},
		{"文本", "abc", 0, false},
		{"布尔值", true, 0, false},
		{"nil", nil, 0, false},
		{"数组", []int{1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, got)
			assert.Equal(t, tt.expect, ToFloatOrZero(tt.input))
			assert.Equal(t, tt.ok, IsNumeric(tt.input))
		})
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		input  interface{}
		expect float64
		ok     bool
	}{
		{"$123.45", 123.45, true},
		{"$1,234.50 USD", 1234.5, true},
		{"-12%", -12, true},
		{10, 10, true},
		{"n/a", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractNumber(tt.input)
		assert.Equal(t, tt.ok, ok, "%v", tt.input)
		assert.Equal(t, tt.expect, got, "%v", tt.input)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 123.45, Round2(123.4500001))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 5.0, Round2(5))

	assert.Equal(t, "123.45", FormatNumber(123.45))
	assert.Equal(t, "1", FormatNumber(1))
	assert.Equal(t, "0.33", FormatNumber(1.0/3))

	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.NotPanics(t, func() {
			assert.Equal(t, float64(0), Round2(f))
			assert.Equal(t, "0", FormatNumber(f))
		})
		assert.False(t, IsFinite(f))
	}
	assert.True(t, IsFinite(-1.5))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "1704067200", ToString(float64(1704067200)))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, `{"a":1}`, ToString(map[string]interface{}{"a": 1}))
	assert.Equal(t, "[1,2]", ToString([]interface{}{1, 2}))
}
