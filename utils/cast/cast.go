/*
 * Copyright 2024 The RuleGo Authors.
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

// Package cast holds the numeric coercion rules of the pipeline on top of
// github.com/spf13/cast. Unlike spf13/cast, booleans and free text are never
// numbers here.
package cast

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	spfcast "github.com/spf13/cast"
)

var (
	// bare integer or decimal, e.g. "12", "-3.5"
	numericStringRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	// first number inside formatted text, e.g. "$1,234.50 USD"
	numberInTextRegex = regexp.MustCompile(`-?\d+(\.\d+)?`)
)

// IsNumericString reports bare integer/decimal strings.
func IsNumericString(s string) bool {
	return numericStringRegex.MatchString(strings.TrimSpace(s))
}

// ToFloat64 coerces numbers and bare numeric strings.
func ToFloat64(x any) (float64, bool) {
	switch v := x.(type) {
	case nil, bool:
		return 0, false
	case string:
		if !IsNumericString(v) {
			return 0, false
		}
		f, err := spfcast.ToFloat64E(strings.TrimSpace(v))
		return f, err == nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := spfcast.ToFloat64E(v)
		return f, err == nil
	default:
		return 0, false
	}
}

// ToFloatOrZero coerces like ToFloat64 and returns 0 for anything else.
func ToFloatOrZero(x any) float64 {
	f, _ := ToFloat64(x)
	return f
}

// IsNumeric reports values ToFloat64 accepts.
func IsNumeric(x any) bool {
	_, ok := ToFloat64(x)
	return ok
}

// ExtractNumber parses the first number out of formatted text, ignoring
// thousands separators. Numbers pass through.
func ExtractNumber(x any) (float64, bool) {
	if f, ok := ToFloat64(x); ok {
		return f, true
	}
	s, ok := x.(string)
	if !ok {
		return 0, false
	}
	match := numberInTextRegex.FindString(strings.ReplaceAll(s, ",", ""))
	if match == "" {
		return 0, false
	}
	f, err := spfcast.ToFloat64E(match)
	return f, err == nil
}

// Round2 rounds half away from zero to two decimals. Infinities and NaN
// become 0.
func Round2(f float64) float64 {
	if !IsFinite(f) {
		return 0
	}
	r, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return r
}

// FormatNumber renders f with at most two decimals and no trailing zeros.
// Infinities and NaN render as "0".
func FormatNumber(f float64) string {
	if !IsFinite(f) {
		return "0"
	}
	return decimal.NewFromFloat(f).Round(2).String()
}

// IsFinite reports whether f is neither an infinity nor NaN.
func IsFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func ToString(arg any) string {
	if arg == nil {
		return ""
	}
	if s, err := spfcast.ToStringE(arg); err == nil {
		return s
	}
	if b, err := json.Marshal(arg); err == nil {
		return string(b)
	}
	return spfcast.ToString(arg)
}
