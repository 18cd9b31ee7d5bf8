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

// Package formula applies dataset formulas of the form "prefix{expression}suffix"
// to resolved values. The expression refers to the point value as val:
//
//	f, _ := formula.Parse("${val/100}")
//	v, _ := f.Apply(formula.DefaultEvaluator(), 12345, true) // "$123.45"
package formula

import (
	"errors"
	"strings"

	"github.com/rulego/chartdata/utils/cast"
	"hermannm.dev/wrap"
)

// ValueToken is the name bound to the point value inside an expression.
const ValueToken = "val"

// ErrInvalidFormula 公式格式错误
var ErrInvalidFormula = errors.New("invalid formula")

// Formula is a parsed formula template.
type Formula struct {
	Prefix     string
	Expression string
	Suffix     string
}

// Parse splits s around its single {expression} segment.
func Parse(s string) (*Formula, error) {
	open := strings.IndexByte(s, '{')
	closing := strings.LastIndexByte(s, '}')
	if open < 0 || closing < open {
		return nil, wrap.Errorf(ErrInvalidFormula, "'%s' has no {expression} segment", s)
	}
	if strings.Count(s, "{") != 1 || strings.Count(s, "}") != 1 {
		return nil, wrap.Errorf(ErrInvalidFormula, "'%s' must contain exactly one {expression} segment", s)
	}
	expression := strings.TrimSpace(s[open+1 : closing])
	if expression == "" {
		return nil, wrap.Errorf(ErrInvalidFormula, "'%s' has an empty expression", s)
	}
	return &Formula{
		Prefix:     s[:open],
		Expression: expression,
		Suffix:     s[closing+1:],
	}, nil
}

// Eval evaluates the expression with val bound to value. Numeric strings are
// bound as numbers.
func (f *Formula) Eval(ev Evaluator, value interface{}) (float64, error) {
	if n, ok := cast.ToFloat64(value); ok {
		value = n
	}
	return ev.Evaluate(f.Expression, map[string]interface{}{ValueToken: value})
}

// Format wraps n with the literal prefix and suffix.
func (f *Formula) Format(n float64) string {
	return f.Prefix + cast.FormatNumber(n) + f.Suffix
}

// Apply evaluates the formula for one value. Formatted results keep the
// prefix and suffix as a string, otherwise the result is rounded to two
// decimals. On failure the value degrades to 0 and the error is returned for
// logging.
func (f *Formula) Apply(ev Evaluator, value interface{}, formatted bool) (interface{}, error) {
	n, err := f.Eval(ev, value)
	if err == nil && !cast.IsFinite(n) {
		err = wrap.Errorf(ErrNotNumeric, "'%s' returned %v", f.Expression, n)
	}
	if err != nil {
		n = 0
	}
	if formatted {
		return f.Format(n), err
	}
	return cast.Round2(n), err
}

func (f *Formula) String() string {
	return f.Prefix + "{" + f.Expression + "}" + f.Suffix
}
