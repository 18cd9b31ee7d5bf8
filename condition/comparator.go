package condition

import (
	"strings"
	"time"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/fieldpath"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/rulego/chartdata/valuetype"
)

// Comparator matches a record value against a condition value for one
// value kind. Operators a comparator does not support leave the data
// unchanged.
type Comparator interface {
	Supports(op types.Operator) bool
	Match(op types.Operator, actual, expected interface{}) bool
}

// comparatorFor selects the comparator of a field kind.
func comparatorFor(kind valuetype.Kind, opts Options) Comparator {
	switch kind {
	case valuetype.KindString:
		return stringComparator{}
	case valuetype.KindNumber:
		return numberComparator{}
	case valuetype.KindBoolean:
		return booleanComparator{}
	case valuetype.KindDate:
		return dateComparator{interval: opts.Interval.OrDefault(), loc: opts.location()}
	case valuetype.KindArray:
		return arrayComparator{}
	case valuetype.KindObject:
		return stringComparator{}
	default:
		return undefinedComparator{}
	}
}

func isNull(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// matchNull handles isNull/isNotNull for every kind.
func matchNull(op types.Operator, actual interface{}) bool {
	if op == types.OperatorIsNull {
		return isNull(actual)
	}
	return !isNull(actual)
}

func compareOrdered(op types.Operator, cmp int) bool {
	switch op {
	case types.OperatorIs:
		return cmp == 0
	case types.OperatorIsNot:
		return cmp != 0
	case types.OperatorGreaterThan:
		return cmp > 0
	case types.OperatorGreaterOrEqual:
		return cmp >= 0
	case types.OperatorLessThan:
		return cmp < 0
	case types.OperatorLessOrEqual:
		return cmp <= 0
	default:
		return false
	}
}

type stringComparator struct{}

func (stringComparator) Supports(op types.Operator) bool {
	return op.IsValid()
}

func (stringComparator) Match(op types.Operator, actual, expected interface{}) bool {
	if op.IsNullCheck() {
		return matchNull(op, actual)
	}
	a, e := cast.ToString(actual), cast.ToString(expected)
	switch op {
	case types.OperatorContains:
		return strings.Contains(strings.ToLower(a), strings.ToLower(e))
	case types.OperatorNotContains:
		return !strings.Contains(strings.ToLower(a), strings.ToLower(e))
	default:
		return compareOrdered(op, strings.Compare(a, e))
	}
}

type numberComparator struct{}

func (numberComparator) Supports(op types.Operator) bool {
	return op.IsValid()
}

func (numberComparator) Match(op types.Operator, actual, expected interface{}) bool {
	if op.IsNullCheck() {
		return matchNull(op, actual)
	}
	a, aok := cast.ToFloat64(actual)
	e, eok := cast.ToFloat64(expected)
	if !aok || !eok {
		return stringComparator{}.Match(op, actual, expected)
	}
	switch op {
	case types.OperatorContains:
		return strings.Contains(cast.ToString(actual), cast.ToString(expected))
	case types.OperatorNotContains:
		return !strings.Contains(cast.ToString(actual), cast.ToString(expected))
	}
	switch {
	case a < e:
		return compareOrdered(op, -1)
	case a > e:
		return compareOrdered(op, 1)
	default:
		return compareOrdered(op, 0)
	}
}

type booleanComparator struct{}

func (booleanComparator) Supports(op types.Operator) bool {
	switch op {
	case types.OperatorGreaterThan, types.OperatorLessThan:
		return false
	}
	return op.IsValid()
}

func (booleanComparator) Match(op types.Operator, actual, expected interface{}) bool {
	if op.IsNullCheck() {
		return matchNull(op, actual)
	}
	a, e := cast.ToString(actual), cast.ToString(expected)
	switch op {
	case types.OperatorContains:
		return strings.Contains(a, e)
	case types.OperatorNotContains:
		return !strings.Contains(a, e)
	default:
		return compareOrdered(op, strings.Compare(a, e))
	}
}

type dateComparator struct {
	interval types.TimeInterval
	loc      *time.Location
}

func (dateComparator) Supports(op types.Operator) bool {
	switch op {
	case types.OperatorContains, types.OperatorNotContains:
		return false
	}
	return op.IsValid()
}

func (c dateComparator) Match(op types.Operator, actual, expected interface{}) bool {
	if op.IsNullCheck() {
		return matchNull(op, actual)
	}
	e, err := c.parse(expected)
	if err != nil {
		// 条件值不是日期，不过滤
		return true
	}
	a, err := c.parse(actual)
	if err != nil {
		return op == types.OperatorIsNot
	}
	return compareOrdered(op, a.Compare(e))
}

func (c dateComparator) parse(v interface{}) (time.Time, error) {
	t, err := timex.ParseTime(v, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	return timex.TruncateForCompare(t, c.interval), nil
}

// arrayComparator: contains tests membership, the other operators compare
// the JSON form.
type arrayComparator struct{}

func (arrayComparator) Supports(op types.Operator) bool {
	return op.IsValid()
}

func (arrayComparator) Match(op types.Operator, actual, expected interface{}) bool {
	if op.IsNullCheck() {
		return matchNull(op, actual)
	}
	switch op {
	case types.OperatorContains, types.OperatorNotContains:
		found := false
		if items, ok := fieldpath.ToSlice(actual); ok {
			want := cast.ToString(expected)
			for _, item := range items {
				if strings.EqualFold(cast.ToString(item), want) {
					found = true
					break
				}
			}
		}
		return found == (op == types.OperatorContains)
	default:
		return stringComparator{}.Match(op, actual, expected)
	}
}

// undefinedComparator is used when the field was never seen; only the null
// checks apply.
type undefinedComparator struct{}

func (undefinedComparator) Supports(op types.Operator) bool {
	return op.IsNullCheck()
}

func (undefinedComparator) Match(op types.Operator, actual, _ interface{}) bool {
	return matchNull(op, actual)
}
