package condition

import (
	"time"

	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/fieldpath"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/rulego/chartdata/valuetype"
	"hermannm.dev/wrap"
)

// Options 过滤上下文
type Options struct {
	// Interval decides the date comparison precision.
	Interval types.TimeInterval
	Location *time.Location
	Logger   logger.Logger
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.GetDefault()
	}
	return o.Logger
}

// ConditionOptions lists the values a condition field took before the
// condition was applied.
type ConditionOptions struct {
	ID      string        `json:"id,omitempty"`
	Field   string        `json:"field"`
	Exposed bool          `json:"exposed"`
	Values  []interface{} `json:"values"`
}

// Result 过滤结果
type Result struct {
	// Data has the shape of the input with the addressed collection
	// narrowed.
	Data    interface{}
	Options []ConditionOptions
}

// Filter applies conditions in order to the collection addressed by
// basePath. Each condition can only remove records.
func Filter(data interface{}, basePath string, conditions []types.Condition, opts Options) (Result, error) {
	base, err := fieldpath.ParseAxisPath(basePath)
	if err != nil {
		return Result{}, wrap.Errorf(err, "invalid condition base path '%s'", basePath)
	}
	log := opts.logger()

	result := Result{Data: data}
	for _, cond := range conditions {
		field, err := fieldpath.ParseAxisPath(cond.Field)
		if err != nil {
			log.Debug("condition %s skipped: %v", cond.Field, err)
			continue
		}
		items, _ := fieldpath.LocateArray(result.Data, base.ArrayPath)
		values := fieldValues(items, field)

		result.Options = append(result.Options, ConditionOptions{
			ID:      cond.ID,
			Field:   cond.Field,
			Exposed: cond.Exposed,
			Values:  distinct(values),
		})

		if !cond.Operator.IsValid() {
			log.Debug("condition %s skipped: no operator", cond.Field)
			continue
		}
		if !cond.HasValue() && !cond.Operator.IsNullCheck() {
			log.Debug("condition %s skipped: no value", cond.Field)
			continue
		}

		kind := valuetype.FirstKind(values)
		comparator := comparatorFor(kind, opts)
		if !comparator.Supports(cond.Operator) {
			log.Debug("condition %s skipped: operator %s not supported for %s", cond.Field, cond.Operator, kind)
			continue
		}

		op, expected := cond.Operator, cond.Value
		keep := func(record interface{}) bool {
			return matchRecord(comparator, op, record, field, expected)
		}
		if filtered, ok := fieldpath.MapArray(result.Data, base.ArrayPath, filterFunc(keep)); ok {
			result.Data = filtered
		}
	}
	return result, nil
}

// FilterDateRange keeps the records whose dateField lies inside window,
// both bounds inclusive at the comparison precision of opts.Interval.
// Records without a readable date are dropped.
func FilterDateRange(data interface{}, basePath, dateField string, window types.DateWindow, opts Options) (interface{}, error) {
	if dateField == "" || (window.Start == nil && window.End == nil) {
		return data, nil
	}
	base, err := fieldpath.ParseAxisPath(basePath)
	if err != nil {
		return nil, wrap.Errorf(err, "invalid condition base path '%s'", basePath)
	}
	field, err := fieldpath.ParseAxisPath(dateField)
	if err != nil {
		return nil, wrap.Errorf(err, "invalid date field '%s'", dateField)
	}

	interval := opts.Interval.OrDefault()
	loc := opts.location()
	var start, end *time.Time
	if window.Start != nil {
		s := timex.TruncateForCompare(window.Start.In(loc), interval)
		start = &s
	}
	if window.End != nil {
		e := timex.TruncateForCompare(window.End.In(loc), interval)
		end = &e
	}
	bounds := types.NewDateWindow(start, end)

	keep := func(record interface{}) bool {
		v, ok := fieldpath.Lookup(record, field.FieldPath)
		if !ok {
			return false
		}
		t, err := timex.ParseTime(v, loc)
		if err != nil {
			return false
		}
		return bounds.Contains(timex.TruncateForCompare(t, interval))
	}
	filtered, ok := fieldpath.MapArray(data, base.ArrayPath, filterFunc(keep))
	if !ok {
		opts.logger().Debug("date field %s: no collection at %s", dateField, basePath)
		return data, nil
	}
	return filtered, nil
}

func filterFunc(keep func(interface{}) bool) func([]interface{}) []interface{} {
	return func(items []interface{}) []interface{} {
		out := make([]interface{}, 0, len(items))
		for _, item := range items {
			if keep(item) {
				out = append(out, item)
			}
		}
		return out
	}
}

// matchRecord: for a nested field (items[].price) the record matches when
// any nested item matches.
func matchRecord(c Comparator, op types.Operator, record interface{}, field fieldpath.AxisPath, expected interface{}) bool {
	v, _ := fieldpath.Lookup(record, field.FieldPath)
	if !field.IsNested() {
		return matchValue(c, op, v, expected)
	}
	nested, ok := fieldpath.ToSlice(v)
	if !ok {
		return matchValue(c, op, nil, expected)
	}
	for _, item := range nested {
		nv, _ := fieldpath.Lookup(item, field.NestedPath)
		if matchValue(c, op, nv, expected) {
			return true
		}
	}
	return false
}

// matchValue: a missing value only satisfies the negative operators.
func matchValue(c Comparator, op types.Operator, actual, expected interface{}) bool {
	if actual == nil && !op.IsNullCheck() {
		return op == types.OperatorIsNot || op == types.OperatorNotContains
	}
	return c.Match(op, actual, expected)
}

// fieldValues resolves the condition field of every record, flattening
// nested collections.
func fieldValues(items []interface{}, field fieldpath.AxisPath) []interface{} {
	values := make([]interface{}, 0, len(items))
	for _, record := range items {
		v, _ := fieldpath.Lookup(record, field.FieldPath)
		if !field.IsNested() {
			values = append(values, v)
			continue
		}
		if nested, ok := fieldpath.ToSlice(v); ok {
			for _, item := range nested {
				nv, _ := fieldpath.Lookup(item, field.NestedPath)
				values = append(values, nv)
			}
		}
	}
	return values
}

// distinct keeps the first occurrence of every non-null value.
func distinct(values []interface{}) []interface{} {
	seen := make(map[string]struct{}, len(values))
	out := make([]interface{}, 0)
	for _, v := range values {
		if v == nil {
			continue
		}
		key := cast.ToString(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
