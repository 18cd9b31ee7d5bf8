package axis

import (
	"errors"
	"sort"
	"time"

	"github.com/rulego/chartdata/aggregator"
	"github.com/rulego/chartdata/dataset"
	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/fieldpath"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/rulego/chartdata/valuetype"
	"hermannm.dev/wrap"
)

var (
	// ErrFieldNotFound x 轴字段在数据中不存在
	ErrFieldNotFound = errors.New("field not found")
	// ErrYAxisNotArray y 轴路径没有指向 x 轴所在的数组
	ErrYAxisNotArray = errors.New("y axis does not point into an array")
)

// Options 解析上下文
type Options struct {
	Interval types.TimeInterval
	Location *time.Location
	// Window bounds zero filling and widens the label format span.
	Window       types.DateWindow
	IncludeZeros bool
	Cumulative   bool
	// Now decides whether day labels carry the year.
	Now    time.Time
	Logger logger.Logger
}

// Resolver turns dataset records into an axis series.
type Resolver struct {
	opts Options
	log  logger.Logger
}

func NewResolver(opts Options) *Resolver {
	opts.Interval = opts.Interval.OrDefault()
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	log := opts.Logger
	if log == nil {
		log = logger.GetDefault()
	}
	return &Resolver{opts: opts, log: log}
}

type point struct {
	x       interface{}
	instant time.Time
	y       interface{}
}

// Resolve extracts, buckets and aggregates the x/y values of one dataset.
func (r *Resolver) Resolve(data interface{}, ds types.DatasetOptions) (Series, error) {
	xPath, err := fieldpath.ParseAxisPath(ds.XAxis)
	if err != nil {
		return Series{}, wrap.Errorf(ErrFieldNotFound, "invalid x axis '%s': %v", ds.XAxis, err)
	}

	if !xPath.HasArray {
		return r.flatSeries(data, xPath.FieldPath, ds.XAxis)
	}
	items, ok := fieldpath.LocateArray(data, xPath.ArrayPath)
	if !ok {
		return r.flatSeries(data, xPath.ArrayPath, ds.XAxis)
	}

	yPath, nested, err := r.yPath(ds.YAxis, xPath)
	if err != nil {
		return Series{}, err
	}

	xValues := xPath.Values(items)
	yValues := r.yValues(items, yPath, nested)
	xKind := valuetype.FirstKind(xValues)
	if xKind == valuetype.KindUndefined && len(items) > 0 {
		return Series{}, wrap.Errorf(ErrFieldNotFound, "x axis '%s'", ds.XAxis)
	}

	op := ds.YAxisOperation.OrDefault()
	if !nested && valuetype.FirstKind(yValues) == valuetype.KindArray {
		if op == types.OperationCountUnique {
			r.log.Debug("count_unique over array values of %s gives an empty series", ds.YAxis)
			return Series{Kind: xKind}, nil
		}
		nested = true
		for i, v := range yValues {
			yValues[i], _ = fieldpath.ToSlice(v)
		}
	}

	var prototype aggregator.AggregatorFunction
	if nested {
		prototype = aggregator.NewNestedAggregator(op, ds.AverageByTotal)
	} else {
		prototype = aggregator.CreateBuiltinAggregator(op)
	}

	points := make([]point, 0, len(items))
	for i := range items {
		if xValues[i] == nil {
			continue
		}
		points = append(points, point{x: xValues[i], y: yValues[i]})
	}

	var series Series
	if xKind == valuetype.KindDate {
		series = r.dateSeries(points, prototype)
	} else {
		series = categorySeries(points, prototype, xKind)
	}

	if r.opts.IncludeZeros && series.IsDate() {
		series = ZeroFill(series, r.opts.Interval, r.opts.Window)
	}
	if r.opts.Cumulative {
		series.Y = Cumulative(series.Y)
	}
	return series, nil
}

// yPath checks that the y locator iterates the x collection. nested is set
// for a second [] segment.
func (r *Resolver) yPath(expr string, xPath fieldpath.AxisPath) (fieldpath.AxisPath, bool, error) {
	if expr == "" {
		return fieldpath.AxisPath{HasArray: true, ArrayPath: xPath.ArrayPath}, false, nil
	}
	yPath, err := fieldpath.ParseAxisPath(expr)
	if err != nil {
		return yPath, false, wrap.Errorf(ErrYAxisNotArray, "invalid y axis '%s': %v", expr, err)
	}
	if !yPath.HasArray || (!yPath.Relative && yPath.ArrayPath != xPath.ArrayPath) {
		return yPath, false, wrap.Errorf(ErrYAxisNotArray, "y axis '%s'", expr)
	}
	return yPath, yPath.IsNested(), nil
}

func (r *Resolver) yValues(items []interface{}, yPath fieldpath.AxisPath, nested bool) []interface{} {
	if !nested {
		if yPath.FieldPath == "" {
			return make([]interface{}, len(items))
		}
		return yPath.Values(items)
	}
	out := make([]interface{}, len(items))
	for i, item := range items {
		v, _ := fieldpath.Lookup(item, yPath.FieldPath)
		collection, ok := fieldpath.ToSlice(v)
		if !ok {
			out[i] = []interface{}{}
			continue
		}
		values := make([]interface{}, 0, len(collection))
		for _, c := range collection {
			nv, _ := fieldpath.Lookup(c, yPath.NestedPath)
			values = append(values, nv)
		}
		out[i] = values
	}
	return out
}

func (r *Resolver) dateSeries(points []point, prototype aggregator.AggregatorFunction) Series {
	interval := r.opts.Interval
	dated := points[:0:0]
	for _, p := range points {
		t, err := timex.ParseTime(p.x, r.opts.Location)
		if err != nil {
			r.log.Debug("x value %v is not a date, point dropped", p.x)
			continue
		}
		p.instant = timex.StartOf(t, interval)
		dated = append(dated, p)
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].instant.Before(dated[j].instant)
	})

	format := r.decideFormat(dated)
	groups := aggregator.NewGroupAggregator(prototype)
	instants := make(map[string]time.Time)
	for _, p := range dated {
		label := format.Format(p.instant)
		if _, ok := instants[label]; !ok {
			instants[label] = p.instant
		}
		groups.Add(label, p.y)
	}

	series := Series{Kind: valuetype.KindDate, Format: format}
	results := groups.Results()
	for i, label := range groups.Keys() {
		series.append(label, results[i], instants[label], false)
	}
	return series
}

// decideFormat uses the first and last bucket, widened by the chart window
// when zero filling will extend the series to it.
func (r *Resolver) decideFormat(points []point) timex.BucketFormat {
	var first, last time.Time
	if len(points) > 0 {
		first, last = points[0].instant, points[len(points)-1].instant
	}
	if r.opts.IncludeZeros {
		if start := r.opts.Window.Start; start != nil && (first.IsZero() || start.Before(first)) {
			first = start.In(r.opts.Location)
		}
		if end := r.opts.Window.End; end != nil && (last.IsZero() || end.After(last)) {
			last = end.In(r.opts.Location)
		}
	}
	if first.IsZero() {
		first = r.opts.Now.In(r.opts.Location)
	}
	if last.IsZero() {
		last = first
	}
	return timex.DecideFormat(r.opts.Interval, first, last, r.opts.Now)
}

func categorySeries(points []point, prototype aggregator.AggregatorFunction, kind valuetype.Kind) Series {
	groups := aggregator.NewGroupAggregator(prototype)
	for _, p := range points {
		groups.Add(cast.ToString(p.x), p.y)
	}
	return Series{X: groups.Keys(), Y: groups.Results(), Kind: kind}
}

// flatSeries emits the object at path as x = keys, y = values.
func (r *Resolver) flatSeries(data interface{}, path, expr string) (Series, error) {
	v, ok := fieldpath.Lookup(data, path)
	if !ok || v == nil {
		return Series{}, wrap.Errorf(ErrFieldNotFound, "x axis '%s'", expr)
	}
	if valuetype.Classify(v) != valuetype.KindObject {
		return Series{}, wrap.Errorf(ErrFieldNotFound, "x axis '%s' is neither an array nor an object", expr)
	}
	fields, ok := dataset.Fields(v)
	if !ok {
		return Series{}, wrap.Errorf(ErrFieldNotFound, "x axis '%s' is not a plain object", expr)
	}
	series := Series{X: make([]string, len(fields)), Y: make([]interface{}, len(fields)), Kind: valuetype.KindString}
	for i, field := range fields {
		series.X[i] = field.Key
		series.Y[i] = field.Value
	}
	if r.opts.Cumulative {
		series.Y = Cumulative(series.Y)
	}
	return series, nil
}
