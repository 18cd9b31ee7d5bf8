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

package chartdata

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rulego/chartdata/axis"
	"github.com/rulego/chartdata/chart"
	"github.com/rulego/chartdata/condition"
	"github.com/rulego/chartdata/dataset"
	"github.com/rulego/chartdata/formula"
	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/table"
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/fieldpath"
	"github.com/rulego/chartdata/utils/timex"
	"hermannm.dev/wrap"
)

// defaultBasePath 未配置 x 轴时条件作用于根数组
const defaultBasePath = "root[]"

// Engine 图表数据渲染引擎。
// Engine 本身不保存请求状态，可以被多个 goroutine 并发使用。
type Engine struct {
	log       logger.Logger
	location  *time.Location
	chunkSize int
	evaluator formula.Evaluator
	now       func() time.Time
}

// Request 一次渲染请求：图表配置、数据集和仪表盘过滤器
type Request struct {
	Chart    types.Chart     `json:"chart"`
	Datasets []types.Dataset `json:"datasets"`
	Filters  []types.Filter  `json:"filters,omitempty"`
}

// Result 渲染结果。
// Configuration 对普通图表是 *chart.Configuration，对表格是 map[string]table.Data。
type Result struct {
	ID           string `json:"id"`
	IsTimeseries bool   `json:"isTimeseries"`
	DateFormat   string `json:"dateFormat,omitempty"`
	// Configuration holds Chart or Table, whichever was rendered.
	Configuration     interface{}                    `json:"configuration"`
	ConditionsOptions [][]condition.ConditionOptions `json:"conditionsOptions"`

	Chart *chart.Configuration  `json:"-"`
	Table map[string]table.Data `json:"-"`
}

// New 创建渲染引擎。
// 未指定选项时使用全局默认日志记录器、UTC 时区和默认的表格分块大小。
//
// 示例:
//
//	engine := chartdata.New(
//		chartdata.WithLocation(time.Local),
//		chartdata.WithLogLevel(logger.DEBUG),
//	)
//	result, err := engine.Render(req)
func New(options ...Option) *Engine {
	e := &Engine{
		log:       logger.GetDefault(),
		location:  time.UTC,
		chunkSize: table.DefaultChunkSize,
		evaluator: formula.DefaultEvaluator(),
		now:       time.Now,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// renderContext 单次渲染共享的参数
type renderContext struct {
	chart    types.Chart
	filters  []types.Filter
	location *time.Location
	window   types.DateWindow
	now      time.Time
	log      logger.Logger
}

// Render 执行一次完整的渲染：
//  1. 规范化数据集文档
//  2. 按日期窗口和条件过滤记录
//  3. 表格图表转换为列和行，其他图表解析坐标轴
//  4. 合并所有数据集的标签并生成渲染器配置
//
// 坐标轴配置错误会带上数据集信息返回，可以通过 errors.Is 判断
// axis.ErrFieldNotFound 和 axis.ErrYAxisNotArray。
func (e *Engine) Render(req Request) (*Result, error) {
	id := uuid.NewString()
	log := logger.With(e.log, slog.String("render_id", id))

	rc := e.newRenderContext(req, log)
	log.Debug("render %s: chart '%s' type %s, %d datasets, date window %t", id, req.Chart.Name, req.Chart.Type, len(req.Datasets), rc.window.IsSet())

	result := &Result{
		ID:                id,
		ConditionsOptions: make([][]condition.ConditionOptions, len(req.Datasets)),
	}

	if req.Chart.Type == types.ChartTable {
		var inputs []table.Input
		for i, ds := range req.Datasets {
			opts := mergedOptions(req.Chart, i, ds.Options)
			data, condOptions, err := e.filterDataset(rc, ds.Data, opts)
			if err != nil {
				return nil, datasetError(err, i, opts)
			}
			result.ConditionsOptions[i] = condOptions
			inputs = append(inputs, table.Input{Records: tableRecords(data, opts), Options: opts})
		}
		result.Table = table.Format(inputs, table.Options{ChunkSize: e.chunkSize, Location: rc.location, Logger: log})
		result.Configuration = result.Table
		log.Debug("render %s: %d tables", id, len(result.Table))
		return result, nil
	}

	resolver := axis.NewResolver(axis.Options{
		Interval:     req.Chart.TimeInterval,
		Location:     rc.location,
		Window:       rc.window,
		IncludeZeros: req.Chart.IncludeZeros,
		Cumulative:   req.Chart.IsCumulative(),
		Now:          rc.now,
		Logger:       log,
	})

	var inputs []chart.Input
	for i, ds := range req.Datasets {
		opts := mergedOptions(req.Chart, i, ds.Options)
		data, condOptions, err := e.filterDataset(rc, ds.Data, opts)
		if err != nil {
			return nil, datasetError(err, i, opts)
		}
		result.ConditionsOptions[i] = condOptions

		resolved, err := resolveDataset(resolver, data, opts)
		if err != nil {
			return nil, datasetError(err, i, opts)
		}
		inputs = append(inputs, resolved...)
	}

	for _, in := range inputs {
		if in.Series.IsDate() {
			result.IsTimeseries = true
			if result.DateFormat == "" {
				result.DateFormat = in.Series.Format.String()
			}
		}
	}

	result.Chart = chart.Assemble(req.Chart, inputs, chart.Options{Evaluator: e.evaluator, Logger: log})
	result.Configuration = result.Chart
	log.Debug("render %s: %d labels, %d series", id, len(result.Chart.Data.Labels), len(inputs))
	return result, nil
}

func (e *Engine) newRenderContext(req Request, log logger.Logger) renderContext {
	rc := renderContext{
		chart:    req.Chart,
		location: e.location,
		now:      e.now(),
		log:      log,
	}
	if req.Chart.Timezone != "" {
		loc, err := time.LoadLocation(req.Chart.Timezone)
		if err != nil {
			log.Warn("chart timezone '%s' ignored: %v", req.Chart.Timezone, err)
		} else {
			rc.location = loc
		}
	}

	rc.window = timex.ResolveWindow(req.Chart, rc.now, rc.location)
	for _, f := range req.Filters {
		if f.IsDate() {
			// 仪表盘日期过滤器覆盖图表自身的时间窗口
			rc.window = types.NewDateWindow(f.StartDate, f.EndDate)
			continue
		}
		rc.filters = append(rc.filters, f)
	}
	return rc
}

// filterDataset normalizes the dataset document and narrows it with the
// date window and the conditions. The returned options list the values of
// every condition field before it was applied.
func (e *Engine) filterDataset(rc renderContext, raw interface{}, opts types.DatasetOptions) (interface{}, []condition.ConditionOptions, error) {
	data := dataset.Normalize(raw)
	basePath := basePathOf(opts)
	condOpts := condition.Options{Interval: rc.chart.TimeInterval, Location: rc.location, Logger: rc.log}

	data, err := condition.FilterDateRange(data, basePath, opts.DateField, rc.window, condOpts)
	if err != nil {
		return nil, nil, err
	}

	conditions := append([]types.Condition(nil), opts.Conditions...)
	for _, f := range rc.filters {
		if hasField(data, basePath, f.Field) {
			conditions = append(conditions, f.AsCondition())
		}
	}
	if len(conditions) == 0 {
		return data, nil, nil
	}

	filtered, err := condition.Filter(data, basePath, conditions, condOpts)
	if err != nil {
		return nil, nil, err
	}
	return filtered.Data, filtered.Options, nil
}

// resolveDataset resolves one dataset, or one series per group when the
// dataset is grouped.
func resolveDataset(resolver *axis.Resolver, data interface{}, opts types.DatasetOptions) ([]chart.Input, error) {
	if opts.GroupBy == "" {
		series, err := resolver.Resolve(data, opts)
		if err != nil {
			return nil, err
		}
		return []chart.Input{{Options: opts, Series: series}}, nil
	}

	base, err := fieldpath.ParseAxisPath(basePathOf(opts))
	if err != nil {
		return nil, err
	}
	items, _ := fieldpath.LocateArray(data, base.ArrayPath)
	rows, err := dataset.GroupBy(items, opts.GroupBy)
	if err != nil {
		return nil, wrap.Errorf(err, "invalid group by field '%s'", opts.GroupBy)
	}

	var inputs []chart.Input
	for i, row := range rows.List() {
		records := row.Records
		grouped, ok := fieldpath.MapArray(data, base.ArrayPath, func([]interface{}) []interface{} {
			return records
		})
		if !ok {
			continue
		}
		groupOpts := opts
		groupOpts.Legend = row.GroupValue
		if i > 0 {
			// 分组系列使用调色板颜色
			groupOpts.DatasetColor = ""
			groupOpts.FillColor = nil
		}
		series, err := resolver.Resolve(grouped, groupOpts)
		if err != nil {
			return nil, wrap.Errorf(err, "group '%s'", row.GroupValue)
		}
		inputs = append(inputs, chart.Input{Options: groupOpts, Series: series})
	}
	return inputs, nil
}

func mergedOptions(c types.Chart, i int, opts types.DatasetOptions) types.DatasetOptions {
	if cfg, ok := c.DatasetConfig(i, opts.ID); ok {
		return cfg.Merge(opts)
	}
	return opts
}

func basePathOf(opts types.DatasetOptions) string {
	if opts.XAxis == "" {
		return defaultBasePath
	}
	return opts.XAxis
}

// hasField reports whether any record of the collection has field.
func hasField(data interface{}, basePath, field string) bool {
	base, err := fieldpath.ParseAxisPath(basePath)
	if err != nil {
		return false
	}
	path, err := fieldpath.ParseAxisPath(field)
	if err != nil {
		return false
	}
	items, _ := fieldpath.LocateArray(data, base.ArrayPath)
	for _, item := range items {
		if _, ok := fieldpath.Lookup(item, path.FieldPath); ok {
			return true
		}
	}
	return false
}

func tableRecords(data interface{}, opts types.DatasetOptions) []interface{} {
	if opts.XAxis != "" {
		if base, err := fieldpath.ParseAxisPath(opts.XAxis); err == nil {
			if items, ok := fieldpath.LocateArray(data, base.ArrayPath); ok {
				return items
			}
		}
	}
	if items := dataset.Records(data); items != nil {
		return items
	}
	if data != nil {
		return []interface{}{data}
	}
	return nil
}

func datasetError(err error, i int, opts types.DatasetOptions) error {
	name := opts.Legend
	if name == "" {
		name = opts.ID
	}
	if name == "" {
		return wrap.Errorf(err, "dataset %d: check your dataset settings", i+1)
	}
	return wrap.Errorf(err, "dataset %d ('%s'): check your dataset settings", i+1, name)
}
