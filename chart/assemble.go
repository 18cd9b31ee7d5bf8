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

package chart

import (
	"github.com/rulego/chartdata/axis"
	"github.com/rulego/chartdata/formula"
	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/types"
)

// Configuration 渲染器使用的图表配置
type Configuration struct {
	Data    Data                   `json:"data"`
	Options map[string]interface{} `json:"options,omitempty"`
	Growth  []Growth               `json:"growth,omitempty"`
	Goals   []Goal                 `json:"goals,omitempty"`
}

// Input is one resolved dataset. Options are already merged with the chart
// level dataset config.
type Input struct {
	Options types.DatasetOptions
	Series  axis.Series
}

// Options 组装参数
type Options struct {
	Evaluator formula.Evaluator
	Logger    logger.Logger
}

func (o Options) evaluator() formula.Evaluator {
	if o.Evaluator == nil {
		return formula.DefaultEvaluator()
	}
	return o.Evaluator
}

func (o Options) logger() logger.Logger {
	if o.Logger == nil {
		return logger.GetDefault()
	}
	return o.Logger
}

// Assemble unifies the datasets on one label axis, then applies formulas,
// sorting, truncation, growth and goals before building the renderer
// configuration of the chart type.
func Assemble(chart types.Chart, inputs []Input, opts Options) *Configuration {
	log := opts.logger()
	ev := opts.evaluator()

	series := make([]axis.Series, len(inputs))
	for i, in := range inputs {
		series[i] = in.Series
	}
	labels, raw := Unify(series, chart.TimeInterval.OrDefault(), chart.IsCumulative())

	formulas := make([]*formula.Formula, len(inputs))
	values := make([][]interface{}, len(inputs))
	for i, in := range inputs {
		values[i] = raw[i]
		if in.Options.Formula == "" {
			continue
		}
		f, err := formula.Parse(in.Options.Formula)
		if err != nil {
			log.Warn("dataset %d: %v, formula ignored", i, err)
			continue
		}
		formulas[i] = f
		values[i] = applyFormula(f, ev, raw[i], chart.Type.IsKPI(), log)
	}

	if perm, ok := sortPermutation(inputs, values); ok {
		labels = Permute(labels, perm)
		for i := range values {
			values[i] = Permute(values[i], perm)
			raw[i] = Permute(raw[i], perm)
		}
	}

	if n := maxRecords(inputs); n > 0 {
		labels = truncate(labels, n)
		for i := range values {
			values[i] = truncate(values[i], n)
			raw[i] = truncate(raw[i], n)
		}
	}

	config := &Configuration{}
	builderInput := make([]Series, len(inputs))
	for i, in := range inputs {
		builderInput[i] = Series{Options: in.Options, Values: values[i]}

		if g, ok := ComputeGrowth(values[i]); ok {
			g.DatasetIndex = i
			g.Label = builderInput[i].legend(i)
			config.Growth = append(config.Growth, g)
		}
		if in.Options.Goal != nil {
			if goal, ok := ComputeGoal(raw[i], *in.Options.Goal, formulas[i], ev); ok {
				goal.DatasetIndex = i
				goal.Label = builderInput[i].legend(i)
				config.Goals = append(config.Goals, goal)
			}
		}
	}

	config.Data, config.Options = BuilderFor(chart.Type)(chart, labels, builderInput)
	return config
}

func applyFormula(f *formula.Formula, ev formula.Evaluator, values []interface{}, formatted bool, log logger.Logger) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		result, err := f.Apply(ev, v, formatted)
		if err != nil {
			log.Warn("formula %s failed for %v: %v", f, v, err)
		}
		out[i] = result
	}
	return out
}

// sortPermutation sorts by the one dataset that requests sorting; nothing is
// sorted when several datasets do.
func sortPermutation(inputs []Input, values [][]interface{}) ([]int, bool) {
	sorted := -1
	for i, in := range inputs {
		if !in.Options.Sort.IsValid() {
			continue
		}
		if sorted >= 0 {
			return nil, false
		}
		sorted = i
	}
	if sorted < 0 {
		return nil, false
	}
	return Permutation(values[sorted], inputs[sorted].Options.Sort), true
}

// maxRecords returns the smallest configured limit.
func maxRecords(inputs []Input) int {
	n := 0
	for _, in := range inputs {
		if m := in.Options.MaxRecords; m > 0 && (n == 0 || m < n) {
			n = m
		}
	}
	return n
}
