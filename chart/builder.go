package chart

import (
	"fmt"

	"github.com/rulego/chartdata/types"
)

// defaultColors 默认调色板
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

func paletteColor(i int) string {
	return defaultColors[i%len(defaultColors)]
}

// Data is the renderer facing part of a configuration.
type Data struct {
	Labels   []string        `json:"labels"`
	Datasets []DatasetConfig `json:"datasets"`
}

// DatasetConfig 单个数据集的渲染配置
type DatasetConfig struct {
	Label string        `json:"label"`
	Data  []interface{} `json:"data"`
	// Colors are a single color or one color per point.
	BorderColor     interface{} `json:"borderColor,omitempty"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	Fill            bool        `json:"fill"`
	Stack           string      `json:"stack,omitempty"`
}

// Series is one aligned dataset handed to a builder.
type Series struct {
	Options types.DatasetOptions
	Values  []interface{}
}

func (s Series) legend(i int) string {
	if s.Options.Legend != "" {
		return s.Options.Legend
	}
	return fmt.Sprintf("Dataset %d", i+1)
}

func (s Series) color(i int) string {
	if s.Options.DatasetColor != "" {
		return s.Options.DatasetColor
	}
	return paletteColor(i)
}

// pointColors returns one color per point, from FillColor first.
func (s Series) pointColors() []string {
	colors := make([]string, len(s.Values))
	for i := range colors {
		if i < len(s.Options.FillColor) && s.Options.FillColor[i] != "" {
			colors[i] = s.Options.FillColor[i]
		} else {
			colors[i] = paletteColor(i)
		}
	}
	return colors
}

// Builder turns aligned series into renderer configuration.
type Builder func(chart types.Chart, labels []string, series []Series) (Data, map[string]interface{})

var builders = map[types.ChartType]Builder{
	types.ChartLine:     buildScales,
	types.ChartBar:      buildScales,
	types.ChartPie:      buildArc,
	types.ChartDoughnut: buildArc,
	types.ChartPolar:    buildArc,
	types.ChartRadar:    buildRadar,
	types.ChartKPI:      buildValues,
	types.ChartAvg:      buildValues,
}

// BuilderFor returns the builder of a chart type, line for unknown types.
func BuilderFor(chartType types.ChartType) Builder {
	if b, ok := builders[chartType]; ok {
		return b
	}
	return buildScales
}

func legendOptions(chart types.Chart) map[string]interface{} {
	return map[string]interface{}{
		"legend": map[string]interface{}{"display": chart.DisplayLegend},
	}
}

func buildScales(chart types.Chart, labels []string, series []Series) (Data, map[string]interface{}) {
	data := Data{Labels: labels, Datasets: make([]DatasetConfig, len(series))}
	for i, s := range series {
		cfg := DatasetConfig{
			Label:       s.legend(i),
			Data:        s.Values,
			BorderColor: s.color(i),
			Fill:        s.Options.Fill,
		}
		switch {
		case s.Options.MultiFill:
			cfg.BackgroundColor = s.pointColors()
		case len(s.Options.FillColor) > 0:
			cfg.BackgroundColor = s.Options.FillColor[0]
		default:
			cfg.BackgroundColor = s.color(i)
		}
		if chart.Stacked {
			cfg.Stack = "stack0"
		}
		data.Datasets[i] = cfg
	}

	options := map[string]interface{}{
		"scales": map[string]interface{}{
			"x": map[string]interface{}{"stacked": chart.Stacked},
			"y": map[string]interface{}{"stacked": chart.Stacked, "beginAtZero": true},
		},
		"plugins": legendOptions(chart),
	}
	if chart.Horizontal {
		options["indexAxis"] = "y"
	}
	return data, options
}

func buildArc(chart types.Chart, labels []string, series []Series) (Data, map[string]interface{}) {
	data := Data{Labels: labels, Datasets: make([]DatasetConfig, len(series))}
	for i, s := range series {
		colors := s.pointColors()
		data.Datasets[i] = DatasetConfig{
			Label:           s.legend(i),
			Data:            s.Values,
			BorderColor:     colors,
			BackgroundColor: colors,
		}
	}
	return data, map[string]interface{}{"plugins": legendOptions(chart)}
}

func buildRadar(chart types.Chart, labels []string, series []Series) (Data, map[string]interface{}) {
	data := Data{Labels: labels, Datasets: make([]DatasetConfig, len(series))}
	for i, s := range series {
		data.Datasets[i] = DatasetConfig{
			Label:           s.legend(i),
			Data:            s.Values,
			BorderColor:     s.color(i),
			BackgroundColor: s.color(i),
			Fill:            s.Options.Fill,
		}
	}
	options := map[string]interface{}{
		"scales":  map[string]interface{}{"r": map[string]interface{}{"beginAtZero": true}},
		"plugins": legendOptions(chart),
	}
	return data, options
}

// buildValues keeps only labels and values; KPI charts render them as text.
func buildValues(_ types.Chart, labels []string, series []Series) (Data, map[string]interface{}) {
	data := Data{Labels: labels, Datasets: make([]DatasetConfig, len(series))}
	for i, s := range series {
		data.Datasets[i] = DatasetConfig{Label: s.legend(i), Data: s.Values}
	}
	return data, nil
}
