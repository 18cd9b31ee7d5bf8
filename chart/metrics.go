package chart

import (
	"math"

	"github.com/rulego/chartdata/formula"
	"github.com/rulego/chartdata/utils/cast"
)

// Growth status values
const (
	StatusPositive = "positive"
	StatusNegative = "negative"
	StatusNeutral  = "neutral"
)

// Growth is the change between the last two points of a dataset.
type Growth struct {
	DatasetIndex int    `json:"datasetIndex"`
	Label        string `json:"label"`
	// Value is a percentage rounded to two decimals.
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

// ComputeGrowth compares the last value with the one before it. Numbers are
// parsed out of formatted strings such as "$1,200.50". ok is false when
// there is nothing to compare.
func ComputeGrowth(values []interface{}) (g Growth, ok bool) {
	switch len(values) {
	case 0:
		return g, false
	case 1:
		return Growth{Value: 100, Status: StatusPositive}, true
	}

	last, ok := cast.ExtractNumber(values[len(values)-1])
	if !ok {
		return g, false
	}
	previous, ok := cast.ExtractNumber(values[len(values)-2])
	if !ok {
		return g, false
	}

	var pct float64
	switch {
	case previous != 0:
		pct = cast.Round2((last - previous) / math.Abs(previous) * 100)
	case last > 0:
		pct = 100
	case last < 0:
		pct = -100
	}
	return Growth{Value: pct, Status: statusOf(pct)}, true
}

func statusOf(pct float64) string {
	switch {
	case pct > 0:
		return StatusPositive
	case pct < 0:
		return StatusNegative
	default:
		return StatusNeutral
	}
}

// Goal 目标达成情况
type Goal struct {
	DatasetIndex int     `json:"datasetIndex"`
	Label        string  `json:"label"`
	Goal         float64 `json:"goal"`
	Value        float64 `json:"value"`
	// Formatted fields carry the dataset formula, when there is one.
	FormattedGoal  interface{} `json:"formattedGoal"`
	FormattedValue interface{} `json:"formattedValue"`
	// Progress is value/goal in percent.
	Progress float64 `json:"progress"`
	Reached  bool    `json:"reached"`
}

// ComputeGoal compares the latest raw value with the target. ok is false
// when the latest value is not numeric.
func ComputeGoal(raw []interface{}, target float64, f *formula.Formula, ev formula.Evaluator) (Goal, bool) {
	if len(raw) == 0 {
		return Goal{}, false
	}
	value, ok := cast.ExtractNumber(raw[len(raw)-1])
	if !ok {
		return Goal{}, false
	}

	g := Goal{
		Goal:           target,
		Value:          value,
		FormattedGoal:  target,
		FormattedValue: value,
		Reached:        value >= target,
	}
	if target != 0 {
		g.Progress = cast.Round2(value / target * 100)
	}
	if f != nil {
		g.FormattedValue, _ = f.Apply(ev, value, true)
		g.FormattedGoal, _ = f.Apply(ev, target, true)
	}
	return g, true
}
