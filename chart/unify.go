package chart

import (
	"sort"
	"time"

	"github.com/rulego/chartdata/axis"
	"github.com/rulego/chartdata/types"
)

// keepsDuplicateLabels reports intervals whose labels may repeat within one
// series, e.g. "15:04" on two different days.
func keepsDuplicateLabels(interval types.TimeInterval) bool {
	return interval.IsSubDay() || interval == types.IntervalWeek
}

type unifiedLabel struct {
	label   string
	instant time.Time
}

// Unify puts every series on one shared label axis. Labels are concatenated
// in dataset order; date axes are then sorted by bucket instant. A label
// appears as often as it does in the dataset that has it most, or once for
// day and coarser intervals. Missing points are 0, or the previous value of
// the dataset when cumulative.
func Unify(series []axis.Series, interval types.TimeInterval, cumulative bool) ([]string, [][]interface{}) {
	keepDuplicates := keepsDuplicateLabels(interval)

	isDate := false
	for _, s := range series {
		if s.Len() == 0 {
			continue
		}
		if !s.IsDate() {
			isDate = false
			break
		}
		isDate = true
	}

	occurrences := make(map[string]int)
	entries := make([]unifiedLabel, 0)
	for _, s := range series {
		local := make(map[string]int, s.Len())
		for i, label := range s.X {
			local[label]++
			limit := local[label]
			if !keepDuplicates {
				limit = 1
			}
			if occurrences[label] >= limit {
				continue
			}
			occurrences[label]++
			entry := unifiedLabel{label: label}
			if i < len(s.Instants) {
				entry.instant = s.Instants[i]
			}
			entries = append(entries, entry)
		}
	}
	if isDate {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].instant.Before(entries[j].instant)
		})
	}

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}

	values := make([][]interface{}, len(series))
	for d, s := range series {
		values[d] = align(s, labels, keepDuplicates, cumulative)
	}
	return labels, values
}

// align maps the points of s onto labels, matching the k-th occurrence of a
// label to the k-th point with that label.
func align(s axis.Series, labels []string, keepDuplicates, cumulative bool) []interface{} {
	byLabel := make(map[string][]interface{}, s.Len())
	for i, label := range s.X {
		byLabel[label] = append(byLabel[label], s.Y[i])
	}

	used := make(map[string]int, len(byLabel))
	out := make([]interface{}, len(labels))
	var previous interface{} = float64(0)
	for i, label := range labels {
		k := used[label]
		used[label]++
		points := byLabel[label]
		switch {
		case k < len(points) && (keepDuplicates || k == 0):
			out[i] = points[k]
		case cumulative:
			out[i] = previous
		default:
			out[i] = float64(0)
		}
		previous = out[i]
	}
	return out
}
