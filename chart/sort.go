package chart

import (
	"sort"
	"strings"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
)

// compareValues orders numerically when both sides are numeric and
// lexically otherwise.
func compareValues(a, b interface{}) int {
	fa, okA := cast.ToFloat64(a)
	fb, okB := cast.ToFloat64(b)
	if okA && okB {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

// Permutation returns the indexes of values in sorted order. Equal values
// keep their relative order.
func Permutation(values []interface{}, order types.SortOrder) []int {
	perm := make([]int, len(values))
	for i := range perm {
		perm[i] = i
	}
	if !order.IsValid() {
		return perm
	}
	sort.SliceStable(perm, func(i, j int) bool {
		c := compareValues(values[perm[i]], values[perm[j]])
		if order == types.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return perm
}

// Permute reorders s by perm. s must be at least as long as perm.
func Permute[T any](s []T, perm []int) []T {
	out := make([]T, len(perm))
	for i, p := range perm {
		out[i] = s[p]
	}
	return out
}

// truncate cuts s to n entries when n is positive and smaller than len(s).
func truncate[T any](s []T, n int) []T {
	if n <= 0 || n >= len(s) {
		return s
	}
	return s[:n]
}
