package axis

import (
	"testing"
	"time"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/rulego/chartdata/valuetype"
	"github.com/stretchr/testify/assert"
)

func dateSeries(format timex.BucketFormat, instants ...time.Time) Series {
	s := Series{Kind: valuetype.KindDate, Format: format}
	for i, t := range instants {
		s.append(format.Format(t), float64(i+1), t, false)
	}
	return s
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestZeroFill_Gaps(t *testing.T) {
	s := dateSeries("Jan 2", day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 5))
	filled := ZeroFill(s, types.IntervalDay, types.DateWindow{})

	assert.Equal(t, []string{"Jan 1", "Jan 2", "Jan 3", "Jan 4", "Jan 5"}, filled.X)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(0), float64(0), float64(3)}, filled.Y)
	assert.Equal(t, []bool{false, false, true, true, false}, filled.Filled)
}

func TestZeroFill_Window(t *testing.T) {
	s := dateSeries("Jan 2", day(2024, 1, 3))
	start, end := day(2024, 1, 1), time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC)
	filled := ZeroFill(s, types.IntervalDay, types.NewDateWindow(&start, &end))

	assert.Equal(t, []string{"Jan 1", "Jan 2", "Jan 3", "Jan 4", "Jan 5"}, filled.X)
	assert.Equal(t, []interface{}{float64(0), float64(0), float64(1), float64(0), float64(0)}, filled.Y)
}

func TestZeroFill_LargeGapStride(t *testing.T) {
	s := dateSeries("2006 Jan 2", day(2024, 1, 1), day(2024, 1, 1).AddDate(0, 0, 200))
	filled := ZeroFill(s, types.IntervalDay, types.DateWindow{})

	// stride 200/20 = 10 → 19 synthetic buckets
	assert.Equal(t, 21, filled.Len())
	assert.Equal(t, day(2024, 1, 11), filled.Instants[1])
	assert.Less(t, filled.Len(), 200)
}

func TestZeroFill_Idempotent(t *testing.T) {
	start, end := day(2023, 12, 1), day(2024, 9, 30)
	window := types.NewDateWindow(&start, &end)

	cases := []struct {
		name     string
		interval types.TimeInterval
		series   Series
	}{
		{"day", types.IntervalDay, dateSeries("2006 Jan 2", day(2024, 1, 1), day(2024, 1, 9), day(2024, 8, 1))},
		{"week", types.IntervalWeek, dateSeries(timex.ISOWeekFormat, day(2024, 1, 1), day(2024, 3, 4))},
		{"month", types.IntervalMonth, dateSeries("Jan 2006", day(2024, 1, 1), day(2024, 6, 1))},
		{"hour", types.IntervalHour, dateSeries("2006/01/02 15:04", day(2024, 1, 1), day(2024, 1, 3))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			once := ZeroFill(tc.series, tc.interval, window)
			twice := ZeroFill(once, tc.interval, window)
			assert.Greater(t, once.Len(), tc.series.Len())
			assert.Equal(t, once, twice)
		})
	}
}

func TestZeroFill_Skipped(t *testing.T) {
	s := dateSeries("15:04:05", day(2024, 1, 1), day(2024, 1, 1).Add(time.Hour))
	assert.Equal(t, s, ZeroFill(s, types.IntervalSecond, types.DateWindow{}))
	assert.Equal(t, s, ZeroFill(s, types.IntervalMinute, types.DateWindow{}))

	category := Series{X: []string{"a"}, Y: []interface{}{1}, Kind: valuetype.KindString}
	assert.Equal(t, category, ZeroFill(category, types.IntervalDay, types.DateWindow{}))
}

func TestZeroFill_EmptySeriesWithWindow(t *testing.T) {
	start, end := day(2024, 1, 1), day(2024, 1, 3)
	s := Series{Kind: valuetype.KindDate, Format: "Jan 2"}
	filled := ZeroFill(s, types.IntervalDay, types.NewDateWindow(&start, &end))
	assert.Equal(t, []string{"Jan 1", "Jan 2", "Jan 3"}, filled.X)
}

func TestCumulative(t *testing.T) {
	assert.Equal(t,
		[]interface{}{float64(1), float64(3), "n/a", float64(4), float64(9)},
		Cumulative([]interface{}{1, 2, "n/a", 4, "5"}),
	)
	assert.Empty(t, Cumulative(nil))
}
