package timex

import (
	"fmt"
	"time"

	"github.com/rulego/chartdata/types"
)

// BucketFormat is the label layout chosen for one date series. It is a Go
// time layout except for ISOWeekFormat, which renders "<iso year> W<week>".
type BucketFormat string

const (
	ISOWeekFormat BucketFormat = "2006 W01"

	formatYear          BucketFormat = "2006"
	formatMonth         BucketFormat = "Jan"
	formatMonthYear     BucketFormat = "Jan 2006"
	formatDay           BucketFormat = "Jan 2"
	formatDayYear       BucketFormat = "2006 Jan 2"
	formatTimeCrossYear BucketFormat = "2006/01/02 15:04"
	formatTimeCrossMon  BucketFormat = "Jan 2 15:04"
	formatTimeCrossWeek BucketFormat = "Mon 2 15:04"
	formatTimeCrossDay  BucketFormat = "Mon 15:04"
	formatTimeSameDay   BucketFormat = "15:04"
)

// Format renders the label of t.
func (f BucketFormat) Format(t time.Time) string {
	if f == ISOWeekFormat {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d W%02d", year, week)
	}
	return t.Format(string(f))
}

func (f BucketFormat) String() string {
	return string(f)
}

// DecideFormat picks the label format of a series once, from the bucket
// interval and the first and last instants of the series. now only matters
// for day buckets, which keep the year outside the current year.
func DecideFormat(interval types.TimeInterval, first, last, now time.Time) BucketFormat {
	switch interval {
	case types.IntervalSecond, types.IntervalMinute, types.IntervalHour:
		f := subDayFormat(first, last)
		if interval == types.IntervalSecond {
			f += ":05"
		}
		return f
	case types.IntervalWeek:
		return ISOWeekFormat
	case types.IntervalMonth:
		if first.Year() != last.Year() {
			return formatMonthYear
		}
		return formatMonth
	case types.IntervalYear:
		return formatYear
	default:
		if first.Year() != last.Year() || first.Year() != now.In(first.Location()).Year() {
			return formatDayYear
		}
		return formatDay
	}
}

// subDayFormat 跨年、跨月、跨 ISO 周的范围逐级使用更完整的日期，
// 同一周内只需要星期，同一天只保留时间。
func subDayFormat(first, last time.Time) BucketFormat {
	fy, fm, fd := first.Date()
	ly, lm, ld := last.Date()
	_, fw := first.ISOWeek()
	_, lw := last.ISOWeek()
	switch {
	case fy != ly:
		return formatTimeCrossYear
	case fm != lm:
		return formatTimeCrossMon
	case fw != lw:
		return formatTimeCrossWeek
	case fd != ld:
		return formatTimeCrossDay
	default:
		return formatTimeSameDay
	}
}
