// Package timex holds the calendar arithmetic of date buckets: parsing of
// loosely typed date values, truncation to a bucket, unit distances and the
// per-series label format decision.
package timex

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
	spfcast "github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	epochSecondsRegex = regexp.MustCompile(`^\d{10}$`)
	epochMillisRegex  = regexp.MustCompile(`^\d{13}$`)

	// ErrNotADate is returned for values that cannot be read as an instant.
	ErrNotADate = errors.New("value is not a date")
)

// IsEpoch reports whether s is a 10 digit (seconds) or 13 digit
// (milliseconds) unix timestamp.
func IsEpoch(s string) bool {
	return epochSecondsRegex.MatchString(s) || epochMillisRegex.MatchString(s)
}

// ParseTime reads v as an instant in loc. Numbers and numeric strings are
// accepted only as epoch seconds or epoch milliseconds.
func ParseTime(v interface{}, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	switch x := v.(type) {
	case nil, bool:
		return time.Time{}, ErrNotADate
	case time.Time:
		return x.In(loc), nil
	case *time.Time:
		if x == nil {
			return time.Time{}, ErrNotADate
		}
		return x.In(loc), nil
	case primitive.DateTime:
		return x.Time().In(loc), nil
	case primitive.Timestamp:
		return time.Unix(int64(x.T), 0).In(loc), nil
	}

	s := strings.TrimSpace(cast.ToString(v))
	switch {
	case epochSecondsRegex.MatchString(s):
		sec, err := spfcast.ToInt64E(s)
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(sec, 0).In(loc), nil
	case epochMillisRegex.MatchString(s):
		ms, err := spfcast.ToInt64E(s)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).In(loc), nil
	}

	if _, isString := v.(string); !isString || s == "" || cast.IsNumericString(s) {
		return time.Time{}, ErrNotADate
	}
	t, err := spfcast.ToTimeInDefaultLocationE(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNotADate, err)
	}
	return t.In(loc), nil
}

// StartOf truncates t to the start of its bucket. Weeks start on Monday.
func StartOf(t time.Time, interval types.TimeInterval) time.Time {
	loc := t.Location()
	y, m, d := t.Date()
	switch interval {
	case types.IntervalSecond:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case types.IntervalMinute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case types.IntervalHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case types.IntervalWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	case types.IntervalMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case types.IntervalYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// EndOf returns the last nanosecond of t's bucket.
func EndOf(t time.Time, interval types.TimeInterval) time.Time {
	return Add(StartOf(t, interval), interval, 1).Add(-time.Nanosecond)
}

// Add moves t by n buckets using calendar arithmetic.
func Add(t time.Time, interval types.TimeInterval, n int) time.Time {
	switch interval {
	case types.IntervalSecond:
		return t.Add(time.Duration(n) * time.Second)
	case types.IntervalMinute:
		return t.Add(time.Duration(n) * time.Minute)
	case types.IntervalHour:
		return t.Add(time.Duration(n) * time.Hour)
	case types.IntervalWeek:
		return t.AddDate(0, 0, 7*n)
	case types.IntervalMonth:
		return t.AddDate(0, n, 0)
	case types.IntervalYear:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// Diff counts whole buckets from a to b. Both should be bucket starts.
func Diff(a, b time.Time, interval types.TimeInterval) int {
	switch interval {
	case types.IntervalSecond:
		return int(b.Sub(a) / time.Second)
	case types.IntervalMinute:
		return int(b.Sub(a) / time.Minute)
	case types.IntervalHour:
		return int(b.Sub(a) / time.Hour)
	case types.IntervalWeek:
		return calendarDays(a, b) / 7
	case types.IntervalMonth:
		return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	case types.IntervalYear:
		return b.Year() - a.Year()
	default:
		return calendarDays(a, b)
	}
}

// calendarDays ignores DST shifts by counting in UTC dates.
func calendarDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// TruncateForCompare normalizes an instant for condition comparisons:
// day or coarser intervals compare by day, finer ones by their own unit.
func TruncateForCompare(t time.Time, interval types.TimeInterval) time.Time {
	if interval.IsSubDay() {
		return StartOf(t, interval)
	}
	return StartOf(t, types.IntervalDay)
}

// ResolveWindow computes the effective date window of a chart. With
// CurrentEndDate the end moves to the end of the current bucket and, unless
// FixedStartDate is set, the start follows so the window keeps its length.
func ResolveWindow(chart types.Chart, now time.Time, loc *time.Location) types.DateWindow {
	if chart.StartDate == nil || chart.EndDate == nil {
		return types.DateWindow{}
	}
	if loc == nil {
		loc = time.UTC
	}
	interval := chart.TimeInterval.OrDefault()
	start := chart.StartDate.In(loc)
	end := chart.EndDate.In(loc)

	if chart.CurrentEndDate {
		length := end.Sub(start)
		newEnd := EndOf(now.In(loc), interval)
		if !chart.FixedStartDate {
			start = StartOf(newEnd.Add(-length), interval)
		}
		end = newEnd
	}
	return types.NewDateWindow(&start, &end)
}
