package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/timex"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column format types
const (
	FormatDate     = "date"
	FormatNumber   = "number"
	FormatCurrency = "currency"

	defaultDateLayout = "2006-01-02 15:04"
)

var printer = message.NewPrinter(language.English)

// formatValue renders v per the column format. Values that do not fit the
// format are returned unchanged.
func formatValue(v interface{}, f types.ColumnFormat, loc *time.Location) interface{} {
	switch f.Type {
	case FormatDate:
		return formatDate(v, f, loc)
	case FormatNumber, FormatCurrency:
		return formatNumber(v, f)
	default:
		return v
	}
}

func formatDate(v interface{}, f types.ColumnFormat, loc *time.Location) interface{} {
	if f.Timezone != "" {
		if tz, err := time.LoadLocation(f.Timezone); err == nil {
			loc = tz
		}
	}
	t, err := timex.ParseTime(v, loc)
	if err != nil {
		return v
	}
	layout := f.DateFormat
	if layout == "" {
		layout = defaultDateLayout
	}
	return t.Format(layout)
}

func formatNumber(v interface{}, f types.ColumnFormat) interface{} {
	n, ok := cast.ToFloat64(v)
	if !ok {
		return v
	}
	d := decimal.NewFromFloat(n)
	var s string
	if f.Decimals >= 0 {
		s = d.StringFixed(int32(f.Decimals))
	} else {
		s = d.String()
	}
	if f.ThousandsSeparator {
		s = groupThousands(s)
	}
	if f.Symbol == "" {
		return s
	}
	if f.SymbolPosition == "after" {
		return s + f.Symbol
	}
	return f.Symbol + s
}

// groupThousands inserts separators into the integer part of a plain
// decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fraction, hasFraction := strings.Cut(s, ".")
	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	out := sign + printer.Sprintf("%d", i)
	if hasFraction {
		out += "." + fraction
	}
	return out
}
