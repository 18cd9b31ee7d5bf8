package valuetype

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/timex"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Classify returns the kind of v. Composite checks run first, then the
// scalar kinds, and the date override runs last so that small integers are
// never taken for dates.
func Classify(v interface{}) Kind {
	kind := classifyStructural(v)
	if (kind == KindNumber || kind == KindString) && looksLikeDate(v, kind) {
		return KindDate
	}
	return kind
}

// FirstKind classifies the first non-nil value of values.
func FirstKind(values []interface{}) Kind {
	for _, v := range values {
		if v != nil {
			return Classify(v)
		}
	}
	return KindUndefined
}

func classifyStructural(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindUndefined
	case bson.D, bson.M, map[string]interface{}:
		return KindObject
	case bson.A, []interface{}:
		return KindArray
	case []byte, primitive.ObjectID, primitive.Symbol, primitive.Regex:
		return KindString
	case time.Time, *time.Time, primitive.DateTime, primitive.Timestamp:
		return KindDate
	case bool:
		return KindBoolean
	case json.Number, primitive.Decimal128,
		int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return KindNumber
	case string:
		return KindString
	case primitive.Null, primitive.Undefined:
		return KindUndefined
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return KindUndefined
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	default:
		// structs and other values are rendered through their string form
		return KindString
	}
}

// looksLikeDate: epoch seconds / epoch millis, or a non-numeric string that
// parses as a date.
func looksLikeDate(v interface{}, kind Kind) bool {
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return false
	}
	if !timex.IsEpoch(s) {
		if kind != KindString || cast.IsNumericString(s) {
			return false
		}
	}
	_, err := timex.ParseTime(v, time.UTC)
	return err == nil
}
