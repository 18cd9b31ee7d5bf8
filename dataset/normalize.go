// Package dataset prepares driver documents for the pipeline: bson values
// from the MongoDB driver become plain Go values, and a dataset can be split
// into one series per groupBy value.
package dataset

import (
	"encoding/base64"
	"sort"
	"time"

	"github.com/rulego/chartdata/utils/cast"
	spfcast "github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Normalize converts driver specific values recursively:
//   - bson.D stays an ordered bson.D, so its field order survives the pipeline
//   - bson.M becomes map[string]interface{}
//   - bson.A and typed record slices become []interface{}
//   - ObjectID becomes its hex string, DateTime a UTC time.Time
//   - Decimal128 becomes float64 when representable, its string otherwise
//
// Plain JSON values are returned unchanged.
func Normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			out[k] = Normalize(item)
		}
		return out
	case primitive.M:
		return Normalize(map[string]interface{}(x))
	case primitive.D:
		out := make(primitive.D, len(x))
		for i, e := range x {
			out[i] = primitive.E{Key: e.Key, Value: Normalize(e.Value)}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case primitive.A:
		return Normalize([]interface{}(x))
	case []map[string]interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case []primitive.M:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case []primitive.D:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = Normalize(item)
		}
		return out
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(x.T), 0).UTC()
	case primitive.Decimal128:
		s := x.String()
		if f, ok := cast.ToFloat64(s); ok {
			return f
		}
		if f, err := spfcast.ToFloat64E(s); err == nil {
			return f
		}
		return s
	case primitive.Binary:
		return base64.StdEncoding.EncodeToString(x.Data)
	case primitive.Null, primitive.Undefined:
		return nil
	case primitive.Symbol:
		return string(x)
	case primitive.Regex:
		return x.String()
	default:
		return v
	}
}

// Records returns the normalized top level array of data, or nil when data
// is not an array.
func Records(data interface{}) []interface{} {
	items, _ := Normalize(data).([]interface{})
	return items
}

// Fields returns the fields of a document in discovery order. A bson.D keeps
// its own order; Go maps carry none, so their keys are sorted.
func Fields(doc interface{}) (primitive.D, bool) {
	switch x := doc.(type) {
	case primitive.D:
		return x, true
	case primitive.M:
		return Fields(map[string]interface{}(x))
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(primitive.D, len(keys))
		for i, k := range keys {
			out[i] = primitive.E{Key: k, Value: x[k]}
		}
		return out, true
	default:
		return nil, false
	}
}

// Plain replaces ordered documents with maps, for encoders that do not know
// bson.D.
func Plain(v interface{}) interface{} {
	switch x := v.(type) {
	case primitive.D:
		out := make(map[string]interface{}, len(x))
		for _, e := range x {
			out[e.Key] = Plain(e.Value)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, item := range x {
			out[k] = Plain(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, item := range x {
			out[i] = Plain(item)
		}
		return out
	default:
		return v
	}
}
