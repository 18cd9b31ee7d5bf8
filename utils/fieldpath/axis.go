package fieldpath

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	rootToken  = "root"
	arrayToken = "[]"
)

// AxisPath is the parsed form of a dataset path expression:
//
//	root[].a.b           ArrayPath "",    FieldPath "a.b"
//	root.x.y[].a         ArrayPath "x.y", FieldPath "a"
//	root[].items[].price ArrayPath "",    FieldPath "items", NestedPath "price"
//	root.stats           no array, FieldPath "stats"
//
// Paths without the root prefix are relative to the elements of the root
// array.
type AxisPath struct {
	Raw string
	// ArrayPath locates the iterated collection, "" is the root itself.
	ArrayPath string
	// FieldPath is relative to each element of the collection.
	FieldPath string
	// NestedPath is relative to each item of the per-record collection
	// addressed by FieldPath.
	NestedPath string
	HasArray   bool
	// Relative is set for paths written without the root prefix.
	Relative bool
}

// ParseAxisPath splits a path expression on its [] markers. At most two
// markers are allowed.
func ParseAxisPath(expr string) (AxisPath, error) {
	raw := expr
	expr = strings.TrimSpace(expr)
	path := AxisPath{Raw: raw}

	switch {
	case expr == rootToken:
		return path, nil
	case strings.HasPrefix(expr, rootToken+arrayToken), strings.HasPrefix(expr, rootToken+"."):
		expr = strings.TrimPrefix(expr, rootToken)
	case expr == "":
		return path, nil
	default:
		// 相对路径，按 root[] 处理
		path.Relative = true
		expr = arrayToken + "." + expr
	}

	segments := strings.Split(expr, arrayToken)
	for i := range segments {
		segments[i] = strings.Trim(segments[i], ".")
	}
	switch len(segments) {
	case 1:
		path.FieldPath = segments[0]
	case 2:
		path.HasArray = true
		path.ArrayPath = segments[0]
		path.FieldPath = segments[1]
	case 3:
		path.HasArray = true
		path.ArrayPath = segments[0]
		path.FieldPath = segments[1]
		path.NestedPath = segments[2]
		if path.FieldPath == "" {
			return AxisPath{}, &FieldAccessError{Path: raw, Message: "nested collection needs a field name"}
		}
	default:
		return AxisPath{}, &FieldAccessError{Path: raw, Message: "too many [] segments"}
	}
	return path, nil
}

// IsNested reports a second [] segment, i.e. a collection inside each record.
func (p AxisPath) IsNested() bool {
	return p.NestedPath != ""
}

func (p AxisPath) String() string {
	return p.Raw
}

// LocateArray returns the collection addressed by arrayPath. When data is
// itself an array and the path is not empty, the path is applied to every
// element and the found collections are concatenated.
func LocateArray(data interface{}, arrayPath string) ([]interface{}, bool) {
	if arrayPath == "" {
		return ToSlice(data)
	}
	if items, ok := ToSlice(data); ok {
		var out []interface{}
		found := false
		for _, item := range items {
			v, ok := GetNestedField(item, arrayPath)
			if !ok {
				continue
			}
			if sub, ok := ToSlice(v); ok {
				found = true
				out = append(out, sub...)
			}
		}
		return out, found
	}
	v, ok := GetNestedField(data, arrayPath)
	if !ok {
		return nil, false
	}
	return ToSlice(v)
}

// Values resolves the field of p for every element of items. Elements
// without the field yield nil so that the result stays index aligned.
func (p AxisPath) Values(items []interface{}) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		if v, ok := Lookup(item, p.FieldPath); ok {
			out[i] = v
		}
	}
	return out
}

// MapArray rebuilds data with the collection at arrayPath replaced by
// fn(collection). Maps along the path are copied, data itself is not
// modified. Like LocateArray, an array with a non-empty path is handled
// per element.
func MapArray(data interface{}, arrayPath string, fn func([]interface{}) []interface{}) (interface{}, bool) {
	items, isArray := ToSlice(data)
	if arrayPath == "" {
		if !isArray {
			return data, false
		}
		return fn(items), true
	}
	if isArray {
		out := make([]interface{}, len(items))
		found := false
		for i, item := range items {
			v, ok := MapArray(item, arrayPath, fn)
			found = found || ok
			out[i] = v
		}
		return out, found
	}

	key, rest, _ := strings.Cut(arrayPath, ".")
	switch doc := data.(type) {
	case map[string]interface{}:
		child, ok := doc[key]
		if !ok {
			return data, false
		}
		newChild, ok := MapArray(child, rest, fn)
		if !ok {
			return data, false
		}
		copied := make(map[string]interface{}, len(doc))
		for k, v := range doc {
			copied[k] = v
		}
		copied[key] = newChild
		return copied, true
	case primitive.D:
		for i, e := range doc {
			if e.Key != key {
				continue
			}
			newChild, ok := MapArray(e.Value, rest, fn)
			if !ok {
				return data, false
			}
			copied := append(primitive.D(nil), doc...)
			copied[i].Value = newChild
			return copied, true
		}
	}
	return data, false
}
