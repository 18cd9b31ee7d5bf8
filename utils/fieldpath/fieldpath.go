package fieldpath

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rulego/chartdata/utils/reflectutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PartType 路径片段类型
type PartType string

const (
	PartField      PartType = "field"
	PartArrayIndex PartType = "array_index"
	PartMapKey     PartType = "map_key"
)

// FieldAccessor is a parsed element-relative path such as a.b[0]["key"].
type FieldAccessor struct {
	Parts []FieldPart
}

// FieldPart represents a single part of field path
type FieldPart struct {
	Type  PartType
	Name  string // field name
	Index int    // array index, negative counts from the end
	Key   string // map key
}

// ParseFieldPath parses an element-relative path.
// Supported formats:
//   - a.b.c (nested fields)
//   - a.b[0] / a[-1] (array index)
//   - a["key"] / a['key'] (quoted key, may contain dots)
func ParseFieldPath(fieldPath string) (*FieldAccessor, error) {
	if fieldPath == "" {
		return nil, nil
	}

	accessor := &FieldAccessor{}
	for _, segment := range splitSegments(fieldPath) {
		if segment == "" {
			continue
		}
		bracket := strings.Index(segment, "[")
		if bracket == -1 {
			accessor.Parts = append(accessor.Parts, FieldPart{Type: PartField, Name: segment})
			continue
		}
		if bracket > 0 {
			accessor.Parts = append(accessor.Parts, FieldPart{Type: PartField, Name: segment[:bracket]})
		}
		rest := segment[bracket:]
		for rest != "" {
			if !strings.HasPrefix(rest, "[") {
				return nil, &FieldAccessError{Path: fieldPath, Message: "unexpected text after bracket"}
			}
			end := strings.Index(rest, "]")
			if end == -1 {
				return nil, &FieldAccessError{Path: fieldPath, Message: "unmatched bracket in field path"}
			}
			part, err := parseBracketContent(rest[1:end])
			if err != nil {
				return nil, err
			}
			accessor.Parts = append(accessor.Parts, part)
			rest = rest[end+1:]
		}
	}
	return accessor, nil
}

// splitSegments splits on dots that are not inside brackets.
func splitSegments(path string) []string {
	var segments []string
	depth, start := 0, 0
	for i, r := range path {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case '.':
			if depth == 0 {
				segments = append(segments, path[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, path[start:])
}

func parseBracketContent(content string) (FieldPart, error) {
	content = strings.TrimSpace(content)
	if len(content) >= 2 &&
		((content[0] == '\'' && content[len(content)-1] == '\'') || (content[0] == '"' && content[len(content)-1] == '"')) {
		return FieldPart{Type: PartMapKey, Key: content[1 : len(content)-1]}, nil
	}
	if num, err := strconv.Atoi(content); err == nil {
		return FieldPart{Type: PartArrayIndex, Index: num, Key: content}, nil
	}
	return FieldPart{}, &FieldAccessError{
		Path:    content,
		Message: "invalid bracket content, expected number or quoted string",
	}
}

// GetNestedField gets field value from nested maps, bson documents, slices
// or structs. An empty path yields nothing.
func GetNestedField(data interface{}, fieldPath string) (interface{}, bool) {
	if fieldPath == "" {
		return nil, false
	}
	accessor, err := ParseFieldPath(fieldPath)
	if err != nil || accessor == nil || len(accessor.Parts) == 0 {
		return nil, false
	}

	current := data
	for _, part := range accessor.Parts {
		val, found := accessFieldPart(current, part)
		if !found {
			return nil, false
		}
		current = val
	}
	return current, true
}

// Lookup is GetNestedField where the empty path is the value itself.
func Lookup(data interface{}, fieldPath string) (interface{}, bool) {
	if fieldPath == "" {
		return data, data != nil
	}
	return GetNestedField(data, fieldPath)
}

func accessFieldPart(data interface{}, part FieldPart) (interface{}, bool) {
	if data == nil {
		return nil, false
	}
	switch part.Type {
	case PartField:
		return getFieldValue(data, part.Name)
	case PartMapKey:
		return getFieldValue(data, part.Key)
	case PartArrayIndex:
		if items, ok := ToSlice(data); ok {
			index := part.Index
			if index < 0 {
				index += len(items)
			}
			if index < 0 || index >= len(items) {
				return nil, false
			}
			return items[index], true
		}
		// 非数组时按键访问
		return getFieldValue(data, part.Key)
	default:
		return nil, false
	}
}

// getFieldValue gets field value from single level
func getFieldValue(data interface{}, fieldName string) (interface{}, bool) {
	switch doc := data.(type) {
	case map[string]interface{}:
		v, ok := doc[fieldName]
		return v, ok
	case primitive.M:
		v, ok := doc[fieldName]
		return v, ok
	case primitive.D:
		for _, e := range doc {
			if e.Key == fieldName {
				return e.Value, true
			}
		}
		return nil, false
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			mapVal := v.MapIndex(reflect.ValueOf(fieldName).Convert(v.Type().Key()))
			if mapVal.IsValid() {
				return mapVal.Interface(), true
			}
		}
		return nil, false
	case reflect.Struct:
		return reflectutil.FieldValue(v.Interface(), fieldName)
	default:
		return nil, false
	}
}

// ToSlice returns the elements of an array value. Byte slices are not
// arrays.
func ToSlice(v interface{}) ([]interface{}, bool) {
	switch x := v.(type) {
	case nil, []byte:
		return nil, false
	case []interface{}:
		return x, true
	case primitive.A:
		return x, true
	case []map[string]interface{}:
		out := make([]interface{}, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, true
	case primitive.D:
		// bson.D is a document, not a list
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// FieldAccessError field access error
type FieldAccessError struct {
	Path    string
	Message string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("field access error for path '%s': %s", e.Path, e.Message)
}
