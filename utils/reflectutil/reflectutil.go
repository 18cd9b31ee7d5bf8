package reflectutil

import (
	"fmt"
	"reflect"
	"strings"
)

// SafeFieldByName 安全地获取结构体字段。
// 先按字段名匹配，再按 json/bson 标签名匹配，未导出的字段不可访问。
func SafeFieldByName(v reflect.Value, fieldName string) (reflect.Value, error) {
	// 检查Value是否有效
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("invalid value")
	}
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil %v", v.Kind())
		}
		v = v.Elem()
	}

	// 检查是否为结构体类型
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("value is not a struct, got %v", v.Kind())
	}

	if sf, ok := v.Type().FieldByName(fieldName); ok && sf.IsExported() {
		return v.FieldByIndex(sf.Index), nil
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tagName(sf, "json") == fieldName || tagName(sf, "bson") == fieldName {
			return v.Field(i), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("field %s not found", fieldName)
}

// FieldValue returns the value of the named field of a struct or struct
// pointer.
func FieldValue(data interface{}, fieldName string) (interface{}, bool) {
	field, err := SafeFieldByName(reflect.ValueOf(data), fieldName)
	if err != nil || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

func tagName(sf reflect.StructField, key string) string {
	tag, ok := sf.Tag.Lookup(key)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
