// Package valuetype classifies loosely typed document values. Every
// kind-dependent branch of the pipeline (condition comparators, x axis
// bucketing, aggregation, table flattening) dispatches on the Kind returned
// by Classify.
package valuetype

import (
	"hermannm.dev/enumnames"
)

// Kind 值的运行时类型
type Kind uint8

const (
	KindUndefined Kind = iota + 1
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindArray
	KindObject
)

var kindNames = enumnames.NewMap(map[Kind]string{
	KindUndefined: "undefined",
	KindString:    "string",
	KindNumber:    "number",
	KindBoolean:   "boolean",
	KindDate:      "date",
	KindArray:     "array",
	KindObject:    "object",
})

func (kind Kind) IsValid() bool {
	return kindNames.ContainsEnumValue(kind)
}

func (kind Kind) String() string {
	return kindNames.GetNameOrFallback(kind, "undefined")
}

func (kind Kind) MarshalJSON() ([]byte, error) {
	if !kind.IsValid() {
		return []byte("null"), nil
	}
	return kindNames.MarshalToNameJSON(kind)
}

func (kind *Kind) UnmarshalJSON(bytes []byte) error {
	if s := string(bytes); s == "null" || s == `""` {
		*kind = 0
		return nil
	}
	return kindNames.UnmarshalFromNameJSON(bytes, kind)
}

// IsScalar reports kinds stored as a single table cell.
func (kind Kind) IsScalar() bool {
	return kind != KindArray && kind != KindObject
}
