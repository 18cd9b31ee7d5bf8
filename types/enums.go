/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"hermannm.dev/enumnames"
)

// isEmptyJSON reports JSON null or "" which decode to the zero enum value.
func isEmptyJSON(bytes []byte) bool {
	s := string(bytes)
	return s == "null" || s == `""`
}

// TimeInterval 时间分桶粒度
type TimeInterval uint8

const (
	IntervalSecond TimeInterval = iota + 1
	IntervalMinute
	IntervalHour
	IntervalDay
	IntervalWeek
	IntervalMonth
	IntervalYear
)

var timeIntervalNames = enumnames.NewMap(map[TimeInterval]string{
	IntervalSecond: "second",
	IntervalMinute: "minute",
	IntervalHour:   "hour",
	IntervalDay:    "day",
	IntervalWeek:   "week",
	IntervalMonth:  "month",
	IntervalYear:   "year",
})

func (interval TimeInterval) IsValid() bool {
	return timeIntervalNames.ContainsEnumValue(interval)
}

func (interval TimeInterval) String() string {
	return timeIntervalNames.GetNameOrFallback(interval, "INVALID_TIME_INTERVAL")
}

func (interval TimeInterval) MarshalJSON() ([]byte, error) {
	if !interval.IsValid() {
		return []byte("null"), nil
	}
	return timeIntervalNames.MarshalToNameJSON(interval)
}

func (interval *TimeInterval) UnmarshalJSON(bytes []byte) error {
	if isEmptyJSON(bytes) {
		*interval = 0
		return nil
	}
	return timeIntervalNames.UnmarshalFromNameJSON(bytes, interval)
}

// OrDefault falls back to day when the interval was not configured.
func (interval TimeInterval) OrDefault() TimeInterval {
	if interval.IsValid() {
		return interval
	}
	return IntervalDay
}

// IsSubDay reports second, minute and hour buckets.
func (interval TimeInterval) IsSubDay() bool {
	return interval == IntervalSecond || interval == IntervalMinute || interval == IntervalHour
}

// Operation y轴聚合操作
type Operation uint8

const (
	OperationNone Operation = iota + 1
	OperationCount
	OperationCountUnique
	OperationSum
	OperationAvg
	OperationMin
	OperationMax
)

var operationNames = enumnames.NewMap(map[Operation]string{
	OperationNone:        "none",
	OperationCount:       "count",
	OperationCountUnique: "count_unique",
	OperationSum:         "sum",
	OperationAvg:         "avg",
	OperationMin:         "min",
	OperationMax:         "max",
})

func (op Operation) IsValid() bool {
	return operationNames.ContainsEnumValue(op)
}

func (op Operation) String() string {
	return operationNames.GetNameOrFallback(op, "INVALID_OPERATION")
}

func (op Operation) MarshalJSON() ([]byte, error) {
	if !op.IsValid() {
		return []byte("null"), nil
	}
	return operationNames.MarshalToNameJSON(op)
}

func (op *Operation) UnmarshalJSON(bytes []byte) error {
	if isEmptyJSON(bytes) {
		*op = 0
		return nil
	}
	return operationNames.UnmarshalFromNameJSON(bytes, op)
}

// OrDefault treats an unset operation as none.
func (op Operation) OrDefault() Operation {
	if op.IsValid() {
		return op
	}
	return OperationNone
}

// Operator 条件比较操作符
type Operator uint8

const (
	OperatorIs Operator = iota + 1
	OperatorIsNot
	OperatorContains
	OperatorNotContains
	OperatorGreaterThan
	OperatorGreaterOrEqual
	OperatorLessThan
	OperatorLessOrEqual
	OperatorIsNotNull
	OperatorIsNull
)

var operatorNames = enumnames.NewMap(map[Operator]string{
	OperatorIs:             "is",
	OperatorIsNot:          "isNot",
	OperatorContains:       "contains",
	OperatorNotContains:    "notContains",
	OperatorGreaterThan:    "greaterThan",
	OperatorGreaterOrEqual: "greaterOrEqual",
	OperatorLessThan:       "lessThan",
	OperatorLessOrEqual:    "lessOrEqual",
	OperatorIsNotNull:      "isNotNull",
	OperatorIsNull:         "isNull",
})

func (op Operator) IsValid() bool {
	return operatorNames.ContainsEnumValue(op)
}

func (op Operator) String() string {
	return operatorNames.GetNameOrFallback(op, "INVALID_OPERATOR")
}

func (op Operator) MarshalJSON() ([]byte, error) {
	if !op.IsValid() {
		return []byte("null"), nil
	}
	return operatorNames.MarshalToNameJSON(op)
}

func (op *Operator) UnmarshalJSON(bytes []byte) error {
	if isEmptyJSON(bytes) {
		*op = 0
		return nil
	}
	return operatorNames.UnmarshalFromNameJSON(bytes, op)
}

// IsNullCheck reports isNull and isNotNull, which need no condition value.
func (op Operator) IsNullCheck() bool {
	return op == OperatorIsNull || op == OperatorIsNotNull
}

// SortOrder 排序方向
type SortOrder uint8

const (
	SortAsc SortOrder = iota + 1
	SortDesc
)

var sortOrderNames = enumnames.NewMap(map[SortOrder]string{
	SortAsc:  "asc",
	SortDesc: "desc",
})

func (order SortOrder) IsValid() bool {
	return sortOrderNames.ContainsEnumValue(order)
}

func (order SortOrder) String() string {
	return sortOrderNames.GetNameOrFallback(order, "")
}

func (order SortOrder) MarshalJSON() ([]byte, error) {
	if !order.IsValid() {
		return []byte("null"), nil
	}
	return sortOrderNames.MarshalToNameJSON(order)
}

func (order *SortOrder) UnmarshalJSON(bytes []byte) error {
	if isEmptyJSON(bytes) {
		*order = 0
		return nil
	}
	return sortOrderNames.UnmarshalFromNameJSON(bytes, order)
}

// ChartType 图表类型
type ChartType uint8

const (
	ChartLine ChartType = iota + 1
	ChartBar
	ChartPie
	ChartDoughnut
	ChartRadar
	ChartPolar
	ChartKPI
	ChartAvg
	ChartTable
)

var chartTypeNames = enumnames.NewMap(map[ChartType]string{
	ChartLine:     "line",
	ChartBar:      "bar",
	ChartPie:      "pie",
	ChartDoughnut: "doughnut",
	ChartRadar:    "radar",
	ChartPolar:    "polar",
	ChartKPI:      "kpi",
	ChartAvg:      "avg",
	ChartTable:    "table",
})

func (chartType ChartType) IsValid() bool {
	return chartTypeNames.ContainsEnumValue(chartType)
}

func (chartType ChartType) String() string {
	return chartTypeNames.GetNameOrFallback(chartType, "INVALID_CHART_TYPE")
}

func (chartType ChartType) MarshalJSON() ([]byte, error) {
	if !chartType.IsValid() {
		return []byte("null"), nil
	}
	return chartTypeNames.MarshalToNameJSON(chartType)
}

func (chartType *ChartType) UnmarshalJSON(bytes []byte) error {
	if isEmptyJSON(bytes) {
		*chartType = 0
		return nil
	}
	return chartTypeNames.UnmarshalFromNameJSON(bytes, chartType)
}

// IsKPI reports chart types that display formatted single values.
func (chartType ChartType) IsKPI() bool {
	return chartType == ChartKPI || chartType == ChartAvg
}

// HasScales reports chart types drawn on x/y scales.
func (chartType ChartType) HasScales() bool {
	return chartType == ChartLine || chartType == ChartBar
}
