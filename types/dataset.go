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

import "time"

// Dataset 一个数据集：原始文档 + 配置
type Dataset struct {
	// Data is usually an array of records; it may also be an object holding
	// arrays addressed with root.x[] paths.
	Data    interface{}    `json:"data"`
	Options DatasetOptions `json:"options"`
}

// DatasetOptions 数据集配置
type DatasetOptions struct {
	ID     string `json:"id,omitempty"`
	Legend string `json:"legend,omitempty"`

	XAxis          string    `json:"xAxis"`
	YAxis          string    `json:"yAxis"`
	YAxisOperation Operation `json:"yAxisOperation"`
	DateField      string    `json:"dateField,omitempty"`

	Conditions []Condition `json:"conditions,omitempty"`
	// GroupBy splits the dataset into one series per distinct value.
	GroupBy string `json:"groupBy,omitempty"`

	ExcludedFields []string             `json:"excludedFields,omitempty"`
	ColumnsOrder   []string             `json:"columnsOrder,omitempty"`
	Configuration  DatasetConfiguration `json:"configuration,omitempty"`

	Formula        string    `json:"formula,omitempty"`
	Goal           *float64  `json:"goal,omitempty"`
	Sort           SortOrder `json:"sort,omitempty"`
	MaxRecords     int       `json:"maxRecords,omitempty"`
	AverageByTotal bool      `json:"averageByTotal,omitempty"`

	// 样式字段
	DatasetColor string   `json:"datasetColor,omitempty"`
	FillColor    []string `json:"fillColor,omitempty"`
	Fill         bool     `json:"fill,omitempty"`
	MultiFill    bool     `json:"multiFill,omitempty"`
}

// DatasetConfiguration carries table presentation settings.
type DatasetConfiguration struct {
	ColumnsFormatting map[string]ColumnFormat `json:"columnsFormatting,omitempty"`
}

// ColumnFormat 表格列格式化配置
type ColumnFormat struct {
	// Type is one of "date", "number" or "currency".
	Type string `json:"type"`
	// DateFormat is a Go time layout.
	DateFormat string `json:"dateFormat,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	// Decimals < 0 keeps the value's own precision.
	Decimals           int    `json:"decimals"`
	ThousandsSeparator bool   `json:"thousandsSeparator,omitempty"`
	Symbol             string `json:"symbol,omitempty"`
	// SymbolPosition is "before" (default) or "after".
	SymbolPosition string `json:"symbolPosition,omitempty"`
}

// Condition 数据集过滤条件
type Condition struct {
	ID       string      `json:"id,omitempty"`
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
	Exposed  bool        `json:"exposed,omitempty"`
}

// HasValue reports whether the condition carries a comparison value.
func (c Condition) HasValue() bool {
	if c.Value == nil {
		return false
	}
	if s, ok := c.Value.(string); ok && s == "" {
		return false
	}
	return true
}

// Filter 仪表盘级别过滤器
type Filter struct {
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
	// Type "date" overrides the chart date window with StartDate/EndDate.
	Type      string     `json:"type,omitempty"`
	Exposed   bool       `json:"exposed,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// IsDate reports date window filters.
func (f Filter) IsDate() bool {
	return f.Type == "date"
}

// AsCondition converts a field filter to a dataset condition.
func (f Filter) AsCondition() Condition {
	return Condition{Field: f.Field, Operator: f.Operator, Value: f.Value, Exposed: f.Exposed}
}
