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
	"strings"
	"time"
)

// Chart 图表全局解析上下文
type Chart struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	Type         ChartType    `json:"type"`
	SubType      string       `json:"subType,omitempty"`
	Mode         string       `json:"mode,omitempty"`
	TimeInterval TimeInterval `json:"timeInterval"`

	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	CurrentEndDate bool       `json:"currentEndDate,omitempty"`
	FixedStartDate bool       `json:"fixedStartDate,omitempty"`

	IncludeZeros  bool `json:"includeZeros,omitempty"`
	Stacked       bool `json:"stacked,omitempty"`
	Horizontal    bool `json:"horizontal,omitempty"`
	DisplayLegend bool `json:"displayLegend,omitempty"`
	ShowGrowth    bool `json:"showGrowth,omitempty"`
	// Timezone is an IANA name; empty uses the engine location.
	Timezone string `json:"timezone,omitempty"`

	ChartDatasetConfigs []ChartDatasetConfig `json:"chartDatasetConfigs,omitempty"`
}

// IsCumulative reports the running-total sub type.
func (c Chart) IsCumulative() bool {
	return strings.Contains(c.SubType, "AddTimeseries")
}

// ChartDatasetConfig 图表级别的数据集配置，覆盖数据集自身的配置
type ChartDatasetConfig struct {
	DatasetID      string    `json:"datasetId,omitempty"`
	Legend         string    `json:"legend,omitempty"`
	Formula        string    `json:"formula,omitempty"`
	Goal           *float64  `json:"goal,omitempty"`
	Sort           SortOrder `json:"sort,omitempty"`
	MaxRecords     int       `json:"maxRecords,omitempty"`
	ExcludedFields []string  `json:"excludedFields,omitempty"`
	ColumnsOrder   []string  `json:"columnsOrder,omitempty"`
	DatasetColor   string    `json:"datasetColor,omitempty"`
	FillColor      []string  `json:"fillColor,omitempty"`
}

// DatasetConfig returns the chart level config for the dataset at index i,
// matched by DatasetID first and by position otherwise.
func (c Chart) DatasetConfig(i int, datasetID string) (ChartDatasetConfig, bool) {
	if datasetID != "" {
		for _, cfg := range c.ChartDatasetConfigs {
			if cfg.DatasetID == datasetID {
				return cfg, true
			}
		}
	}
	if i >= 0 && i < len(c.ChartDatasetConfigs) && c.ChartDatasetConfigs[i].DatasetID == "" {
		return c.ChartDatasetConfigs[i], true
	}
	return ChartDatasetConfig{}, false
}

// Merge overlays chart level settings on the dataset options. Exclusions
// are merged, the other settings are replaced when set.
func (cfg ChartDatasetConfig) Merge(opts DatasetOptions) DatasetOptions {
	if cfg.Legend != "" {
		opts.Legend = cfg.Legend
	}
	if cfg.Formula != "" {
		opts.Formula = cfg.Formula
	}
	if cfg.Goal != nil {
		opts.Goal = cfg.Goal
	}
	if cfg.Sort.IsValid() {
		opts.Sort = cfg.Sort
	}
	if cfg.MaxRecords > 0 {
		opts.MaxRecords = cfg.MaxRecords
	}
	if len(cfg.ExcludedFields) > 0 {
		merged := make([]string, 0, len(opts.ExcludedFields)+len(cfg.ExcludedFields))
		merged = append(merged, opts.ExcludedFields...)
		merged = append(merged, cfg.ExcludedFields...)
		opts.ExcludedFields = merged
	}
	if len(cfg.ColumnsOrder) > 0 {
		opts.ColumnsOrder = cfg.ColumnsOrder
	}
	if cfg.DatasetColor != "" {
		opts.DatasetColor = cfg.DatasetColor
	}
	if len(cfg.FillColor) > 0 {
		opts.FillColor = cfg.FillColor
	}
	return opts
}
