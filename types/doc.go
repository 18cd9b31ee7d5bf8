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

/*
Package types provides the configuration model shared by every stage of the
chart data pipeline.

# Configuration Structures

A render request is made of a Chart and its Datasets:

	type Dataset struct {
		Data    interface{}    // raw records from a connector
		Options DatasetOptions // axes, operation, conditions, formula...
	}

	type Chart struct {
		Type         ChartType    // line, bar, pie, kpi, table...
		TimeInterval TimeInterval // bucket granularity for date axes
		StartDate    *time.Time   // optional date window
		EndDate      *time.Time
		IncludeZeros bool         // back-fill empty date buckets
		ChartDatasetConfigs []ChartDatasetConfig
	}

# Enumerations

TimeInterval, Operation, Operator, SortOrder and ChartType are numeric
enums that marshal to their lowercase names:

	{"timeInterval": "day", "yAxisOperation": "count_unique", "sort": "desc"}

JSON null and "" decode to the zero value, which IsValid reports as unset.

# Chart level overrides

ChartDatasetConfig mirrors formula, goal, sort, maxRecords and the table
settings. Merge overlays it on the dataset options at assembly time:

	cfg, ok := chart.DatasetConfig(i, ds.Options.ID)
	if ok {
		opts = cfg.Merge(ds.Options)
	}
*/
package types
