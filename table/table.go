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

package table

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"

	"github.com/rulego/chartdata/dataset"
	"github.com/rulego/chartdata/logger"
	"github.com/rulego/chartdata/types"
	"github.com/rulego/chartdata/valuetype"
)

const (
	// ArrayToken prefixes the JSON encoding of array values.
	ArrayToken = "__cb_array"
	// NestedSeparator joins a parent field and a child field in accessors.
	NestedSeparator = "?"

	DefaultChunkSize = 1000
)

// Options 表格格式化参数
type Options struct {
	ChunkSize int
	Location  *time.Location
	Logger    logger.Logger
}

// Input is one dataset. Options are already merged with the chart level
// dataset config.
type Input struct {
	Records []interface{}
	Options types.DatasetOptions
}

// Format builds one table per dataset keyed by legend. Repeated legends get
// a numeric suffix.
func Format(inputs []Input, opts Options) map[string]Data {
	out := make(map[string]Data, len(inputs))
	for i, in := range inputs {
		legend := in.Options.Legend
		if legend == "" {
			legend = fmt.Sprintf("Dataset %d", i+1)
		}
		key := legend
		for n := 2; ; n++ {
			if _, taken := out[key]; !taken {
				break
			}
			key = fmt.Sprintf("%s %d", legend, n)
		}
		out[key] = FormatDataset(in.Records, in.Options, opts)
	}
	return out
}

// FormatDataset flattens records into columns and rows. Records are walked
// in chunks; the goroutine yields between chunks.
func FormatDataset(records []interface{}, ds types.DatasetOptions, opts Options) Data {
	f := newFormatter(ds, opts)

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	rows := make([]map[string]interface{}, 0, len(records))
	for start := 0; start < len(records); start += chunkSize {
		end := start + chunkSize
		if end > len(records) {
			end = len(records)
		}
		for _, record := range records[start:end] {
			if row, ok := f.row(record); ok {
				rows = append(rows, row)
			}
		}
		if end < len(records) {
			runtime.Gosched()
		}
	}

	f.columns.reorder(ds.ColumnsOrder)
	return Data{Columns: f.columns.columns(), Data: rows}
}

type formatter struct {
	excluded map[string]bool
	formats  map[string]types.ColumnFormat
	location *time.Location
	columns  *columnSet
	log      logger.Logger
}

func newFormatter(ds types.DatasetOptions, opts Options) *formatter {
	f := &formatter{
		excluded: make(map[string]bool, len(ds.ExcludedFields)),
		formats:  ds.Configuration.ColumnsFormatting,
		location: opts.Location,
		columns:  newColumnSet(),
		log:      opts.Logger,
	}
	if f.location == nil {
		f.location = time.UTC
	}
	if f.log == nil {
		f.log = logger.GetDefault()
	}
	for _, field := range ds.ExcludedFields {
		f.excluded[field] = true
	}
	return f
}

func (f *formatter) isExcluded(parent, child string) bool {
	return f.excluded[parent+NestedSeparator+child] || f.excluded[parent+"."+child]
}

func (f *formatter) row(record interface{}) (map[string]interface{}, bool) {
	fields, ok := dataset.Fields(record)
	if !ok {
		f.log.Debug("table record of type %T skipped", record)
		return nil, false
	}

	row := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		key, value := field.Key, field.Value
		if f.excluded[key] {
			continue
		}
		switch valuetype.Classify(value) {
		case valuetype.KindObject:
			nested, ok := dataset.Fields(value)
			if !ok {
				f.columns.register(key, key)
				row[key] = encodeJSON(value)
				continue
			}
			for _, child := range nested {
				if f.isExcluded(key, child.Key) {
					continue
				}
				accessor := key + NestedSeparator + child.Key
				f.columns.registerNested(key, child.Key, accessor)
				row[accessor] = f.nestedValue(accessor, child.Value)
			}
		case valuetype.KindArray:
			f.columns.register(key, key)
			row[key] = ArrayToken + encodeJSON(value)
		default:
			f.columns.register(key, key)
			row[key] = f.format(key, value)
		}
	}
	return row, true
}

func (f *formatter) nestedValue(accessor string, v interface{}) interface{} {
	switch valuetype.Classify(v) {
	case valuetype.KindObject:
		return encodeJSON(v)
	case valuetype.KindArray:
		return ArrayToken + encodeJSON(v)
	default:
		return f.format(accessor, v)
	}
}

func (f *formatter) format(accessor string, v interface{}) interface{} {
	cf, ok := f.formats[accessor]
	if !ok || v == nil {
		return v
	}
	return formatValue(v, cf, f.location)
}

func encodeJSON(v interface{}) string {
	b, err := json.Marshal(dataset.Plain(v))
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
