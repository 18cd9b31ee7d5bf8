/*
 * Copyright 2024 The RuleGo Authors.
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

package dataset

import (
	"github.com/rulego/chartdata/utils/cast"
	"github.com/rulego/chartdata/utils/fieldpath"
)

// Row 同一分组值下的记录
type Row struct {
	GroupValue string
	Records    []interface{}
}

func NewRow(groupValue string) *Row {
	return &Row{GroupValue: groupValue}
}

func (r *Row) AddRecord(record interface{}) {
	r.Records = append(r.Records, record)
}

// Rows keeps groups in the order their value was first seen.
type Rows struct {
	order []string
	rows  map[string]*Row
}

func NewRows() *Rows {
	return &Rows{rows: make(map[string]*Row)}
}

func (r *Rows) AddRecord(groupValue string, record interface{}) {
	row, ok := r.rows[groupValue]
	if !ok {
		row = NewRow(groupValue)
		r.rows[groupValue] = row
		r.order = append(r.order, groupValue)
	}
	row.AddRecord(record)
}

// List returns the groups in first-seen order.
func (r *Rows) List() []*Row {
	out := make([]*Row, 0, len(r.order))
	for _, v := range r.order {
		out = append(out, r.rows[v])
	}
	return out
}

// GroupBy splits records by the stringified value of field. field may be
// relative ("country") or a root[] path. Records without the field are
// dropped.
func GroupBy(records []interface{}, field string) (*Rows, error) {
	path, err := fieldpath.ParseAxisPath(field)
	if err != nil {
		return nil, err
	}
	rows := NewRows()
	for _, record := range records {
		v, ok := fieldpath.Lookup(record, path.FieldPath)
		if !ok || v == nil {
			continue
		}
		rows.AddRecord(cast.ToString(v), record)
	}
	return rows, nil
}
