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

// Package table prints rows as plain text tables for terminals.
package table

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

const minColumnWidth = 4

// PrintTableFromSlice prints rows with the given columns. When columns is
// empty every key found in the rows is used, in alphabetical order. headers
// overrides the printed column names and must match columns in length.
func PrintTableFromSlice(w io.Writer, data []map[string]interface{}, columns, headers []string) {
	if len(data) == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}
	if len(columns) == 0 {
		columns = collectColumns(data)
	}
	if len(headers) != len(columns) {
		headers = columns
	}

	cells := make([][]string, len(data))
	for r, row := range data {
		cells[r] = make([]string, len(columns))
		for c, col := range columns {
			if v, exists := row[col]; exists && v != nil {
				cells[r][c] = fmt.Sprintf("%v", v)
			}
		}
	}
	PrintTable(w, headers, cells)
}

// PrintTable prints a header row and the cells, one slice per row.
func PrintTable(w io.Writer, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = max(utf8.RuneCountInString(h), minColumnWidth)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(colWidths); i++ {
			colWidths[i] = max(colWidths[i], utf8.RuneCountInString(row[i]))
		}
	}

	PrintTableBorder(w, colWidths)
	printRow(w, headers, colWidths)
	PrintTableBorder(w, colWidths)
	for _, row := range rows {
		printRow(w, row, colWidths)
	}
	PrintTableBorder(w, colWidths)
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

// PrintTableBorder prints table border
func PrintTableBorder(w io.Writer, columnWidths []int) {
	var b strings.Builder
	b.WriteString("+")
	for _, width := range columnWidths {
		b.WriteString(strings.Repeat("-", width+2))
		b.WriteString("+")
	}
	fmt.Fprintln(w, b.String())
}

func printRow(w io.Writer, values []string, colWidths []int) {
	var b strings.Builder
	b.WriteString("|")
	for i, width := range colWidths {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		b.WriteString(" ")
		b.WriteString(val)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(val)))
		b.WriteString(" |")
	}
	fmt.Fprintln(w, b.String())
}

func collectColumns(data []map[string]interface{}) []string {
	columnSet := make(map[string]bool)
	for _, row := range data {
		for col := range row {
			columnSet[col] = true
		}
	}
	columns := make([]string, 0, len(columnSet))
	for col := range columnSet {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
