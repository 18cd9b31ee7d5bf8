// Package export writes table output to spreadsheet files.
package export

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/rulego/chartdata/table"
	"github.com/xuri/excelize/v2"
	"hermannm.dev/wrap"
)

const maxSheetNameLength = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "(", "]", ")", ":", "-", "*", "-", "?", "-", "/", "-", "\\", "-",
)

// SheetName makes a legend usable as a worksheet name.
func SheetName(legend string) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(legend))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	if r := []rune(name); len(r) > maxSheetNameLength {
		name = string(r[:maxSheetNameLength])
	}
	return name
}

// NewWorkbook builds a workbook with one sheet per table, ordered by legend.
// The first row of every sheet holds the column headers.
func NewWorkbook(tables map[string]table.Data) (*excelize.File, error) {
	f := excelize.NewFile()

	legends := make([]string, 0, len(tables))
	for legend := range tables {
		legends = append(legends, legend)
	}
	sort.Strings(legends)

	defaultSheet := f.GetSheetName(0)
	used := make(map[string]bool, len(legends))
	for i, legend := range legends {
		name := uniqueSheetName(SheetName(legend), used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				f.Close()
				return nil, wrap.Errorf(err, "failed to name sheet '%s'", name)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, wrap.Errorf(err, "failed to create sheet '%s'", name)
		}
		if err := writeSheet(f, name, tables[legend]); err != nil {
			f.Close()
			return nil, wrap.Errorf(err, "failed to write sheet '%s'", name)
		}
	}
	return f, nil
}

// WriteXLSX writes the tables as an XLSX workbook to w.
func WriteXLSX(w io.Writer, tables map[string]table.Data) error {
	f, err := NewWorkbook(tables)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return wrap.Error(err, "failed to write workbook")
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, data table.Data) error {
	headers := data.Headers()
	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	accessors := data.Accessors()
	for r, row := range data.Data {
		values := make([]interface{}, len(accessors))
		for c, accessor := range accessors {
			values[c] = row[accessor]
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := " " + strconv.Itoa(n)
		base := []rune(name)
		if len(base)+len(suffix) > maxSheetNameLength {
			base = base[:maxSheetNameLength-len(suffix)]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
