package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/rulego/chartdata"
	"github.com/rulego/chartdata/table"
	"github.com/rulego/chartdata/types"
	tableprint "github.com/rulego/chartdata/utils/table"
	"go.mongodb.org/mongo-driver/bson"
	"hermannm.dev/wrap"
)

// labelColumn is the first column of a chart rendered as a table.
const labelColumn = "label"

type rawRequest struct {
	Chart    types.Chart    `json:"chart"`
	Datasets []rawDataset   `json:"datasets"`
	Filters  []types.Filter `json:"filters,omitempty"`
}

type rawDataset struct {
	Data    json.RawMessage      `json:"data"`
	Options types.DatasetOptions `json:"options"`
}

// decodeRequest reads a render request. With extJSON the data of every
// dataset is decoded as MongoDB Extended JSON, so $date and $oid values
// arrive as driver types.
func decodeRequest(input []byte, extJSON bool) (chartdata.Request, error) {
	var raw rawRequest
	if err := json.Unmarshal(input, &raw); err != nil {
		return chartdata.Request{}, wrap.Error(err, "invalid request JSON")
	}

	req := chartdata.Request{Chart: raw.Chart, Filters: raw.Filters}
	for i, ds := range raw.Datasets {
		data, err := decodeData(ds.Data, extJSON)
		if err != nil {
			return chartdata.Request{}, wrap.Errorf(err, "invalid data in dataset %d", i+1)
		}
		req.Datasets = append(req.Datasets, types.Dataset{Data: data, Options: ds.Options})
	}
	return req, nil
}

func decodeData(data json.RawMessage, extJSON bool) (interface{}, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if !extJSON {
		var v interface{}
		err := json.Unmarshal(data, &v)
		return v, err
	}

	// Extended JSON documents must be objects at the top level.
	wrapped := make([]byte, 0, len(data)+10)
	wrapped = append(wrapped, `{"data":`...)
	wrapped = append(wrapped, data...)
	wrapped = append(wrapped, '}')

	var doc struct {
		Data interface{} `bson:"data"`
	}
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return nil, err
	}
	return doc.Data, nil
}

// resultTables returns table output as is and turns chart output into one
// table with a label column and a column per dataset.
func resultTables(result *chartdata.Result) map[string]table.Data {
	if result.Table != nil {
		return result.Table
	}
	if result.Chart == nil {
		return nil
	}

	data := result.Chart.Data
	out := table.Data{Columns: []table.Column{{Header: labelColumn, Accessor: labelColumn}}}
	accessors := make([]string, len(data.Datasets))
	for i, ds := range data.Datasets {
		accessors[i] = fmt.Sprintf("%d:%s", i, ds.Label)
		out.Columns = append(out.Columns, table.Column{Header: ds.Label, Accessor: accessors[i]})
	}
	for r, label := range data.Labels {
		row := map[string]interface{}{labelColumn: label}
		for i, ds := range data.Datasets {
			if r < len(ds.Data) {
				row[accessors[i]] = ds.Data[r]
			}
		}
		out.Data = append(out.Data, row)
	}

	name := "chart"
	if result.DateFormat != "" {
		name = "timeseries"
	}
	return map[string]table.Data{name: out}
}

func printTables(w io.Writer, tables map[string]table.Data) {
	legends := make([]string, 0, len(tables))
	for legend := range tables {
		legends = append(legends, legend)
	}
	sort.Strings(legends)

	for i, legend := range legends {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", legend)
		data := tables[legend]
		tableprint.PrintTableFromSlice(w, data.Data, data.Accessors(), data.Headers())
	}
}
