// Package main provides the CLI entry point for chartdata.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rulego/chartdata"
	"github.com/rulego/chartdata/config"
	"github.com/rulego/chartdata/export"
	"github.com/rulego/chartdata/table"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	pretty     bool
	xlsxPath   string
	printTable bool
	extJSON    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartdata",
		Short: "Turn raw query results into chart configurations",
		Long: `chartdata resolves chart axes, applies conditions, aggregations and formulas
to raw dataset documents and outputs renderer-ready JSON.`,
		SilenceUsage: true,
	}

	renderCmd := &cobra.Command{
		Use:   "render [request.json]",
		Short: "Render a chart request read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	renderCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the rendered data as an XLSX workbook")
	renderCmd.Flags().BoolVar(&printTable, "table", false, "Print the rendered data as text tables instead of JSON")
	renderCmd.Flags().BoolVar(&extJSON, "extjson", false, "Dataset data is MongoDB Extended JSON")

	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.ReadFromEnv()
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}
	req, err := decodeRequest(input, extJSON)
	if err != nil {
		return err
	}

	engine := chartdata.New(chartdata.WithConfig(cfg, os.Stderr))
	result, err := engine.Render(req)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(result, "", "  ")
	} else {
		jsonData, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if !printTable {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if printTable {
		printTables(cmd.OutOrStdout(), resultTables(result))
	}

	if xlsxPath != "" {
		return writeXLSXFile(xlsxPath, resultTables(result))
	}
	return nil
}

// writeXLSXFile writes the workbook to path. A failed close is reported,
// since the file may be incomplete.
func writeXLSXFile(path string, tables map[string]table.Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	if err := export.WriteXLSX(f, tables); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", args[0])
	}
	return os.ReadFile(args[0])
}
