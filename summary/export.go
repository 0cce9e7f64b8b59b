package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/robinvdvleuten/salesagg/ledger"
)

// Format is a structured export format.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatXLSX, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q, expected xlsx, yaml or json", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Row is one exported table entry.
type Row struct {
	Code  string `json:"code" yaml:"code"`
	Name  string `json:"name" yaml:"name"`
	Total int64  `json:"total" yaml:"total"`
}

// Sheet is the export of a single dimension.
type Sheet struct {
	Dimension string `json:"dimension" yaml:"dimension"`
	Rows      []Row  `json:"rows" yaml:"rows"`
}

// Sheets converts tables into export sheets, keeping table order.
func Sheets(tables []*ledger.Table) []Sheet {
	sheets := make([]Sheet, 0, len(tables))
	for _, t := range tables {
		s := Sheet{Dimension: t.Dimension.String(), Rows: make([]Row, 0, t.Len())}
		for _, e := range t.Entries() {
			// Totals stay below ledger.MaxTotal, well inside int64.
			s.Rows = append(s.Rows, Row{Code: e.Code, Name: e.Name, Total: e.Total.IntPart()})
		}
		sheets = append(sheets, s)
	}
	return sheets
}

// Export writes tables to w in the given format.
func Export(w io.Writer, format Format, tables []*ledger.Table) error {
	sheets := Sheets(tables)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sheets)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sheets); err != nil {
			return err
		}
		return enc.Close()

	case FormatXLSX:
		return exportXLSX(w, sheets)

	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// exportXLSX writes one worksheet per dimension with a header row.
func exportXLSX(w io.Writer, sheets []Sheet) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	defaultSheet := f.GetSheetName(0)

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Dimension); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.Dimension); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.Dimension, err)
		}

		header := []interface{}{"code", "name", "total"}
		if err := f.SetSheetRow(s.Dimension, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}

		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			values := []interface{}{row.Code, row.Name, row.Total}
			if err := f.SetSheetRow(s.Dimension, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r+2, err)
			}
		}
	}

	return f.Write(w)
}
