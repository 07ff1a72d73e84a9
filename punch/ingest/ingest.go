package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"shiftbook.com.au/shiftbook/punch/core"
	"shiftbook.com.au/shiftbook/punch/extract"
	"shiftbook.com.au/shiftbook/punch/model"
	"shiftbook.com.au/shiftbook/utils"
)

// CSV reads a tabular punch source into its header row and data rows.
func CSV(r io.Reader) ([]string, [][]string, error) {
	rows, err := utils.ParseCSV(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

// XLSX reads the first sheet of a workbook into its header row and data rows.
func XLSX(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

// File turns an uploaded punch document into the canonical punch table,
// picking the reader from the file extension. Anything that is not CSV or
// XLSX is treated as extracted page text and goes through the line parser.
// A tabular source with an unresolvable header fails with
// core.UnresolvedColumnsError; an empty source yields an empty table.
func File(name string, r io.Reader) ([]model.PunchRecord, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		header, rows, err := CSV(r)
		if err != nil {
			return nil, err
		}
		if len(header) == 0 {
			return nil, nil
		}
		return core.FromRows(header, rows)
	case ".xlsx", ".xls":
		header, rows, err := XLSX(r)
		if err != nil {
			return nil, err
		}
		if len(header) == 0 {
			return nil, nil
		}
		return core.FromRows(header, rows)
	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read text: %w", err)
		}
		return extract.Pages([]string{string(data)}), nil
	}
}
