package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet whose first row is the header.
// Cells keep their stored value and type, not their display text.
// Rows without any non-empty cell are skipped.
func ReadTable(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	t := &models.Table{}
	if len(rows) == 0 {
		return t, nil
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	header := headerNames(rows[0], width)
	for _, name := range header {
		t.AddColumn(name)
	}

	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2 // 1-based, below the header
		r := models.NewRow()
		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			r.Set(header[colIdx], typedValue(cellType, raw))
		}
		if len(r.Keys) > 0 {
			t.Append(r)
		}
	}

	return t, nil
}

// headerNames names width columns from the header row. Blank names become
// "Unnamed: <index>" and repeated names get a ".N" suffix.
func headerNames(row []string, width int) []string {
	names := make([]string, width)
	taken := make(map[string]bool, width)
	count := make(map[string]int, width)

	for colIdx := range names {
		name := ""
		if colIdx < len(row) {
			name = row[colIdx]
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", colIdx)
		}
		unique := name
		for taken[unique] {
			count[name]++
			unique = fmt.Sprintf("%s.%d", name, count[name])
		}
		taken[unique] = true
		names[colIdx] = unique
	}
	return names
}

// typedValue converts a raw cell value according to its stored type.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return parseValue(raw)
	}
	return raw
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// WriteTable writes the header and rows of t starting at A1.
// Cells a row does not carry are left empty.
func WriteTable(f *excelize.File, sheetName string, t *models.Table) error {
	for colIdx, name := range t.Columns {
		if err := setCell(f, sheetName, colIdx+1, 1, name); err != nil {
			return err
		}
	}

	for rowIdx, row := range t.Rows {
		rowNum := rowIdx + 2 // header occupies row 1
		for colIdx, name := range t.Columns {
			v := row.Value(name)
			if v == nil || v == "" {
				continue
			}
			if err := setCell(f, sheetName, colIdx+1, rowNum, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheetName string, col, row int, value interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if s, ok := value.(string); ok {
		return f.SetCellStr(sheetName, cellName, s)
	}
	return f.SetCellValue(sheetName, cellName, value)
}
