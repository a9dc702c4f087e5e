package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportError signals that an uploaded price list produced no usable catalog
// entries. It is the only failure the importer surfaces; per-cell problems
// degrade silently to empty/zero values instead.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return "price list import: " + e.Reason
}

// parsePriceCSV reads a CSV price list and returns the header row plus data rows.
func parsePriceCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) == 0 {
		return nil, nil, &ImportError{Reason: "file is empty"}
	}
	return allRows[0], allRows[1:], nil
}

// parsePriceExcel reads the first sheet of an xlsx price list and returns the
// header row plus data rows.
func parsePriceExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, &ImportError{Reason: "file is empty"}
	}
	return rows[0], rows[1:], nil
}

// ParsePriceList dispatches on the uploaded file's extension and returns the
// header row plus data rows.
func ParsePriceList(file io.Reader, fileName string) ([]string, [][]string, error) {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		return parsePriceCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"), strings.HasSuffix(lowerName, ".xls"):
		return parsePriceExcel(file)
	default:
		return nil, nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
}

// BuildProductReferences converts parsed price-list rows into catalog entries.
//
// The name and price columns are resolved once against the header row (the
// usual single-header spreadsheet export) and that resolution is reused for
// every row. A row whose name cell is empty gets a synthetic "Producto N"
// name and "id-N" id; a non-empty name doubles as the id, and duplicate ids
// are retained as distinct entries. Returns an ImportError when the file has
// no data rows at all; every data row yields an entry.
func BuildProductReferences(headers []string, rows [][]string) ([]ProductReference, error) {
	if len(rows) == 0 {
		return nil, &ImportError{Reason: "no data rows"}
	}

	nameCol := ResolveColumn(headers, NameColumnAliases)
	priceCol := ResolveColumn(headers, PriceColumnAliases)

	refs := make([]ProductReference, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(cellAt(row, nameCol))
		id := name
		if name == "" {
			id = fmt.Sprintf("id-%d", i)
			name = fmt.Sprintf("Producto %d", i+1)
		}
		refs = append(refs, ProductReference{
			ID:       id,
			Name:     name,
			BaseCost: CoercePrice(cellAt(row, priceCol)),
		})
	}
	return refs, nil
}

// cellAt returns the cell at col, tolerating ragged rows and an unresolved
// (-1) column.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
