package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel rendition of a quote and returns the
// file contents as a byte slice.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Cotización"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 40, 16, 10, 18, 18}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#0F172A"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Cotización — Furia Rock Kids")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if data.ClientName != "" {
		if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
			return nil, fmt.Errorf("merge client: %w", err)
		}
		f.SetCellValue(sheetName, "A2", "Cliente: "+sanitizeExcelCell(data.ClientName))
		f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)
	}

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	f.SetCellValue(sheetName, "A3", "Fecha: "+data.CreatedDate)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Column headers (row 5) ──────────────────────────────────────────

	headers := []string{"#", "Producto", "Talla", "Cant.", "Precio Unidad", "Total"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", columns[i]), h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Line rows ───────────────────────────────────────────────────────

	rowNum := 6
	for _, line := range data.Lines {
		rowStr := fmt.Sprintf("%d", rowNum)

		talla := line.Size
		if line.Category != "" {
			talla = fmt.Sprintf("%s (%s)", line.Size, categoryLabel(line.Category))
		}

		f.SetCellValue(sheetName, "A"+rowStr, line.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(line.Product))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(talla))
		f.SetCellValue(sheetName, "D"+rowStr, line.Quantity)
		f.SetCellValue(sheetName, "E"+rowStr, FormatCOP(line.UnitPrice))
		f.SetCellValue(sheetName, "F"+rowStr, FormatCOP(line.OrderTotal))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, lineStyle)

		rowNum++
	}

	// ── Grand total ─────────────────────────────────────────────────────

	rowNum++
	totalRow := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "E"+totalRow, "TOTAL:")
	f.SetCellStyle(sheetName, "E"+totalRow, "E"+totalRow, totalStyle)
	f.SetCellValue(sheetName, "F"+totalRow, FormatCOP(data.GrandTotal))
	f.SetCellStyle(sheetName, "F"+totalRow, "F"+totalRow, totalStyle)

	if data.Notes != "" {
		rowNum += 2
		noteRow := fmt.Sprintf("%d", rowNum)
		if err := f.MergeCell(sheetName, "A"+noteRow, lastCol+noteRow); err != nil {
			return nil, fmt.Errorf("merge notes: %w", err)
		}
		f.SetCellValue(sheetName, "A"+noteRow, "Notas: "+sanitizeExcelCell(data.Notes))
		f.SetCellStyle(sheetName, "A"+noteRow, lastCol+noteRow, subtitleStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +,
// -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
