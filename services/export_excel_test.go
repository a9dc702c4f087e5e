package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleExportData() QuoteExportData {
	return QuoteExportData{
		ClientName:  "Colegio San Mateo",
		Notes:       "Entrega en dos semanas",
		CreatedDate: "15 Jan 2026",
		Lines: []QuoteExportLine{
			{Index: 1, Product: "Camiseta Algodón Premium", Category: "nino", Size: "8", Quantity: 2, UnitCost: 19000, Profit: 30000, UnitPrice: 49000, OrderTotal: 98000},
			{Index: 2, Product: "Hoodie Rockero", Category: "adulto", Size: "M", Quantity: 1, UnitCost: 47300, Profit: 30000, UnitPrice: 77300, OrderTotal: 77300},
		},
		GrandTotal: 175300,
		Pitch:      "¡Ropa con actitud!",
	}
}

func TestGenerateQuoteExcel_Basic(t *testing.T) {
	result, err := GenerateQuoteExcel(sampleExportData())
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Cotización" {
		t.Errorf("expected sheet 'Cotización', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Cotización — Furia Rock Kids" {
		t.Errorf("A1 = %q", title)
	}

	client, _ := f.GetCellValue(sheets[0], "A2")
	if client != "Cliente: Colegio San Mateo" {
		t.Errorf("A2 = %q", client)
	}

	product, _ := f.GetCellValue(sheets[0], "B6")
	if product != "Camiseta Algodón Premium" {
		t.Errorf("B6 = %q", product)
	}

	lineTotal, _ := f.GetCellValue(sheets[0], "F6")
	if lineTotal != "$98.000" {
		t.Errorf("F6 = %q, want $98.000", lineTotal)
	}

	grand, _ := f.GetCellValue(sheets[0], "F9")
	if grand != "$175.300" {
		t.Errorf("F9 = %q, want $175.300", grand)
	}
}

func TestGenerateQuoteExcel_EmptyLines(t *testing.T) {
	data := QuoteExportData{ClientName: "Sin líneas", CreatedDate: "15 Jan 2026"}
	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}
}

func TestGenerateQuoteExcel_FormulaInjectionEscaped(t *testing.T) {
	data := sampleExportData()
	data.Lines[0].Product = "=HYPERLINK(\"http://evil\")"

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	cell, _ := f.GetCellValue("Cotización", "B6")
	if strings.HasPrefix(cell, "=") {
		t.Errorf("formula not escaped: %q", cell)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Camiseta", "Camiseta"},
		{"equals", "=1+1", "'=1+1"},
		{"plus", "+algo", "'+algo"},
		{"minus", "-algo", "'-algo"},
		{"at", "@cmd", "'@cmd"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
