package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// buildQuoteExportData fetches a quote and its lines, returning the data the
// document exporters consume.
func buildQuoteExportData(app *pocketbase.PocketBase, quoteID string) (services.QuoteExportData, error) {
	quote, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("quote not found: %w", err)
	}

	lines, err := findQuoteLines(app, quoteID)
	if err != nil {
		return services.QuoteExportData{}, fmt.Errorf("load quote lines: %w", err)
	}

	exportLines := make([]services.QuoteExportLine, 0, len(lines))
	var grandTotal float64
	for i, line := range lines {
		orderTotal := line.GetFloat("order_total")
		grandTotal += orderTotal

		exportLines = append(exportLines, services.QuoteExportLine{
			Index:      i + 1,
			Product:    line.GetString("product_name"),
			Category:   line.GetString("category"),
			Size:       line.GetString("size"),
			Quantity:   line.GetInt("quantity"),
			UnitCost:   line.GetFloat("total_unit_cost"),
			Profit:     line.GetFloat("profit"),
			UnitPrice:  line.GetFloat("unit_price"),
			OrderTotal: orderTotal,
		})
	}

	createdDate := time.Now().Format("02 Jan 2006")
	if dt := quote.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.QuoteExportData{
		ClientName:  quote.GetString("client_name"),
		Notes:       quote.GetString("notes"),
		CreatedDate: createdDate,
		Lines:       exportLines,
		GrandTotal:  grandTotal,
	}, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportFilename builds the download name from the client name, falling back
// to the quote id.
func exportFilename(data services.QuoteExportData, quoteID, ext string) string {
	base := data.ClientName
	if base == "" {
		base = quoteID
	}
	return fmt.Sprintf("Cotizacion_%s_%d.%s", sanitizeFilename(base), time.Now().Year(), ext)
}

// HandleQuoteExportPDF generates and downloads the quote as a PDF document.
// Route: GET /quotes/{id}/export/pdf
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		if _, err := app.FindRecordById("quotes", quoteID); err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote data")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, quoteID, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel generates and downloads the quote as an Excel file.
// Route: GET /quotes/{id}/export/excel
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		if _, err := app.FindRecordById("quotes", quoteID); err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		data, err := buildQuoteExportData(app, quoteID)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote data")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, quoteID, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
