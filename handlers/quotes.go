package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// HandleQuotePreview computes a breakdown for the submitted configuration
// without persisting anything. This backs the live recalculation of the
// quoting form.
// Route: POST /quotes/preview
func HandleQuotePreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("quote_preview: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load catalog")
		}

		rates := loadRates(app)
		cfg := parseQuoteConfig(e, rates)
		product := services.ResolveReference(catalog, cfg.Reference)
		breakdown := services.ComputeBreakdown(cfg, product, rates)

		return e.JSON(http.StatusOK, map[string]any{
			"config":    cfg,
			"product":   product,
			"breakdown": breakdown,
		})
	}
}

// HandleQuoteCreate creates an empty quote to accumulate lines into.
// Route: POST /quotes
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: %v", err)
			return e.String(http.StatusInternalServerError, "Quotes collection not found")
		}

		record := core.NewRecord(col)
		record.Set("client_name", strings.TrimSpace(e.Request.FormValue("client_name")))
		record.Set("notes", strings.TrimSpace(e.Request.FormValue("notes")))
		if err := app.Save(record); err != nil {
			log.Printf("quote_create: save: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to create quote")
		}

		return e.JSON(http.StatusOK, map[string]any{"id": record.Id})
	}
}

// HandleQuoteView returns a quote with its lines and grand total.
// Route: GET /quotes/{id}
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		lines, err := findQuoteLines(app, quoteID)
		if err != nil {
			log.Printf("quote_view: lines: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote lines")
		}

		lineViews := make([]map[string]any, 0, len(lines))
		var grandTotal float64
		for _, line := range lines {
			grandTotal += line.GetFloat("order_total")
			lineViews = append(lineViews, quoteLineView(line))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":          quote.Id,
			"client_name": quote.GetString("client_name"),
			"notes":       quote.GetString("notes"),
			"lines":       lineViews,
			"grand_total": grandTotal,
		})
	}
}

// findQuoteLines returns a quote's lines in insertion order.
func findQuoteLines(app *pocketbase.PocketBase, quoteID string) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		"quote_lines",
		"quote = {:quoteId}",
		"sort_order",
		0,
		0,
		map[string]any{"quoteId": quoteID},
	)
}

// quoteLineView flattens a line record, snapshot fields included, for JSON
// responses.
func quoteLineView(line *core.Record) map[string]any {
	return map[string]any{
		"id":                 line.Id,
		"ref_id":             line.GetString("ref_id"),
		"product_name":       line.GetString("product_name"),
		"category":           line.GetString("category"),
		"size":               line.GetString("size"),
		"print_area_cm2":     line.GetFloat("print_area_cm2"),
		"accent_area_cm2":    line.GetFloat("accent_area_cm2"),
		"finishing_qty":      line.GetInt("finishing_qty"),
		"quantity":           line.GetInt("quantity"),
		"base_cost":          line.GetFloat("base_cost"),
		"print_cost_primary": line.GetFloat("print_cost_primary"),
		"print_cost_accent":  line.GetFloat("print_cost_accent"),
		"finishing_cost":     line.GetFloat("finishing_cost"),
		"packaging_cost":     line.GetFloat("packaging_cost"),
		"total_unit_cost":    line.GetFloat("total_unit_cost"),
		"profit":             line.GetFloat("profit"),
		"unit_price":         line.GetFloat("unit_price"),
		"order_total":        line.GetFloat("order_total"),
		"margin_percent":     line.GetFloat("margin_percent"),
	}
}
