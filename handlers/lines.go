package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// getNextLineSortOrder queries the existing lines of a quote and returns the
// next sort_order value.
func getNextLineSortOrder(app *pocketbase.PocketBase, quoteID string) int {
	existing, err := app.FindRecordsByFilter(
		"quote_lines",
		"quote = {:quoteId}",
		"-sort_order",
		1,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil || len(existing) == 0 {
		return 1
	}
	return existing[0].GetInt("sort_order") + 1
}

// HandleLineAdd prices the submitted configuration and appends it to the
// quote as a frozen snapshot: the line stores both the configuration and its
// computed breakdown, and later edits to the form, catalog, or rates never
// rewrite it.
// Route: POST /quotes/{id}/lines
func HandleLineAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("quotes", quoteID); err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("line_add: catalog: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load catalog")
		}

		rates := loadRates(app)
		cfg := parseQuoteConfig(e, rates)
		product := services.ResolveReference(catalog, cfg.Reference)
		breakdown := services.ComputeBreakdown(cfg, product, rates)

		col, err := app.FindCollectionByNameOrId("quote_lines")
		if err != nil {
			log.Printf("line_add: %v", err)
			return e.String(http.StatusInternalServerError, "Quote lines collection not found")
		}

		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", getNextLineSortOrder(app, quoteID))

		record.Set("ref_id", product.ID)
		record.Set("product_name", product.Name)
		record.Set("category", string(cfg.Category))
		record.Set("size", cfg.Size)
		record.Set("print_area_cm2", cfg.PrintAreaCm2)
		record.Set("accent_area_cm2", cfg.AccentAreaCm2)
		record.Set("finishing_qty", cfg.FinishingQty)
		record.Set("quantity", cfg.Quantity)

		record.Set("base_cost", breakdown.BaseCost)
		record.Set("print_cost_primary", breakdown.PrintCostPrimary)
		record.Set("print_cost_accent", breakdown.PrintCostAccent)
		record.Set("finishing_cost", breakdown.FinishingCost)
		record.Set("packaging_cost", breakdown.PackagingCost)
		record.Set("total_unit_cost", breakdown.TotalUnitCost)
		record.Set("profit", breakdown.Profit)
		record.Set("unit_price", breakdown.UnitPrice)
		record.Set("order_total", breakdown.OrderTotal)
		record.Set("margin_percent", breakdown.MarginPercent)

		if err := app.Save(record); err != nil {
			log.Printf("line_add: save: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to add line")
		}

		return e.JSON(http.StatusOK, quoteLineView(record))
	}
}

// HandleLineRemove deletes a line from a quote. Removing an id that is not
// present (or was already removed) is a no-op, not an error.
// Route: DELETE /quotes/{id}/lines/{lineId}
func HandleLineRemove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		lineID := e.Request.PathValue("lineId")

		line, err := app.FindRecordById("quote_lines", lineID)
		if err != nil || line.GetString("quote") != quoteID {
			return e.NoContent(http.StatusNoContent)
		}

		if err := app.Delete(line); err != nil {
			log.Printf("line_remove: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to remove line")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
