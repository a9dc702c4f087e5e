package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// HandlePitch prices the submitted configuration and asks the pitch service
// for a short persuasive sales text. The pitch service itself never fails,
// so this always returns a usable pitch.
// Route: POST /pitch
func HandlePitch(app *pocketbase.PocketBase, pitches *services.PitchService) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("pitch: catalog: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load catalog")
		}

		rates := loadRates(app)
		cfg := parseQuoteConfig(e, rates)
		product := services.ResolveReference(catalog, cfg.Reference)
		breakdown := services.ComputeBreakdown(cfg, product, rates)

		pitch := pitches.SalesPitch(e.Request.Context(), cfg, breakdown, product)
		return e.JSON(http.StatusOK, map[string]any{"pitch": pitch})
	}
}

// HandleQuotePitch generates a pitch for a saved quote, using the frozen
// snapshot of its most recent line.
// Route: POST /quotes/{id}/pitch
func HandleQuotePitch(app *pocketbase.PocketBase, pitches *services.PitchService) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("quotes", quoteID); err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		lines, err := findQuoteLines(app, quoteID)
		if err != nil || len(lines) == 0 {
			return e.String(http.StatusBadRequest, "Quote has no lines to pitch")
		}
		line := lines[len(lines)-1]

		cfg := services.QuoteConfig{
			Reference:    line.GetString("ref_id"),
			Category:     services.Category(line.GetString("category")),
			Size:         line.GetString("size"),
			PrintAreaCm2: line.GetFloat("print_area_cm2"),
			Quantity:     line.GetInt("quantity"),
		}
		breakdown := services.Breakdown{
			TotalUnitCost: line.GetFloat("total_unit_cost"),
			Profit:        line.GetFloat("profit"),
			UnitPrice:     line.GetFloat("unit_price"),
			OrderTotal:    line.GetFloat("order_total"),
		}
		product := services.ProductReference{
			ID:   line.GetString("ref_id"),
			Name: line.GetString("product_name"),
		}

		pitch := pitches.SalesPitch(e.Request.Context(), cfg, breakdown, product)
		return e.JSON(http.StatusOK, map[string]any{"pitch": pitch})
	}
}
