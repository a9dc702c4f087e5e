package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// loadCatalog returns the active catalog ordered by sort_order.
func loadCatalog(app *pocketbase.PocketBase) ([]services.ProductReference, error) {
	records, err := app.FindAllRecords("product_refs")
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].GetInt("sort_order") < records[j].GetInt("sort_order")
	})

	catalog := make([]services.ProductReference, 0, len(records))
	for _, r := range records {
		catalog = append(catalog, services.ProductReference{
			ID:          r.GetString("ref_id"),
			Name:        r.GetString("name"),
			BaseCost:    r.GetFloat("base_cost"),
			Description: r.GetString("description"),
		})
	}
	return catalog, nil
}

// loadRates reads the pricing settings record, falling back to the built-in
// defaults when none exists yet.
func loadRates(app *pocketbase.PocketBase) services.Rates {
	record := findSettingsRecord(app)
	if record == nil {
		return services.DefaultRates()
	}
	return services.Rates{
		CostPerCm2:        record.GetFloat("cost_per_cm2"),
		FinishingUnitCost: record.GetFloat("finishing_unit_cost"),
		PackagingCost:     record.GetFloat("packaging_cost"),
		Profit: map[services.Category]float64{
			services.CategoryNino:   record.GetFloat("profit_nino"),
			services.CategoryAdulto: record.GetFloat("profit_adulto"),
		},
	}
}

// findSettingsRecord returns the pricing settings singleton, or nil when the
// collection is still empty.
func findSettingsRecord(app *pocketbase.PocketBase) *core.Record {
	records, err := app.FindAllRecords("pricing_settings")
	if err != nil || len(records) == 0 {
		return nil
	}
	return records[0]
}

// parseQuoteConfig reads a quote configuration from the submitted form.
// Numeric parsing never fails: unparsable values read as zero, the packaging
// cost defaults to the configured constant when the field is absent, and a
// size that does not belong to the chosen category resets to that category's
// default.
func parseQuoteConfig(e *core.RequestEvent, rates services.Rates) services.QuoteConfig {
	form := func(name string) string {
		return strings.TrimSpace(e.Request.FormValue(name))
	}

	parseFloat := func(raw string) float64 {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		return v
	}

	category := services.NormalizeCategory(form("category"))
	size := form("size")
	if !services.ValidSize(category, size) {
		size = services.DefaultSize(category)
	}

	packaging := rates.PackagingCost
	if raw := form("packaging_cost"); raw != "" {
		packaging = parseFloat(raw)
	}

	quantity := services.CoerceQty(form("quantity"))
	if quantity < 1 {
		quantity = 1
	}

	return services.QuoteConfig{
		Reference:     form("reference"),
		Category:      category,
		Size:          size,
		ClientName:    form("client_name"),
		PrintAreaCm2:  parseFloat(form("print_area_cm2")),
		AccentAreaCm2: parseFloat(form("accent_area_cm2")),
		FinishingQty:  services.CoerceQty(form("finishing_qty")),
		PackagingCost: packaging,
		Quantity:      quantity,
	}
}
