package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

type productDef struct {
	refID       string
	name        string
	baseCost    float64
	description string
}

// Built-in catalog, used until the operator imports a price list.
var initialCatalog = []productDef{
	{
		refID:       "cam-basic",
		name:        "Camiseta Algodón Premium",
		baseCost:    15000,
		description: "Camiseta 100% algodón.",
	},
	{
		refID:       "hoodie-rock",
		name:        "Hoodie Rockero",
		baseCost:    45000,
		description: "Saco con capota.",
	},
}

// Seed populates the built-in catalog and the default pricing settings when
// their collections are empty. It is safe to run on every startup.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedCatalog(app); err != nil {
		return err
	}
	return seedPricingSettings(app)
}

func seedCatalog(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("product_refs")
	if err != nil {
		return fmt.Errorf("product_refs collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col.Name)
	if err == nil && len(existing) > 0 {
		return nil
	}

	for i, def := range initialCatalog {
		record := core.NewRecord(col)
		record.Set("ref_id", def.refID)
		record.Set("name", def.name)
		record.Set("base_cost", def.baseCost)
		record.Set("description", def.description)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed product %q: %w", def.refID, err)
		}
	}
	return nil
}

func seedPricingSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("pricing_settings")
	if err != nil {
		return fmt.Errorf("pricing_settings collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col.Name)
	if err == nil && len(existing) > 0 {
		return nil
	}

	rates := services.DefaultRates()
	record := core.NewRecord(col)
	record.Set("cost_per_cm2", rates.CostPerCm2)
	record.Set("finishing_unit_cost", rates.FinishingUnitCost)
	record.Set("packaging_cost", rates.PackagingCost)
	record.Set("profit_nino", rates.ProfitFor(services.CategoryNino))
	record.Set("profit_adulto", rates.ProfitFor(services.CategoryAdulto))
	record.Set("active_reference", initialCatalog[0].refID)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed pricing settings: %w", err)
	}
	return nil
}
