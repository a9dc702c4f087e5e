// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestProductRef creates a catalog entry and returns it.
func CreateTestProductRef(t *testing.T, app *pocketbase.PocketBase, refID, name string, baseCost float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("product_refs")
	if err != nil {
		t.Fatalf("failed to find product_refs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("ref_id", refID)
	record.Set("name", name)
	record.Set("base_cost", baseCost)
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product ref: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, clientName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("client_name", clientName)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteLine creates a frozen quote line with the given snapshot
// values and returns it.
func CreateTestQuoteLine(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, productName string, quantity int, unitPrice, orderTotal float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_lines")
	if err != nil {
		t.Fatalf("failed to find quote_lines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("ref_id", "cam-basic")
	record.Set("product_name", productName)
	record.Set("category", "nino")
	record.Set("size", "8")
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)
	record.Set("order_total", orderTotal)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote line: %v", err)
	}

	return record
}

// CreateTestPricingSettings creates the pricing settings singleton with the
// given constants and returns it.
func CreateTestPricingSettings(t *testing.T, app *pocketbase.PocketBase, costPerCm2, finishingUnitCost, packagingCost, profitNino, profitAdulto float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pricing_settings")
	if err != nil {
		t.Fatalf("failed to find pricing_settings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("cost_per_cm2", costPerCm2)
	record.Set("finishing_unit_cost", finishingUnitCost)
	record.Set("packaging_cost", packagingCost)
	record.Set("profit_nino", profitNino)
	record.Set("profit_adulto", profitAdulto)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pricing settings: %v", err)
	}

	return record
}
