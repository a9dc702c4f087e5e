package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the product_refs, quotes,
// quote_lines and pricing_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "product_refs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "ref_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "base_cost", Required: false})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_lines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})

		// Configuration snapshot.
		c.Fields.Add(&core.TextField{Name: "ref_id", Required: false})
		c.Fields.Add(&core.TextField{Name: "product_name", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    []string{"nino", "adulto"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "size", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_area_cm2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "accent_area_cm2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "finishing_qty", Required: false})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: false})

		// Breakdown snapshot, frozen at add time.
		c.Fields.Add(&core.NumberField{Name: "base_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_cost_primary", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_cost_accent", Required: false})
		c.Fields.Add(&core.NumberField{Name: "finishing_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "packaging_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_unit_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "order_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "margin_percent", Required: false})
	})

	// Zero is a legitimate rate (free packaging, no profit), and a required
	// number field rejects 0 as blank, so these stay optional; the handlers
	// enforce non-negativity.
	ensureCollection(app, "pricing_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "cost_per_cm2", Required: false})
		c.Fields.Add(&core.NumberField{Name: "finishing_unit_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "packaging_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_nino", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_adulto", Required: false})
		c.Fields.Add(&core.TextField{Name: "active_reference", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
