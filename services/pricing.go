// Package services provides the pricing, import, and export logic for the
// quote calculator.
package services

import "math"

// Category is the buyer category a garment is quoted for.
type Category string

const (
	CategoryNino   Category = "nino"
	CategoryAdulto Category = "adulto"
)

// Size charts per category. Child sizes are numeric, adult sizes are lettered.
var (
	SizesNino   = []string{"2", "4", "6", "8", "10", "12", "14", "16"}
	SizesAdulto = []string{"S", "M", "L", "XL", "XXL"}
)

// SizesFor returns the size chart for a category.
func SizesFor(c Category) []string {
	if c == CategoryAdulto {
		return SizesAdulto
	}
	return SizesNino
}

// DefaultSize returns the size a configuration falls back to when its
// category changes or its size does not belong to the category's chart.
func DefaultSize(c Category) string {
	if c == CategoryAdulto {
		return SizesAdulto[0]
	}
	return SizesNino[3]
}

// ValidSize reports whether size belongs to the category's size chart.
func ValidSize(c Category, size string) bool {
	for _, s := range SizesFor(c) {
		if s == size {
			return true
		}
	}
	return false
}

// NormalizeCategory maps free-form category input to one of the two known
// categories. Anything unrecognized falls back to the child category, which
// is the form's default.
func NormalizeCategory(s string) Category {
	switch normalizeLabel(s) {
	case "adulto", "adult", "adultos":
		return CategoryAdulto
	default:
		return CategoryNino
	}
}

// ProductReference is one catalog entry: a garment that can be quoted.
type ProductReference struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseCost    float64 `json:"base_cost"`
	Description string  `json:"description,omitempty"`
}

// ResolveReference looks up a product by id in the catalog. An unknown id
// falls back to the catalog's first entry so a stale configuration that
// outlives a catalog replacement still prices against something real.
func ResolveReference(catalog []ProductReference, id string) ProductReference {
	for _, p := range catalog {
		if p.ID == id {
			return p
		}
	}
	if len(catalog) > 0 {
		return catalog[0]
	}
	return ProductReference{}
}

// Rates holds the named pricing constants. Profit is keyed by category; a
// fixed profit is simply both entries set to the same value.
type Rates struct {
	CostPerCm2        float64
	FinishingUnitCost float64
	PackagingCost     float64
	Profit            map[Category]float64
}

// DefaultRates returns the built-in pricing constants, in COP.
func DefaultRates() Rates {
	return Rates{
		CostPerCm2:        170,
		FinishingUnitCost: 1000,
		PackagingCost:     1300,
		Profit: map[Category]float64{
			CategoryNino:   30000,
			CategoryAdulto: 30000,
		},
	}
}

// ProfitFor returns the profit for a category, falling back to the child
// entry when the category has none configured.
func (r Rates) ProfitFor(c Category) float64 {
	if p, ok := r.Profit[c]; ok {
		return p
	}
	return r.Profit[CategoryNino]
}

// QuoteConfig is one buyer-facing configuration before pricing is applied.
type QuoteConfig struct {
	Reference     string   `json:"reference"`
	Category      Category `json:"category"`
	Size          string   `json:"size"`
	ClientName    string   `json:"client_name,omitempty"`
	PrintAreaCm2  float64  `json:"print_area_cm2"`
	AccentAreaCm2 float64  `json:"accent_area_cm2"`
	FinishingQty  int      `json:"finishing_qty"`
	PackagingCost float64  `json:"packaging_cost"`
	Quantity      int      `json:"quantity"`
}

// Breakdown is the computed cost/price decomposition for a configuration.
// Amounts are COP; UnitPrice and OrderTotal are whole pesos.
type Breakdown struct {
	BaseCost         float64 `json:"base_cost"`
	PrintCostPrimary float64 `json:"print_cost_primary"`
	PrintCostAccent  float64 `json:"print_cost_accent"`
	FinishingCost    float64 `json:"finishing_cost"`
	PackagingCost    float64 `json:"packaging_cost"`
	TotalUnitCost    float64 `json:"total_unit_cost"`
	Profit           float64 `json:"profit"`
	UnitPrice        float64 `json:"unit_price"`
	OrderTotal       float64 `json:"order_total"`
	MarginPercent    float64 `json:"margin_percent"`
}

// ComputeBreakdown prices one configuration against a resolved product and a
// set of rates. It is a total function: negative numeric inputs are read as
// zero and a zero-valued product just yields a profit-only price. Rounding
// happens exactly once, half-up, when the unit price is derived.
func ComputeBreakdown(cfg QuoteConfig, product ProductReference, rates Rates) Breakdown {
	baseCost := nonNegative(product.BaseCost)
	printPrimary := nonNegative(cfg.PrintAreaCm2) * rates.CostPerCm2
	printAccent := nonNegative(cfg.AccentAreaCm2) * rates.CostPerCm2
	finishing := nonNegative(float64(cfg.FinishingQty)) * rates.FinishingUnitCost
	packaging := nonNegative(cfg.PackagingCost)

	totalUnitCost := baseCost + printPrimary + printAccent + finishing + packaging
	profit := rates.ProfitFor(cfg.Category)

	// math.Round is round-half-away-from-zero, which equals round-half-up
	// for the non-negative totals produced above.
	unitPrice := math.Round(totalUnitCost + profit)

	qty := cfg.Quantity
	if qty < 1 {
		qty = 1
	}
	orderTotal := unitPrice * float64(qty)

	var margin float64
	if unitPrice != 0 {
		margin = profit / unitPrice * 100
	}

	return Breakdown{
		BaseCost:         baseCost,
		PrintCostPrimary: printPrimary,
		PrintCostAccent:  printAccent,
		FinishingCost:    finishing,
		PackagingCost:    packaging,
		TotalUnitCost:    totalUnitCost,
		Profit:           profit,
		UnitPrice:        unitPrice,
		OrderTotal:       orderTotal,
		MarginPercent:    margin,
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
