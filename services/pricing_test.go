package services

import (
	"math"
	"testing"
)

func TestComputeBreakdown_FullScenario(t *testing.T) {
	catalog := []ProductReference{
		{ID: "cam-basic", Name: "Camiseta Algodón Premium", BaseCost: 15000},
		{ID: "hoodie-rock", Name: "Hoodie Rockero", BaseCost: 45000},
	}
	cfg := QuoteConfig{
		Reference:     "cam-basic",
		Category:      CategoryNino,
		Size:          "8",
		PrintAreaCm2:  10,
		AccentAreaCm2: 0,
		FinishingQty:  1,
		PackagingCost: 1300,
		Quantity:      2,
	}

	product := ResolveReference(catalog, cfg.Reference)
	got := ComputeBreakdown(cfg, product, DefaultRates())

	if got.BaseCost != 15000 {
		t.Errorf("BaseCost = %v, want 15000", got.BaseCost)
	}
	if got.PrintCostPrimary != 1700 {
		t.Errorf("PrintCostPrimary = %v, want 1700", got.PrintCostPrimary)
	}
	if got.PrintCostAccent != 0 {
		t.Errorf("PrintCostAccent = %v, want 0", got.PrintCostAccent)
	}
	if got.FinishingCost != 1000 {
		t.Errorf("FinishingCost = %v, want 1000", got.FinishingCost)
	}
	if got.PackagingCost != 1300 {
		t.Errorf("PackagingCost = %v, want 1300", got.PackagingCost)
	}
	if got.TotalUnitCost != 19000 {
		t.Errorf("TotalUnitCost = %v, want 19000", got.TotalUnitCost)
	}
	if got.UnitPrice != 49000 {
		t.Errorf("UnitPrice = %v, want 49000", got.UnitPrice)
	}
	if got.OrderTotal != 98000 {
		t.Errorf("OrderTotal = %v, want 98000", got.OrderTotal)
	}
	if math.Abs(got.MarginPercent-61.2244897959) > 0.0001 {
		t.Errorf("MarginPercent = %v, want ~61.2245", got.MarginPercent)
	}
}

func TestComputeBreakdown_CostDecompositionSums(t *testing.T) {
	tests := []struct {
		name string
		cfg  QuoteConfig
		base float64
	}{
		{"no extras", QuoteConfig{Quantity: 1}, 20000},
		{"print only", QuoteConfig{PrintAreaCm2: 25, Quantity: 1}, 15000},
		{"everything", QuoteConfig{PrintAreaCm2: 12.5, AccentAreaCm2: 4, FinishingQty: 3, PackagingCost: 1300, Quantity: 5}, 45000},
		{"zero product", QuoteConfig{PackagingCost: 1300, Quantity: 1}, 0},
	}

	rates := DefaultRates()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(tt.cfg, ProductReference{ID: "x", BaseCost: tt.base}, rates)
			sum := b.BaseCost + b.PrintCostPrimary + b.PrintCostAccent + b.FinishingCost + b.PackagingCost
			if sum != b.TotalUnitCost {
				t.Errorf("component sum = %v, TotalUnitCost = %v", sum, b.TotalUnitCost)
			}
			if b.UnitPrice != math.Round(b.TotalUnitCost+b.Profit) {
				t.Errorf("UnitPrice = %v, want round(%v + %v)", b.UnitPrice, b.TotalUnitCost, b.Profit)
			}
			if b.UnitPrice != math.Trunc(b.UnitPrice) {
				t.Errorf("UnitPrice = %v is not a whole amount", b.UnitPrice)
			}
		})
	}
}

func TestComputeBreakdown_NegativeInputsClampToZero(t *testing.T) {
	cfg := QuoteConfig{
		PrintAreaCm2:  -10,
		AccentAreaCm2: -3,
		FinishingQty:  -2,
		PackagingCost: -1300,
		Quantity:      1,
	}
	b := ComputeBreakdown(cfg, ProductReference{BaseCost: -5000}, DefaultRates())

	if b.BaseCost != 0 || b.PrintCostPrimary != 0 || b.PrintCostAccent != 0 ||
		b.FinishingCost != 0 || b.PackagingCost != 0 {
		t.Errorf("negative inputs not clamped: %+v", b)
	}
	if b.TotalUnitCost != 0 {
		t.Errorf("TotalUnitCost = %v, want 0", b.TotalUnitCost)
	}
	if b.UnitPrice != 30000 {
		t.Errorf("UnitPrice = %v, want profit-only 30000", b.UnitPrice)
	}
}

func TestComputeBreakdown_QuantityFloor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expect   float64
	}{
		{"zero treated as one", 0, 49000},
		{"negative treated as one", -4, 49000},
		{"one", 1, 49000},
		{"three", 3, 147000},
	}

	cfg := QuoteConfig{PrintAreaCm2: 10, FinishingQty: 1, PackagingCost: 1300}
	product := ProductReference{ID: "cam-basic", BaseCost: 15000}
	rates := DefaultRates()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg.Quantity = tt.quantity
			b := ComputeBreakdown(cfg, product, rates)
			if b.OrderTotal != tt.expect {
				t.Errorf("OrderTotal = %v, want %v", b.OrderTotal, tt.expect)
			}
		})
	}
}

func TestComputeBreakdown_OrderTotalGrowsWithQuantity(t *testing.T) {
	cfg := QuoteConfig{PrintAreaCm2: 15, PackagingCost: 1300}
	product := ProductReference{BaseCost: 22000}
	rates := DefaultRates()

	var prev float64
	for qty := 1; qty <= 6; qty++ {
		cfg.Quantity = qty
		b := ComputeBreakdown(cfg, product, rates)
		if b.OrderTotal <= prev {
			t.Fatalf("OrderTotal at qty=%d is %v, not greater than %v", qty, b.OrderTotal, prev)
		}
		prev = b.OrderTotal
	}
}

func TestComputeBreakdown_MarginBounds(t *testing.T) {
	rates := DefaultRates()
	tests := []struct {
		name string
		base float64
	}{
		{"cheap garment", 1000},
		{"mid garment", 25000},
		{"expensive garment", 250000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(QuoteConfig{Quantity: 1}, ProductReference{BaseCost: tt.base}, rates)
			if b.MarginPercent <= 0 || b.MarginPercent >= 100 {
				t.Errorf("MarginPercent = %v, want strictly between 0 and 100", b.MarginPercent)
			}
		})
	}
}

func TestComputeBreakdown_ZeroProfitZeroCost(t *testing.T) {
	rates := Rates{Profit: map[Category]float64{CategoryNino: 0, CategoryAdulto: 0}}
	b := ComputeBreakdown(QuoteConfig{Quantity: 1}, ProductReference{}, rates)
	if b.UnitPrice != 0 {
		t.Errorf("UnitPrice = %v, want 0", b.UnitPrice)
	}
	if b.MarginPercent != 0 {
		t.Errorf("MarginPercent = %v, want 0 when UnitPrice is 0", b.MarginPercent)
	}
	if b.OrderTotal != 0 {
		t.Errorf("OrderTotal = %v, want 0", b.OrderTotal)
	}
}

func TestComputeBreakdown_ProfitByCategory(t *testing.T) {
	rates := DefaultRates()
	rates.Profit[CategoryAdulto] = 40000

	nino := ComputeBreakdown(QuoteConfig{Category: CategoryNino, Quantity: 1}, ProductReference{BaseCost: 10000}, rates)
	adulto := ComputeBreakdown(QuoteConfig{Category: CategoryAdulto, Quantity: 1}, ProductReference{BaseCost: 10000}, rates)

	if nino.UnitPrice != 40000 {
		t.Errorf("child UnitPrice = %v, want 40000", nino.UnitPrice)
	}
	if adulto.UnitPrice != 50000 {
		t.Errorf("adult UnitPrice = %v, want 50000", adulto.UnitPrice)
	}
}

func TestResolveReference(t *testing.T) {
	catalog := []ProductReference{
		{ID: "cam-basic", Name: "Camiseta", BaseCost: 15000},
		{ID: "hoodie-rock", Name: "Hoodie", BaseCost: 45000},
	}

	tests := []struct {
		name     string
		id       string
		expectID string
	}{
		{"known first", "cam-basic", "cam-basic"},
		{"known second", "hoodie-rock", "hoodie-rock"},
		{"unknown falls back to first", "gone-ref", "cam-basic"},
		{"empty falls back to first", "", "cam-basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveReference(catalog, tt.id)
			if got.ID != tt.expectID {
				t.Errorf("ResolveReference(%q).ID = %q, want %q", tt.id, got.ID, tt.expectID)
			}
		})
	}

	t.Run("empty catalog", func(t *testing.T) {
		got := ResolveReference(nil, "anything")
		if got.ID != "" || got.BaseCost != 0 {
			t.Errorf("ResolveReference on empty catalog = %+v, want zero value", got)
		}
	})
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input  string
		expect Category
	}{
		{"nino", CategoryNino},
		{"Niño", CategoryNino},
		{"adulto", CategoryAdulto},
		{"ADULTO", CategoryAdulto},
		{"Adultos", CategoryAdulto},
		{"adult", CategoryAdulto},
		{"", CategoryNino},
		{"garbage", CategoryNino},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeCategory(tt.input); got != tt.expect {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestSizeCharts(t *testing.T) {
	if got := DefaultSize(CategoryNino); got != "8" {
		t.Errorf("DefaultSize(nino) = %q, want \"8\"", got)
	}
	if got := DefaultSize(CategoryAdulto); got != "S" {
		t.Errorf("DefaultSize(adulto) = %q, want \"S\"", got)
	}

	if !ValidSize(CategoryNino, "12") {
		t.Error("ValidSize(nino, 12) = false, want true")
	}
	if ValidSize(CategoryNino, "M") {
		t.Error("ValidSize(nino, M) = true, want false")
	}
	if !ValidSize(CategoryAdulto, "XL") {
		t.Error("ValidSize(adulto, XL) = false, want true")
	}
	if ValidSize(CategoryAdulto, "8") {
		t.Error("ValidSize(adulto, 8) = true, want false")
	}
}

func TestProfitFor_MissingCategoryFallsBack(t *testing.T) {
	r := Rates{Profit: map[Category]float64{CategoryNino: 25000}}
	if got := r.ProfitFor(CategoryAdulto); got != 25000 {
		t.Errorf("ProfitFor(adulto) = %v, want the child fallback 25000", got)
	}
}
