package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleSettingsView returns the pricing constants currently in effect.
// Route: GET /settings
func HandleSettingsView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rates := loadRates(app)
		return e.JSON(http.StatusOK, map[string]any{
			"cost_per_cm2":        rates.CostPerCm2,
			"finishing_unit_cost": rates.FinishingUnitCost,
			"packaging_cost":      rates.PackagingCost,
			"profit_nino":         rates.Profit["nino"],
			"profit_adulto":       rates.Profit["adulto"],
		})
	}
}

// HandleSettingsSave updates the pricing constants. Only submitted fields
// change; each must be a non-negative number. Lines already added to quotes
// keep their frozen breakdowns.
// Route: POST /settings
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		record := findSettingsRecord(app)
		if record == nil {
			col, err := app.FindCollectionByNameOrId("pricing_settings")
			if err != nil {
				log.Printf("settings_save: %v", err)
				return e.String(http.StatusInternalServerError, "Settings collection not found")
			}
			record = core.NewRecord(col)
			rates := loadRates(app)
			record.Set("cost_per_cm2", rates.CostPerCm2)
			record.Set("finishing_unit_cost", rates.FinishingUnitCost)
			record.Set("packaging_cost", rates.PackagingCost)
			record.Set("profit_nino", rates.Profit["nino"])
			record.Set("profit_adulto", rates.Profit["adulto"])
		}

		fields := []string{
			"cost_per_cm2",
			"finishing_unit_cost",
			"packaging_cost",
			"profit_nino",
			"profit_adulto",
		}
		for _, field := range fields {
			raw := strings.TrimSpace(e.Request.FormValue(field))
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 {
				return e.String(http.StatusBadRequest, field+" must be a non-negative number")
			}
			record.Set(field, v)
		}

		if err := app.Save(record); err != nil {
			log.Printf("settings_save: save: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save settings")
		}

		return HandleSettingsView(app)(e)
	}
}
