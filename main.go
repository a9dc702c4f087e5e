package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/collections"
	"cotizador/handlers"
	"cotizador/services"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the built-in catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		pitches := services.NewPitchService(os.Getenv("GEMINI_API_KEY"))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/catalog", handlers.HandleCatalogList(app))
		se.Router.POST("/catalog/import", handlers.HandleCatalogImport(app))

		// ── Quotes ───────────────────────────────────────────────
		se.Router.POST("/quotes/preview", handlers.HandleQuotePreview(app))
		se.Router.POST("/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/quotes/{id}", handlers.HandleQuoteView(app))

		// ── Order lines ──────────────────────────────────────────
		se.Router.POST("/quotes/{id}/lines", handlers.HandleLineAdd(app))
		se.Router.DELETE("/quotes/{id}/lines/{lineId}", handlers.HandleLineRemove(app))

		// ── Document export ──────────────────────────────────────
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))

		// ── Sales pitch ──────────────────────────────────────────
		se.Router.POST("/pitch", handlers.HandlePitch(app, pitches))
		se.Router.POST("/quotes/{id}/pitch", handlers.HandleQuotePitch(app, pitches))

		// ── Pricing settings ─────────────────────────────────────
		se.Router.GET("/settings", handlers.HandleSettingsView(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
