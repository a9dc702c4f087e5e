package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cotizador/services"
)

// HandleCatalogList returns the active catalog.
// Route: GET /catalog
func HandleCatalogList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		catalog, err := loadCatalog(app)
		if err != nil {
			log.Printf("catalog_list: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load catalog")
		}

		activeReference := ""
		if settings := findSettingsRecord(app); settings != nil {
			activeReference = settings.GetString("active_reference")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"references":       catalog,
			"active_reference": activeReference,
		})
	}
}

// HandleCatalogImport receives an uploaded price list (.xlsx or .csv),
// parses it, and wholesale-replaces the active catalog inside a transaction.
// If the file yields no usable products the previous catalog stays active
// untouched.
// Route: POST /catalog/import
func HandleCatalogImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.String(http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		headers, rows, err := services.ParsePriceList(file, header.Filename)
		if err != nil {
			log.Printf("catalog_import: parse: %v", err)
			return e.String(http.StatusBadRequest, importErrorMessage(err))
		}

		refs, err := services.BuildProductReferences(headers, rows)
		if err != nil {
			log.Printf("catalog_import: %v", err)
			return e.String(http.StatusBadRequest, importErrorMessage(err))
		}

		if err := replaceCatalog(app, refs); err != nil {
			log.Printf("catalog_import: replace: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to replace catalog")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"imported":         len(refs),
			"active_reference": refs[0].ID,
		})
	}
}

// replaceCatalog swaps the product_refs collection for the imported list in
// one transaction, so readers never observe a partial catalog. The active
// configuration's selected reference resets to the first imported entry.
func replaceCatalog(app *pocketbase.PocketBase, refs []services.ProductReference) error {
	col, err := app.FindCollectionByNameOrId("product_refs")
	if err != nil {
		return err
	}

	err = app.RunInTransaction(func(txApp core.App) error {
		existing, err := txApp.FindAllRecords(col.Name)
		if err != nil {
			return err
		}
		for _, r := range existing {
			if err := txApp.Delete(r); err != nil {
				return err
			}
		}

		for i, ref := range refs {
			record := core.NewRecord(col)
			record.Set("ref_id", ref.ID)
			record.Set("name", ref.Name)
			record.Set("base_cost", ref.BaseCost)
			record.Set("description", ref.Description)
			record.Set("sort_order", i+1)
			if err := txApp.Save(record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if settings := findSettingsRecord(app); settings != nil {
		settings.Set("active_reference", refs[0].ID)
		if err := app.Save(settings); err != nil {
			log.Printf("catalog_import: reset active reference: %v", err)
		}
	}
	return nil
}

// importErrorMessage maps importer failures to the single operator-facing
// notice; anything unexpected gets a generic line.
func importErrorMessage(err error) string {
	var importErr *services.ImportError
	if errors.As(err, &importErr) {
		return "El archivo no contiene referencias utilizables. Verifica las columnas (Referencia y Precio)."
	}
	return "Error al procesar el archivo. Verifica las columnas (Referencia y Precio)."
}
