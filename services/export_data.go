package services

// QuoteExportLine is a single order line as it appears in the exported
// document, with the frozen snapshot values of its breakdown.
type QuoteExportLine struct {
	Index      int
	Product    string
	Category   string
	Size       string
	Quantity   int
	UnitCost   float64
	Profit     float64
	UnitPrice  float64
	OrderTotal float64
}

// QuoteExportData holds everything the document exporters need.
type QuoteExportData struct {
	ClientName  string
	Notes       string
	CreatedDate string
	Lines       []QuoteExportLine
	GrandTotal  float64
	Pitch       string
}
