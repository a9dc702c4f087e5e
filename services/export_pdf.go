package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF renders a quote document from the export data using
// maroto/v2 and returns the raw PDF bytes.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, line := range data.Lines {
		addQuoteTableRow(m, line)
	}
	addQuoteSummary(m, data)
	if data.Pitch != "" {
		addQuotePitch(m, data.Pitch)
	}
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteHeader adds the brand title, client name, and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Cotización — Furia Rock Kids", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	client := data.ClientName
	if client == "" {
		client = "Cliente"
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Cliente: %s", client), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Fecha: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 15, Green: 23, Blue: 42}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Producto", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Talla", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Cant.", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Precio Unidad", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addQuoteTableRow(m core.Maroto, line QuoteExportLine) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	talla := line.Size
	if line.Category != "" {
		talla = fmt.Sprintf("%s (%s)", line.Size, categoryLabel(line.Category))
	}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.Index), baseText)),
			col.New(4).Add(text.New(line.Product, leftText)),
			col.New(2).Add(text.New(talla, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", line.Quantity), baseText)),
			col.New(2).Add(text.New(FormatCOP(line.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatCOP(line.OrderTotal), rightText)),
		),
	)
}

func addQuoteSummary(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("TOTAL COTIZACIÓN (COP)", labelStyle)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatCOP(data.GrandTotal), labelStyle)).WithStyle(summaryCell),
		),
	)

	if data.Notes != "" {
		m.AddRows(row.New(4))
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("Notas: "+data.Notes, props.Text{
						Size:  8,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
}

func addQuotePitch(m core.Maroto, pitch string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("%q", pitch), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 60, Green: 60, Blue: 60},
				}),
			),
		),
	)
}

func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generado el %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

// categoryLabel renders a category value for documents.
func categoryLabel(category string) string {
	switch Category(category) {
	case CategoryAdulto:
		return "Adulto"
	default:
		return "Niño"
	}
}
