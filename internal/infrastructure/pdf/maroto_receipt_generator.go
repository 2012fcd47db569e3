// Package pdf implementa la generación del ticket de caisse (reçu de vente).
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Nom boutique + RCCM/IDNAT/NIF        │
//	│  N° ticket + fecha + caissier                 │
//	│  ─────────────────────────────────────────    │
//	│  TABLA: Qté | Produit | P.U. | Sous-total     │
//	│  ─────────────────────────────────────────    │
//	│  TOTALES: HT / TVA / TOTAL (+ equivalente FC) │
//	│  FOOTER: código de barras + "Merci!"          │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appledger "github.com/kmutombo/redpos-api/internal/application/ledger"
	"github.com/kmutombo/redpos-api/internal/domain/entity"
	"github.com/kmutombo/redpos-api/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa ledger.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el ticket y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *entity.Sale,
	shop *entity.Shop,
	cashierName string,
	lines []appledger.ReceiptLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reçu de vente", true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, shop, cashierName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale, shop))

	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: boutique + registros legales (izq), N° ticket + fecha + caissier (der).
func headerRow(sale *entity.Sale, shop *entity.Shop, cashierName string) core.Row {
	numTicket := "N° " + shortID(sale.ID)
	fecha := sale.SaleDate.Format("02/01/2006 15:04")

	legal := ""
	if shop.RCCM != "" {
		legal = "RCCM: " + shop.RCCM
	}
	if shop.NIF != "" {
		if legal != "" {
			legal += "  |  "
		}
		legal += "NIF: " + shop.NIF
	}

	return row.New(22).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(shop.Address, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(legal, props.Text{
				Size: 7, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REÇU DE VENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numTicket, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Caissier: "+cashierName, props.Text{
				Size: 7, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Produit", 6, align.Left),
		h("P.U.", 2, align.Right),
		h("Sous-total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del ticket.
func tableLineRows(lines []appledger.ReceiptLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				currency.FormatFC(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				currency.FormatFC(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque HT / TVA / TOTAL alineado a la derecha.
func totalsRow(sale *entity.Sale, shop *entity.Shop) core.Row {
	ht, tva := appledger.ReceiptTotals(sale.Total, shop.VatPercentage)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total HT:"),
			label(fmt.Sprintf("TVA (%s%%):", shop.VatPercentage.StringFixed(0))),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(currency.FormatFC(ht)),
			value(currency.FormatFC(tva)),
			grandValue(currency.FormatFC(sale.Total)),
		),
	)
}

// footerRows: código de barras del ticket + mención de anulación + despedida.
func footerRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(14).Add(
			col.New(3),
			col.New(6).Add(code.NewBar(shortID(sale.ID), props.Barcode{
				Percent: 80,
				Center:  true,
			})),
			col.New(3),
		),
	}

	if sale.IsCancelled {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("*** VENTE ANNULÉE ***", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)))
	}

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Merci de votre visite !", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorGray, Top: 2,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
