package budget

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/colors"
	"github.com/lendaria/calculadoria/internal/money"
)

// palette carries the document theme converted to maroto colors.
type palette struct {
	primary       *props.Color
	text          *props.Color
	textSecondary *props.Color
	surface       *props.Color
}

func newPalette(theme catalog.ColorTheme) palette {
	return palette{
		primary:       toColor(theme.Primary, &props.Color{Red: 190, Green: 180, Blue: 132}),
		text:          toColor(theme.Text, &props.Color{Red: 26, Green: 32, Blue: 44}),
		textSecondary: toColor(theme.TextSecondary, &props.Color{Red: 45, Green: 55, Blue: 72}),
		surface:       toColor(theme.Surface, &props.Color{Red: 248, Green: 250, Blue: 252}),
	}
}

// toColor converts a hex theme color, keeping the fallback for malformed
// values so a broken theme never aborts the export.
func toColor(hex string, fallback *props.Color) *props.Color {
	rgb, ok := colors.ParseHex(hex)
	if !ok {
		return fallback
	}
	return &props.Color{Red: rgb.R, Green: rgb.G, Blue: rgb.B}
}

// GeneratePDF renders the proposal as a single-page A4 portrait PDF using
// maroto/v2 and returns the raw bytes.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).
		WithTopMargin(12).
		WithRightMargin(14).
		Build()

	m := maroto.New(cfg)
	pal := newPalette(doc.Config.Theme)

	addHeader(m, doc, pal)
	addServiceSection(m, doc, pal)
	addItemsSection(m, doc, pal)
	addTotalsSection(m, doc, pal)
	addFooter(m, doc, pal)

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate proposal pdf: %w", err)
	}
	return rendered.GetBytes(), nil
}

func addHeader(m core.Maroto, doc Document, pal palette) {
	titleCols := 12
	if logo, ext, ok := logoImage(doc); ok {
		titleCols = 9
		m.AddRows(
			row.New(18).Add(
				col.New(9).Add(
					text.New("Orçamento "+doc.AgencyLabel(), props.Text{
						Size:  18,
						Style: fontstyle.Bold,
						Align: align.Left,
						Color: pal.primary,
					}),
				),
				image.NewFromBytesCol(3, logo, ext, props.Rect{Center: true, Percent: 90}),
			),
		)
	} else {
		m.AddRows(
			row.New(14).Add(
				col.New(titleCols).Add(
					text.New("Orçamento "+doc.AgencyLabel(), props.Text{
						Size:  18,
						Style: fontstyle.Bold,
						Align: align.Left,
						Color: pal.primary,
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Emitido em: %s  |  Válido até: %s",
						FormatDate(doc.IssuedAt), FormatDate(doc.ValidUntil)),
					props.Text{Size: 9, Align: align.Left, Color: pal.textSecondary},
				),
			),
		),
		row.New(5),
	)
}

// logoImage returns the embedded logo bytes when the upload is one of the
// raster formats maroto can place.
func logoImage(doc Document) ([]byte, extension.Type, bool) {
	if len(doc.Personal.Logo) == 0 {
		return nil, "", false
	}
	switch doc.Personal.LogoMIME {
	case "image/png":
		return doc.Personal.Logo, extension.Png, true
	case "image/jpeg", "image/jpg":
		return doc.Personal.Logo, extension.Jpg, true
	}
	return nil, "", false
}

func addServiceSection(m core.Maroto, doc Document, pal palette) {
	surfaceCell := &props.Cell{BackgroundColor: pal.surface}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New(doc.Config.Service.Label(), props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: pal.text,
				}),
			).WithStyle(surfaceCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("Quantidade: %d", doc.Config.Quantity), props.Text{
					Size:  9,
					Align: align.Right,
					Color: pal.textSecondary,
				}),
			).WithStyle(surfaceCell),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(doc.Config.Service.Description(), props.Text{
					Size:  8,
					Align: align.Left,
					Color: pal.textSecondary,
				}),
			).WithStyle(surfaceCell),
		),
		row.New(4),
	)
}

func addItemsSection(m core.Maroto, doc Document, pal palette) {
	addItemGroup(m, "Investimento único", oneTimeItems(doc.Items), pal)
	if doc.Config.Recurring {
		addItemGroup(m, "Mensalidade", recurringItems(doc.Items), pal)
	}
}

func addItemGroup(m core.Maroto, title string, items []catalog.IncludedItem, pal palette) {
	if len(items) == 0 {
		return
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: pal.primary,
				}),
			),
		),
	)

	for _, item := range items {
		price := "Bônus"
		if money.Displayable(item.Price) {
			price = money.FormatBRL(item.Price)
		}
		m.AddRows(
			row.New(5).Add(
				col.New(9).Add(
					text.New(item.Label, props.Text{Size: 8, Align: align.Left, Color: pal.text}),
				),
				col.New(3).Add(
					text.New(price, props.Text{Size: 8, Align: align.Right, Color: pal.text}),
				),
			),
		)
	}

	m.AddRows(row.New(3))
}

func oneTimeItems(items []catalog.IncludedItem) []catalog.IncludedItem {
	var out []catalog.IncludedItem
	for _, item := range items {
		if !item.IsRecurring {
			out = append(out, item)
		}
	}
	return out
}

func recurringItems(items []catalog.IncludedItem) []catalog.IncludedItem {
	var out []catalog.IncludedItem
	for _, item := range items {
		if item.IsRecurring {
			out = append(out, item)
		}
	}
	return out
}

func addTotalsSection(m core.Maroto, doc Document, pal palette) {
	surfaceCell := &props.Cell{BackgroundColor: pal.surface}
	label := props.Text{Size: 9, Align: align.Left, Color: pal.textSecondary}
	value := props.Text{Size: 9, Align: align.Right, Color: pal.text}

	addTotalRow := func(name, amount string) {
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(text.New(name, label)).WithStyle(surfaceCell),
				col.New(4).Add(text.New(amount, value)).WithStyle(surfaceCell),
			),
		)
	}

	m.AddRows(row.New(4))

	addTotalRow("Valor base", money.FormatBRL(doc.Pricing.BaseTotal))
	if money.Displayable(doc.Pricing.ItemsTotal) {
		addTotalRow("Itens adicionais", money.FormatBRL(doc.Pricing.ItemsTotal))
	}
	if money.Displayable(doc.Pricing.DiscountAmount) {
		addTotalRow("Desconto", "-"+money.FormatBRL(doc.Pricing.DiscountAmount))
	}
	if money.Displayable(doc.Pricing.InstallmentValue) {
		addTotalRow(
			fmt.Sprintf("Parcelamento (%dx)", doc.Config.Installments),
			fmt.Sprintf("%dx de %s", doc.Config.Installments, money.FormatBRL(doc.Pricing.InstallmentValue)),
		)
	}
	addTotalRow("Total do projeto", money.FormatBRL(doc.Pricing.ProjectTotal))
	if money.Displayable(doc.Pricing.RecurringTotal) {
		addTotalRow("Mensalidade", money.FormatBRL(doc.Pricing.RecurringTotal)+"/mês")
	}

	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(
				text.New("Valor total", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: pal.primary,
				}),
			),
			col.New(4).Add(
				text.New(money.FormatBRL(doc.Pricing.TotalValue), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: pal.primary,
				}),
			),
		),
	)
}

func addFooter(m core.Maroto, doc Document, pal palette) {
	m.AddRows(
		row.New(8),
		row.New(5).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Este orçamento tem validade de %d dias a partir da data de emissão.", ValidityDays),
					props.Text{Size: 8, Align: align.Center, Color: pal.textSecondary},
				),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Pagamento: %s  |  Contrato: %s",
						doc.Config.PaymentMethod.Label(), doc.Config.ContractDuration.Label()),
					props.Text{Size: 8, Align: align.Center, Color: pal.textSecondary},
				),
			),
		),
	)
}
