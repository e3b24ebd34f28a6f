package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/somvi/backend/internal/domain/rfq"
)

// quoteColumnsShown is the number of supplier price columns printed on
// the quotation table. Columns beyond these still count into the row
// total.
const quoteColumnsShown = 5

// CompanyInfo is the letterhead block printed on quotation documents.
type CompanyInfo struct {
	Name     string
	WhatsApp string
	Currency string
}

// QuotationRow is one priced line on the quotation document.
type QuotationRow struct {
	Index        int
	MaterialName string
	SomaliName   string
	Quantity     decimal.Decimal
	Unit         string
	// ColumnTotals holds the per-supplier-column line totals for the
	// first quoteColumnsShown slots; unpriced slots are zero.
	ColumnTotals []decimal.Decimal
	RowTotal     decimal.Decimal
}

// QuotationData is everything the quotation PDF needs, assembled from a
// quoted RFQ before rendering.
type QuotationData struct {
	Company     CompanyInfo
	RFQNumber   string
	ClientName  string
	ProjectName string
	Status      string
	IssuedAt    time.Time
	Rows        []QuotationRow
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Taxes       decimal.Decimal
	GrandTotal  decimal.Decimal
}

// NewQuotationData flattens an RFQ into the rows and totals the PDF
// renders. Row totals always sum every quote column, including any
// beyond the printed five.
func NewQuotationData(r *rfq.RFQ, company CompanyInfo) *QuotationData {
	data := &QuotationData{
		Company:     company,
		RFQNumber:   r.RFQNumber,
		ClientName:  r.ClientName,
		ProjectName: r.ProjectName,
		Status:      string(r.Status),
		IssuedAt:    time.Now(),
		Rows:        make([]QuotationRow, 0, len(r.Items)),
		Subtotal:    r.Subtotal,
		DeliveryFee: r.DeliveryFee,
		Taxes:       r.Taxes,
		GrandTotal:  r.GrandTotal,
	}

	for i := range r.Items {
		item := &r.Items[i]

		columnTotals := make([]decimal.Decimal, quoteColumnsShown)
		for _, q := range item.Quotes {
			if q.Slot >= 1 && q.Slot <= quoteColumnsShown {
				columnTotals[q.Slot-1] = rfq.LineTotal(*item, q)
			}
		}

		data.Rows = append(data.Rows, QuotationRow{
			Index:        i + 1,
			MaterialName: item.MaterialName,
			SomaliName:   item.SomaliName,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			ColumnTotals: columnTotals,
			RowTotal:     rfq.ItemSubtotal(*item),
		})
	}

	return data
}

// GenerateQuotationPDF renders a quotation document for a priced RFQ
// using maroto/v2 and returns the raw PDF bytes.
func GenerateQuotationPDF(data *QuotationData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationClientBlock(m, data)
	addQuotationItemsTable(m, data)
	addQuotationTotals(m, data)
	addQuotationFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the company letterhead and the QUOTATION
// title with the RFQ number.
func addQuotationHeader(m core.Maroto, data *QuotationData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.Company.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("WhatsApp: %s", data.Company.WhatsApp), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("RFQ #: %s", data.RFQNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationClientBlock adds client and project details on the left
// and issue metadata on the right.
func addQuotationClientBlock(m core.Maroto, data *QuotationData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightLabelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("PREPARED FOR", labelStyle)),
			col.New(6).Add(text.New("DETAILS", rightLabelStyle)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(data.ClientName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(3).Add(text.New("Date:", rightLabelStyle)),
			col.New(3).Add(text.New(data.IssuedAt.Format("2006-01-02"), rightValueStyle)),
		),
	)

	if data.ProjectName != "" {
		m.AddRows(
			row.New(7).Add(
				col.New(6).Add(text.New(data.ProjectName, props.Text{
					Size:  8,
					Align: align.Left,
				})),
				col.New(3).Add(text.New("Status:", rightLabelStyle)),
				col.New(3).Add(text.New(data.Status, rightValueStyle)),
			),
		)
	}

	m.AddRows(row.New(3))
}

// addQuotationItemsTable adds the priced line items with one column per
// supplier quote slot.
func addQuotationItemsTable(m core.Maroto, data *QuotationData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	headerCols := []core.Col{
		col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
		col.New(3).Add(text.New("Material", headerTextLeft)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
		col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
	}
	for slot := 1; slot <= quoteColumnsShown; slot++ {
		headerCols = append(headerCols,
			col.New(1).Add(text.New(fmt.Sprintf("Supplier %d", slot), headerText)).WithStyle(&headerCell))
	}
	headerCols = append(headerCols,
		col.New(1).Add(text.New("Total", headerText)).WithStyle(&headerCell))

	m.AddRows(row.New(8).Add(headerCols...))

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, r := range data.Rows {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		material := r.MaterialName
		if r.SomaliName != "" {
			material = fmt.Sprintf("%s (%s)", r.MaterialName, r.SomaliName)
		}

		bodyCols := []core.Col{
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), bodyText)),
			col.New(3).Add(text.New(material, bodyTextLeft)),
			col.New(1).Add(text.New(r.Quantity.String(), bodyTextRight)),
			col.New(1).Add(text.New(r.Unit, bodyText)),
		}
		for _, ct := range r.ColumnTotals {
			cellValue := ""
			if !ct.IsZero() {
				cellValue = formatAmount(ct, data.Company.Currency)
			}
			bodyCols = append(bodyCols, col.New(1).Add(text.New(cellValue, bodyTextRight)))
		}
		bodyCols = append(bodyCols,
			col.New(1).Add(text.New(formatAmount(r.RowTotal, data.Company.Currency), bodyTextRight)))

		if cellStyle != nil {
			for j := range bodyCols {
				bodyCols[j] = bodyCols[j].WithStyle(cellStyle)
			}
		}

		m.AddRows(row.New(7).Add(bodyCols...))
	}

	m.AddRows(row.New(2))
}

// addQuotationTotals adds the right-aligned totals block.
func addQuotationTotals(m core.Maroto, data *QuotationData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	totals := []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal", data.Subtotal},
		{"Delivery Fee", data.DeliveryFee},
		{"Taxes", data.Taxes},
	}

	for _, tr := range totals {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(text.New(tr.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(formatAmount(tr.value, data.Company.Currency), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(formatAmount(data.GrandTotal, data.Company.Currency), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addQuotationFooter adds the WhatsApp contact line.
func addQuotationFooter(m core.Maroto, data *QuotationData) {
	if data.Company.WhatsApp == "" {
		return
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Questions? Reach us on WhatsApp: %s", data.Company.WhatsApp), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}

// formatAmount renders a monetary amount with the configured currency,
// rounded to two decimals.
func formatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" || currency == "USD" {
		return "$" + amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}
