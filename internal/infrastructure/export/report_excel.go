package export

import (
	"bytes"
	"fmt"

	"github.com/somvi/backend/internal/application/report"
	"github.com/xuri/excelize/v2"
)

// GenerateCompletedOrdersXLSX builds the completed-orders workbook and
// returns the file contents as a byte slice.
func GenerateCompletedOrdersXLSX(data *report.CompletedOrdersReport, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet names cap at 31 chars.
	sheetName := "Completed Orders"

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{22, 28, 32, 8, 14, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// Row 1: title merged across all columns.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Completed Orders Report")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Row 2: reporting period.
	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge period: %w", err)
	}
	period := fmt.Sprintf("Period: %s to %s",
		data.From.Format("2006-01-02"), data.To.Format("2006-01-02"))
	f.SetCellValue(sheetName, "A2", period)
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// Row 4: column headers.
	headers := []string{"RFQ Number", "Client", "Project", "Items", "Completed", "Total Value", "Profit"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// Data rows from row 5.
	rowNum := 5
	for _, order := range data.Orders {
		rowStr := fmt.Sprintf("%d", rowNum)

		completed := ""
		if order.CompletedAt != nil {
			completed = order.CompletedAt.Format("2006-01-02")
		}

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeCell(order.RFQNumber))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeCell(order.ClientName))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeCell(order.ProjectName))
		f.SetCellValue(sheetName, "D"+rowStr, order.ItemCount)
		f.SetCellValue(sheetName, "E"+rowStr, completed)
		f.SetCellValue(sheetName, "F"+rowStr, formatAmount(order.TotalValue, currency))
		f.SetCellValue(sheetName, "G"+rowStr, formatAmount(order.Profit, currency))
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, rowStyle)

		rowNum++
	}

	// Totals footer, one blank row below the data.
	rowNum++

	summaryRow := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "E"+summaryRow, fmt.Sprintf("Total (%d orders):", data.OrderCount))
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "F"+summaryRow, formatAmount(data.TotalValue, currency))
	f.SetCellValue(sheetName, "G"+summaryRow, formatAmount(data.Profit, currency))
	f.SetCellStyle(sheetName, "F"+summaryRow, "G"+summaryRow, summaryValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeCell prevents formula injection by prefixing dangerous
// leading characters with a single quote. Excel treats cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
