package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"mini-ledger/internal/domain"
)

const (
	SheetTransactions = "Transactions"
	SheetDaily        = "Daily"

	chartTitle = "Income and Expenses Over Time"

	incomeColor  = "00A651"
	expenseColor = "E0301E"
)

// WorkbookXLSX builds a workbook holding the transactions, the summary and the
// daily series with a line chart of income against expense.
func WorkbookXLSX(rep *domain.LedgerReport, series []domain.DailyPoint) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "mini-ledger",
	})

	if err := xlsx.SetSheetName(xlsx.GetSheetName(xlsx.GetActiveSheetIndex()), SheetTransactions); err != nil {
		return nil, err
	}
	amountStyle, err := xlsx.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, err
	}

	if err := writeTransactionsSheet(xlsx, rep, amountStyle); err != nil {
		return nil, fmt.Errorf("write %s sheet: %w", SheetTransactions, err)
	}
	if _, err := xlsx.NewSheet(SheetDaily); err != nil {
		return nil, err
	}
	if err := writeDailySheet(xlsx, series, amountStyle); err != nil {
		return nil, fmt.Errorf("write %s sheet: %w", SheetDaily, err)
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTransactionsSheet(xlsx *excelize.File, rep *domain.LedgerReport, amountStyle int) error {
	sheet := SheetTransactions
	_ = xlsx.SetColWidth(sheet, "A", "A", 12)
	_ = xlsx.SetColWidth(sheet, "B", "B", 14)
	_ = xlsx.SetColWidth(sheet, "C", "C", 14)
	_ = xlsx.SetColWidth(sheet, "D", "D", 40)

	if err := xlsx.SetSheetRow(sheet, "A1", &[]interface{}{"date", "amount", "category", "description"}); err != nil {
		return err
	}
	row := 2
	for _, tx := range rep.Transactions {
		values := []interface{}{
			domain.FormatDate(tx.Date),
			tx.Amount.InexactFloat64(),
			string(tx.Category),
			tx.Description,
		}
		if err := xlsx.SetSheetRow(sheet, cell('A', row), &values); err != nil {
			return err
		}
		row++
	}
	if row > 2 {
		_ = xlsx.SetCellStyle(sheet, cell('B', 2), cell('B', row-1), amountStyle)
	}

	row++
	summary := [][]interface{}{
		{"Total Income", rep.Summary.TotalIncome.InexactFloat64()},
		{"Total Expense", rep.Summary.TotalExpense.InexactFloat64()},
		{"Net Savings", rep.Summary.NetSavings.InexactFloat64()},
	}
	for _, values := range summary {
		values := values
		if err := xlsx.SetSheetRow(sheet, cell('A', row), &values); err != nil {
			return err
		}
		_ = xlsx.SetCellStyle(sheet, cell('B', row), cell('B', row), amountStyle)
		row++
	}
	return nil
}

func writeDailySheet(xlsx *excelize.File, series []domain.DailyPoint, amountStyle int) error {
	sheet := SheetDaily
	_ = xlsx.SetColWidth(sheet, "A", "C", 14)

	if err := xlsx.SetSheetRow(sheet, "A1", &[]interface{}{"Date", "Income", "Expense"}); err != nil {
		return err
	}
	for i, point := range series {
		values := []interface{}{
			domain.FormatDate(point.Date),
			point.Income.InexactFloat64(),
			point.Expense.InexactFloat64(),
		}
		if err := xlsx.SetSheetRow(sheet, cell('A', i+2), &values); err != nil {
			return err
		}
	}
	if len(series) == 0 {
		return nil
	}

	last := len(series) + 1
	_ = xlsx.SetCellStyle(sheet, cell('B', 2), cell('C', last), amountStyle)

	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheet, last)
	return xlsx.AddChart(sheet, "E2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, last),
				Fill:       excelize.Fill{Type: "pattern", Color: []string{incomeColor}, Pattern: 1},
			},
			{
				Name:       fmt.Sprintf("%s!$C$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", sheet, last),
				Fill:       excelize.Fill{Type: "pattern", Color: []string{expenseColor}, Pattern: 1},
			},
		},
		Title:  []excelize.RichTextRun{{Text: chartTitle}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  720,
			Height: 360,
		},
	})
}

func cell(col byte, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
