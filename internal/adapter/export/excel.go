// Package export renders statements and stock reports as xlsx
// workbooks for download.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/iho/bizbooks/internal/domain"
	"github.com/iho/bizbooks/internal/usecase"
)

const sheetName = "Sheet1"

var statementHeaders = []string{
	"Date", "Doc Type", "Doc No", "Particulars", "Debit", "Credit", "Balance", "Side",
}

var stockHeaders = []string{
	"Item", "Category", "Status", "Current Stock", "Min Level", "Sales Rate", "Value",
}

// WriteStatement renders a full statement as an xlsx workbook.
func WriteStatement(w io.Writer, statement *usecase.Statement) error {
	f := excelize.NewFile()
	defer f.Close()

	writeRow(f, 1, toCells(statementHeaders))
	row := 2
	for _, e := range statement.Entries {
		cells := []any{
			formatDate(e),
			string(e.DocType),
			e.DocNumber,
			e.Particulars,
			e.Debit.InexactFloat64(),
			e.Credit.InexactFloat64(),
			e.Balance.InexactFloat64(),
			domain.BalanceSide(e.Balance),
		}
		writeRow(f, row, cells)
		row++
	}

	row++
	writeRow(f, row, []any{"", "", "", "Totals",
		statement.Totals.TotalDebit.InexactFloat64(),
		statement.Totals.TotalCredit.InexactFloat64(),
		statement.Totals.ClosingBalance.InexactFloat64(),
		domain.BalanceSide(statement.Totals.ClosingBalance),
	})

	return f.Write(w)
}

// WriteStockReport renders a classified stock report as an xlsx
// workbook.
func WriteStockReport(w io.Writer, rows []usecase.StockReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	writeRow(f, 1, toCells(stockHeaders))
	for i, r := range rows {
		cells := []any{
			r.Item.Name,
			r.Item.Category,
			string(r.Status),
			r.CurrentStock.InexactFloat64(),
			r.Item.MinimumStockLevel.InexactFloat64(),
			r.Item.SalesRate.InexactFloat64(),
			r.Value.InexactFloat64(),
		}
		writeRow(f, i+2, cells)
	}

	return f.Write(w)
}

func writeRow(f *excelize.File, row int, cells []any) {
	col := 'A'
	for _, value := range cells {
		f.SetCellValue(sheetName, fmt.Sprintf("%c%d", col, row), value)
		col++
	}
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func formatDate(e domain.LedgerEntry) string {
	if e.Date.IsZero() {
		return ""
	}
	return e.Date.Format("2006-01-02")
}
