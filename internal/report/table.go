// Package report renders ledger query results for people: a plain-text table,
// a zero-filled daily series and an XLSX workbook with an income/expense chart.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mini-ledger/internal/domain"
)

// NoTransactionsMessage is printed when a range matched nothing.
const NoTransactionsMessage = "No transactions found in the given date range."

// DefaultPrinter formats numbers with English digit grouping.
func DefaultPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// WriteTable prints the transactions of rep followed by its summary.
func WriteTable(w io.Writer, rep *domain.LedgerReport, p *message.Printer) error {
	if p == nil {
		p = DefaultPrinter()
	}
	if rep.Empty() {
		_, err := fmt.Fprintln(w, NoTransactionsMessage)
		return err
	}

	if _, err := fmt.Fprintf(w, "Transactions from %s to %s\n",
		domain.FormatDate(rep.Start), domain.FormatDate(rep.End)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tamount\tcategory\tdescription")
	for _, tx := range rep.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			domain.FormatDate(tx.Date),
			formatAmount(p, tx.Amount),
			tx.Category,
			tx.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nSummary:\nTotal Income: $%s\nTotal Expense: $%s\nNet Savings: $%s\n",
		formatAmount(p, rep.Summary.TotalIncome),
		formatAmount(p, rep.Summary.TotalExpense),
		formatAmount(p, rep.Summary.NetSavings))
	return err
}

// formatAmount rounds to cents for display only.
func formatAmount(p *message.Printer, d decimal.Decimal) string {
	return p.Sprintf("%.2f", d.Round(2).InexactFloat64())
}
