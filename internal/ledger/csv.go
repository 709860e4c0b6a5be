package ledger

import (
	"strconv"
	"strings"
	"time"
)

// csvHeader - fixed export contract consumed by the spreadsheet-side
// tooling; the spacing is part of the format.
const csvHeader = "Date, Description, Type, Credit (₹), Debit (₹), Balance (₹)"

// StatementCSV renders a statement as CSV: the fixed header plus one row
// per transaction (N transactions → N+1 lines). Numeric fields are raw
// numbers, not currency-formatted strings, so they re-parse exactly. Only
// the description is quote-wrapped, with embedded quotes doubled.
func StatementCSV(lines []StatementLine) string {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteString(l.Date.Format("2006-01-02"))
		b.WriteByte(',')
		b.WriteString(quoteCSV(l.Description))
		b.WriteByte(',')
		b.WriteString(l.Type)
		b.WriteByte(',')
		b.WriteString(csvNumber(l.Credit))
		b.WriteByte(',')
		b.WriteString(csvNumber(l.Debit))
		b.WriteByte(',')
		b.WriteString(csvNumber(l.Balance))
	}

	return b.String()
}

// StatementFilename builds the download name:
// ledger_<entity-name-with-spaces-as-underscores>_<ISO-date>.csv
func StatementFilename(entityName string, date time.Time) string {
	return "ledger_" + strings.ReplaceAll(entityName, " ", "_") + "_" + date.Format("2006-01-02") + ".csv"
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
