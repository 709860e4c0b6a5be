package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StatementXLSX renders a statement as an XLSX workbook with the same
// columns as the CSV export, for users who want the formatted download.
func StatementXLSX(entityName string, lines []StatementLine) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ledger"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("could not rename sheet: %w", err)
	}

	headers := []string{"Date", "Description", "Type", "Credit (₹)", "Debit (₹)", "Balance (₹)"}
	if err := f.SetCellValue(sheet, "A1", entityName); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, l := range lines {
		values := []interface{}{
			l.Date.Format("2006-01-02"),
			l.Description,
			l.Type,
			l.Credit,
			l.Debit,
			l.Balance,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("could not serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
