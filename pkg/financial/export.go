package financial

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	CSVFilename  = "financial_records.csv"
	XLSXFilename = "financial_records.xlsx"

	recordsSheet = "Records"
	summarySheet = "Summary"
	timeLayout   = "2006-01-02 15:04:05"
)

// Header is the fixed column order of every export.
var Header = []string{
	"Crop Name", "Season", "Seeds Cost", "Fertilizer Cost", "Pesticides Cost",
	"Irrigation Cost", "Labour Cost", "Machinery Cost", "Other Expenses",
	"Total Expense", "Total Production", "Selling Price", "Total Income",
	"Net Profit", "Status", "Created At",
}

func amounts(e Entry) []decimal.Decimal {
	return []decimal.Decimal{
		e.SeedsCost, e.FertilizerCost, e.PesticidesCost, e.IrrigationCost,
		e.LabourCost, e.MachineryCost, e.OtherExpenses, e.TotalExpense,
		e.TotalProduction, e.SellingPrice, e.TotalIncome, e.NetProfit,
	}
}

// WriteCSV writes Header and one row per entry, numbers as plain decimal text.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		row := make([]string, 0, len(Header))
		row = append(row, e.CropName, e.Season)
		for _, d := range amounts(e) {
			row = append(row, d.String())
		}
		row = append(row, e.Status, e.CreatedAt.Format(timeLayout))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same rows to a Records sheet and the totals to a
// Summary sheet.
func WriteXLSX(w io.Writer, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return err
	}
	if err := setRow(f, recordsSheet, 1, toAny(Header)); err != nil {
		return err
	}
	for i, e := range entries {
		row := []any{e.CropName, e.Season}
		for _, d := range amounts(e) {
			row = append(row, d.InexactFloat64())
		}
		row = append(row, e.Status, e.CreatedAt.Format(timeLayout))
		if err := setRow(f, recordsSheet, i+2, row); err != nil {
			return err
		}
	}

	s := Summarize(entries)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Records", s.Records},
		{"Total Expense", s.TotalExpense.InexactFloat64()},
		{"Total Income", s.TotalIncome.InexactFloat64()},
		{"Net Profit", s.NetProfit.InexactFloat64()},
		{"Status", s.Status},
	}
	for i, row := range summary {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
