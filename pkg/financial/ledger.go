// Package financial derives profit and loss from a farmer's crop cost records
// and renders them for download.
package financial

import (
	"github.com/shopspring/decimal"

	"farmintel/entities"
)

const (
	StatusProfit    = "Profit"
	StatusLoss      = "Loss"
	StatusBreakEven = "No Profit No Loss"
)

// Entry is a stored record plus its derived totals. The totals are never
// persisted, so an edited cost shows up on the next read.
type Entry struct {
	entities.FinancialRecord
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Status       string          `json:"status"`
}

// Summary totals every entry of one farmer.
type Summary struct {
	Records      int             `json:"records"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	Status       string          `json:"status"`
}

func Compute(r entities.FinancialRecord) Entry {
	expense := decimal.Sum(
		r.SeedsCost, r.FertilizerCost, r.PesticidesCost, r.IrrigationCost,
		r.LabourCost, r.MachineryCost, r.OtherExpenses,
	)
	income := r.TotalProduction.Mul(r.SellingPrice)
	net := income.Sub(expense)
	return Entry{
		FinancialRecord: r,
		TotalExpense:    expense,
		TotalIncome:     income,
		NetProfit:       net,
		Status:          StatusOf(net),
	}
}

func ComputeAll(rs []entities.FinancialRecord) []Entry {
	out := make([]Entry, len(rs))
	for i, r := range rs {
		out[i] = Compute(r)
	}
	return out
}

// StatusOf classifies net profit by sign.
func StatusOf(net decimal.Decimal) string {
	switch net.Sign() {
	case 1:
		return StatusProfit
	case -1:
		return StatusLoss
	}
	return StatusBreakEven
}

func Summarize(entries []Entry) Summary {
	s := Summary{Records: len(entries)}
	for _, e := range entries {
		s.TotalExpense = s.TotalExpense.Add(e.TotalExpense)
		s.TotalIncome = s.TotalIncome.Add(e.TotalIncome)
		s.NetProfit = s.NetProfit.Add(e.NetProfit)
	}
	s.Status = StatusOf(s.NetProfit)
	return s
}
