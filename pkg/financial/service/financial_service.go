package service

import (
	"context"
	"io"

	"farmintel/pkg/financial"
)

// RecordForm is the add/edit form; blank numbers mean zero.
type RecordForm struct {
	CropName        string `form:"crop_name" json:"crop_name"`
	Season          string `form:"season" json:"season"`
	SeedsCost       string `form:"seeds_cost" json:"seeds_cost"`
	FertilizerCost  string `form:"fertilizer_cost" json:"fertilizer_cost"`
	PesticidesCost  string `form:"pesticides_cost" json:"pesticides_cost"`
	IrrigationCost  string `form:"irrigation_cost" json:"irrigation_cost"`
	LabourCost      string `form:"labour_cost" json:"labour_cost"`
	MachineryCost   string `form:"machinery_cost" json:"machinery_cost"`
	OtherExpenses   string `form:"other_expenses" json:"other_expenses"`
	TotalProduction string `form:"total_production" json:"total_production"`
	SellingPrice    string `form:"selling_price" json:"selling_price"`
}

type FinancialService interface {
	List(ctx context.Context, farmerID uint) ([]financial.Entry, error)
	Summary(ctx context.Context, farmerID uint) (financial.Summary, error)
	Get(ctx context.Context, farmerID, id uint) (*financial.Entry, error)
	Add(ctx context.Context, farmerID uint, in RecordForm) (*financial.Entry, error)
	Edit(ctx context.Context, farmerID, id uint, in RecordForm) (*financial.Entry, error)
	Delete(ctx context.Context, farmerID, id uint) error
	ExportCSV(ctx context.Context, farmerID uint, w io.Writer) error
	ExportXLSX(ctx context.Context, farmerID uint, w io.Writer) error
}
