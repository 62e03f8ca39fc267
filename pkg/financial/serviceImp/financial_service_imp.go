package serviceImp

import (
	"context"
	"io"
	"strings"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/financial"
	repo "farmintel/pkg/financial/repository"
	"farmintel/pkg/financial/service"
	"farmintel/pkg/validate"
)

type financialSvc struct{ r repo.FinancialRepository }

func NewFinancialService(r repo.FinancialRepository) service.FinancialService {
	return &financialSvc{r}
}

func (s *financialSvc) List(ctx context.Context, farmerID uint) ([]financial.Entry, error) {
	rs, err := s.r.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return financial.ComputeAll(rs), nil
}

func (s *financialSvc) Summary(ctx context.Context, farmerID uint) (financial.Summary, error) {
	entries, err := s.List(ctx, farmerID)
	if err != nil {
		return financial.Summary{}, err
	}
	return financial.Summarize(entries), nil
}

func (s *financialSvc) Get(ctx context.Context, farmerID, id uint) (*financial.Entry, error) {
	rec, err := s.r.FindOwned(ctx, id, farmerID)
	if err != nil {
		return nil, err
	}
	e := financial.Compute(*rec)
	return &e, nil
}

func (s *financialSvc) Add(ctx context.Context, farmerID uint, in service.RecordForm) (*financial.Entry, error) {
	rec, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	rec.FarmerID = farmerID
	if err := s.r.Create(ctx, rec); err != nil {
		return nil, err
	}
	return s.Get(ctx, farmerID, rec.ID)
}

func (s *financialSvc) Edit(ctx context.Context, farmerID, id uint, in service.RecordForm) (*financial.Entry, error) {
	rec, err := fromForm(in)
	if err != nil {
		return nil, err
	}
	rec.ID, rec.FarmerID = id, farmerID
	if err := s.r.UpdateOwned(ctx, rec); err != nil {
		return nil, err
	}
	return s.Get(ctx, farmerID, id)
}

func (s *financialSvc) Delete(ctx context.Context, farmerID, id uint) error {
	return s.r.DeleteOwned(ctx, id, farmerID)
}

func (s *financialSvc) ExportCSV(ctx context.Context, farmerID uint, w io.Writer) error {
	entries, err := s.List(ctx, farmerID)
	if err != nil {
		return err
	}
	return financial.WriteCSV(w, entries)
}

func (s *financialSvc) ExportXLSX(ctx context.Context, farmerID uint, w io.Writer) error {
	entries, err := s.List(ctx, farmerID)
	if err != nil {
		return err
	}
	return financial.WriteXLSX(w, entries)
}

func fromForm(in service.RecordForm) (*entities.FinancialRecord, error) {
	numbers := []struct{ v, label string }{
		{in.SeedsCost, "Seeds cost"},
		{in.FertilizerCost, "Fertilizer cost"},
		{in.PesticidesCost, "Pesticides cost"},
		{in.IrrigationCost, "Irrigation cost"},
		{in.LabourCost, "Labour cost"},
		{in.MachineryCost, "Machinery cost"},
		{in.OtherExpenses, "Other expenses"},
		{in.TotalProduction, "Total production"},
		{in.SellingPrice, "Selling price"},
	}
	checks := []validate.Check{validate.C(validate.CropName(in.CropName))}
	for _, n := range numbers {
		checks = append(checks, validate.C(validate.NonNegative(n.v, n.label, false)))
	}
	if ok, msg := validate.First(checks...); !ok {
		return nil, apperr.Validation(msg)
	}
	return &entities.FinancialRecord{
		CropName:        strings.TrimSpace(in.CropName),
		Season:          strings.TrimSpace(in.Season),
		SeedsCost:       validate.ParseDecimal(in.SeedsCost),
		FertilizerCost:  validate.ParseDecimal(in.FertilizerCost),
		PesticidesCost:  validate.ParseDecimal(in.PesticidesCost),
		IrrigationCost:  validate.ParseDecimal(in.IrrigationCost),
		LabourCost:      validate.ParseDecimal(in.LabourCost),
		MachineryCost:   validate.ParseDecimal(in.MachineryCost),
		OtherExpenses:   validate.ParseDecimal(in.OtherExpenses),
		TotalProduction: validate.ParseDecimal(in.TotalProduction),
		SellingPrice:    validate.ParseDecimal(in.SellingPrice),
	}, nil
}
