package service

import (
	"context"

	"farmintel/entities"
)

// SchemeForm is the admin add/edit form.
type SchemeForm struct {
	Name                string `form:"name" json:"name"`
	SchemeType          string `form:"scheme_type" json:"scheme_type"`
	EligibleCrop        string `form:"eligible_crop" json:"eligible_crop"`
	EligibilityCriteria string `form:"eligibility_criteria" json:"eligibility_criteria"`
	Benefits            string `form:"benefits" json:"benefits"`
	RequiredDocuments   string `form:"required_documents" json:"required_documents"`
	ApplyLink           string `form:"apply_link" json:"apply_link"`
	Status              string `form:"status" json:"status"`
}

type SchemeService interface {
	ListForFarmer(ctx context.Context) ([]entities.Scheme, error)
	ListForAdmin(ctx context.Context) ([]entities.Scheme, error)
	Get(ctx context.Context, id uint) (*entities.Scheme, error)
	Create(ctx context.Context, in SchemeForm) (*entities.Scheme, error)
	Update(ctx context.Context, id uint, in SchemeForm) (*entities.Scheme, error)
	Delete(ctx context.Context, id uint) error
}
