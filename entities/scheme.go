package entities

import "time"

const (
	SchemeActive   = "Active"
	SchemeInactive = "Inactive"
)

type Scheme struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Name                string `gorm:"size:200;not null;index" json:"name"`
	SchemeType          string `gorm:"size:50" json:"scheme_type"` // Central|State|...
	EligibleCrop        string `gorm:"size:150" json:"eligible_crop"`
	EligibilityCriteria string `gorm:"type:text" json:"eligibility_criteria"`
	Benefits            string `gorm:"type:text" json:"benefits"`
	RequiredDocuments   string `gorm:"type:text" json:"required_documents"`
	ApplyLink           string `gorm:"size:255" json:"apply_link"`
	Status              string `gorm:"size:20;not null;default:'Active';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
