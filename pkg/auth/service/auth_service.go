package service

import (
	"context"

	"farmintel/entities"
	"farmintel/pkg/auth"
)

// FarmerSignup is the farmer registration form.
type FarmerSignup struct {
	Name              string `form:"name" json:"name"`
	Mobile            string `form:"mobile" json:"mobile"`
	Email             string `form:"email" json:"email"`
	Village           string `form:"village" json:"village"`
	Taluka            string `form:"taluka" json:"taluka"`
	District          string `form:"district" json:"district"`
	LandArea          string `form:"land_area" json:"land_area"`
	SoilType          string `form:"soil_type" json:"soil_type"`
	WaterAvailability string `form:"water_availability" json:"water_availability"`
	Password          string `form:"password" json:"password"`
	ConfirmPassword   string `form:"confirm_password" json:"confirm_password"`
}

// AdminSignup is the admin registration form.
type AdminSignup struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	Mobile          string `form:"mobile" json:"mobile"`
	AdminRole       string `form:"admin_role" json:"admin_role"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

type AuthService interface {
	SignupFarmer(ctx context.Context, in FarmerSignup) (*entities.User, error)
	SignupAdmin(ctx context.Context, in AdminSignup) (*entities.User, error)
	LoginFarmer(ctx context.Context, identifier, password string) (auth.Session, error)
	LoginAdmin(ctx context.Context, identifier, password string) (auth.Session, error)
}
