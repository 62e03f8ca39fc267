package serviceImp

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"farmintel/entities"
	"farmintel/pkg/apperr"
	"farmintel/pkg/auth"
	repo "farmintel/pkg/auth/repository"
	"farmintel/pkg/auth/service"
	"farmintel/pkg/validate"
)

const (
	msgEmailTaken      = "Email already registered."
	msgBadFarmerLogin  = "Invalid Farmer ID/Email/Mobile or Password."
	msgBadAdminLogin   = "Invalid Admin credentials."
	msgPasswordMissing = "Password is required."
)

type authSvc struct {
	r    repo.UserRepository
	hash func(string) (string, error)
}

func NewAuthService(r repo.UserRepository) service.AuthService {
	return &authSvc{r: r, hash: auth.HashPassword}
}

func (s *authSvc) SignupFarmer(ctx context.Context, in service.FarmerSignup) (*entities.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	if ok, msg := validate.First(
		validate.C(validate.Name(in.Name, "Farmer full name", true)),
		validate.C(validate.Mobile(in.Mobile, true)),
		validate.C(validate.Email(in.Email)),
		validate.C(validate.Password(in.Password)),
		validate.C(validate.ConfirmPassword(in.Password, in.ConfirmPassword)),
		validate.C(validate.LandArea(in.LandArea, false)),
	); !ok {
		return nil, apperr.Validation(msg)
	}

	u := &entities.User{
		Role:              string(auth.RoleFarmer),
		Name:              in.Name,
		Email:             in.Email,
		Mobile:            validate.NormalizeMobile(in.Mobile),
		Village:           strings.TrimSpace(in.Village),
		Taluka:            strings.TrimSpace(in.Taluka),
		District:          strings.TrimSpace(in.District),
		LandArea:          validate.ParseDecimalPtr(in.LandArea),
		SoilType:          strings.TrimSpace(in.SoilType),
		WaterAvailability: strings.TrimSpace(in.WaterAvailability),
	}
	return u, s.create(ctx, u, in.Password)
}

func (s *authSvc) SignupAdmin(ctx context.Context, in service.AdminSignup) (*entities.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	if ok, msg := validate.First(
		validate.C(validate.Name(in.Name, "Admin name", true)),
		validate.C(validate.Email(in.Email)),
		validate.C(validate.Mobile(in.Mobile, false)),
		validate.C(validate.Password(in.Password)),
		validate.C(validate.ConfirmPassword(in.Password, in.ConfirmPassword)),
	); !ok {
		return nil, apperr.Validation(msg)
	}

	u := &entities.User{
		Role:      string(auth.RoleAdmin),
		Name:      in.Name,
		Email:     in.Email,
		Mobile:    validate.NormalizeMobile(in.Mobile),
		AdminRole: strings.TrimSpace(in.AdminRole),
	}
	return u, s.create(ctx, u, in.Password)
}

func (s *authSvc) create(ctx context.Context, u *entities.User, password string) error {
	taken, err := s.r.EmailExists(ctx, u.Email)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Validation(msgEmailTaken)
	}
	if u.PasswordHash, err = s.hash(password); err != nil {
		return err
	}
	if err := s.r.Create(ctx, u); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Validation(msgEmailTaken)
		}
		return err
	}
	return nil
}

// LoginFarmer resolves identifier as a mobile number when it is all digits,
// an email when it contains '@', and a farmer id otherwise.
func (s *authSvc) LoginFarmer(ctx context.Context, identifier, password string) (auth.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if ok, msg := validate.First(
		validate.C(validate.Identifier(identifier, "Farmer ID, Email or Mobile")),
		validate.C(password != "", msgPasswordMissing),
	); !ok {
		return auth.Session{}, apperr.Validation(msg)
	}

	u, err := s.findFarmer(ctx, identifier)
	return s.login(u, err, password, auth.RoleFarmer, msgBadFarmerLogin)
}

func (s *authSvc) findFarmer(ctx context.Context, identifier string) (*entities.User, error) {
	switch {
	case allDigits(identifier):
		if m := validate.NormalizeMobile(identifier); m != "" {
			return s.r.FindFarmerByMobile(ctx, m)
		}
		// too short to be a mobile; stored mobiles are always normalized
		return s.findFarmerByID(ctx, identifier)
	case strings.Contains(identifier, "@"):
		return s.r.FindFarmerByEmail(ctx, identifier)
	default:
		return s.findFarmerByID(ctx, identifier)
	}
}

func (s *authSvc) findFarmerByID(ctx context.Context, identifier string) (*entities.User, error) {
	id, err := strconv.ParseUint(identifier, 10, 32)
	if err != nil || id == 0 {
		return nil, apperr.NotFound("user")
	}
	return s.r.FindFarmerByID(ctx, uint(id))
}

func (s *authSvc) LoginAdmin(ctx context.Context, identifier, password string) (auth.Session, error) {
	identifier = strings.TrimSpace(identifier)
	if ok, msg := validate.First(
		validate.C(validate.Identifier(identifier, "Admin Username or Email")),
		validate.C(password != "", msgPasswordMissing),
	); !ok {
		return auth.Session{}, apperr.Validation(msg)
	}

	u, err := s.r.FindAdmin(ctx, identifier)
	return s.login(u, err, password, auth.RoleAdmin, msgBadAdminLogin)
}

// login turns a lookup result into a session. Unknown user and wrong password
// produce the same message.
func (s *authSvc) login(u *entities.User, err error, password string, role auth.Role, failMsg string) (auth.Session, error) {
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return auth.Session{}, apperr.Validation(failMsg)
		}
		return auth.Session{}, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return auth.Session{}, apperr.Validation(failMsg)
	}
	return auth.Session{
		Authenticated: true,
		Role:          role,
		UserID:        u.ID,
		Name:          u.Name,
		Email:         u.Email,
	}, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
