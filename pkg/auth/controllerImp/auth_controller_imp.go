package controllerImp

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
	"farmintel/pkg/auth"
	"farmintel/pkg/auth/controller"
	"farmintel/pkg/auth/service"
	"farmintel/pkg/middleware"
)

type authCtrl struct {
	s        service.AuthService
	sessions *auth.Sessions
}

func NewAuthController(s service.AuthService, sessions *auth.Sessions) controller.AuthController {
	return &authCtrl{s: s, sessions: sessions}
}

type loginReq struct {
	Identifier string `form:"identifier" json:"identifier"`
	Password   string `form:"password" json:"password"`
}

type form struct {
	Name   string   `json:"form"`
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}

var (
	farmerSignupForm = form{"farmer_signup", "/farmer/signup", []string{
		"name", "mobile", "email", "village", "taluka", "district",
		"land_area", "soil_type", "water_availability", "password", "confirm_password",
	}}
	farmerLoginForm = form{"farmer_login", auth.RoleFarmer.LoginPath(), []string{"identifier", "password"}}
	adminSignupForm = form{"admin_signup", "/admin/signup", []string{
		"name", "email", "mobile", "admin_role", "password", "confirm_password",
	}}
	adminLoginForm = form{"admin_login", auth.RoleAdmin.LoginPath(), []string{"identifier", "password"}}
)

func (h *authCtrl) FarmerSignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, farmerSignupForm)
}

func (h *authCtrl) FarmerLoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, farmerLoginForm)
}

func (h *authCtrl) AdminSignupForm(c echo.Context) error {
	return c.JSON(http.StatusOK, adminSignupForm)
}

func (h *authCtrl) AdminLoginForm(c echo.Context) error {
	return c.JSON(http.StatusOK, adminLoginForm)
}

func (h *authCtrl) FarmerSignup(c echo.Context) error {
	var req service.FarmerSignup
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	u, err := h.s.SignupFarmer(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful. Please login.",
		"id":      u.ID,
		"next":    auth.RoleFarmer.LoginPath(),
	})
}

func (h *authCtrl) AdminSignup(c echo.Context) error {
	var req service.AdminSignup
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	u, err := h.s.SignupAdmin(c.Request().Context(), req)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Admin account created. Please login.",
		"id":      u.ID,
		"next":    auth.RoleAdmin.LoginPath(),
	})
}

func (h *authCtrl) FarmerLogin(c echo.Context) error {
	return h.login(c, h.s.LoginFarmer)
}

func (h *authCtrl) AdminLogin(c echo.Context) error {
	return h.login(c, h.s.LoginAdmin)
}

type loginFunc func(ctx context.Context, identifier, password string) (auth.Session, error)

func (h *authCtrl) login(c echo.Context, fn loginFunc) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid form"})
	}
	s, err := fn(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return apperr.JSON(c, err)
	}
	if err := h.sessions.Issue(c.Response(), s); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"session": s, "next": s.Role.HomePath()})
}

func (h *authCtrl) Logout(c echo.Context) error {
	h.sessions.Clear(c.Response())
	return c.Redirect(http.StatusFound, auth.RoleFarmer.LoginPath())
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
	}
	return c.JSON(http.StatusOK, s)
}

// Dashboard greets whoever the guard let through.
func (h *authCtrl) Dashboard(c echo.Context) error {
	s, _ := middleware.SessionFrom(c)
	return c.JSON(http.StatusOK, echo.Map{
		"name":  s.Name,
		"email": s.Email,
		"role":  s.Role,
	})
}
