package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	// Form handlers answer GET on the login and signup paths with the
	// fields the matching POST expects.
	FarmerSignupForm(c echo.Context) error
	FarmerLoginForm(c echo.Context) error
	AdminSignupForm(c echo.Context) error
	AdminLoginForm(c echo.Context) error

	FarmerSignup(c echo.Context) error
	FarmerLogin(c echo.Context) error
	AdminSignup(c echo.Context) error
	AdminLogin(c echo.Context) error
	Logout(c echo.Context) error
	WhoAmI(c echo.Context) error
	Dashboard(c echo.Context) error
}
