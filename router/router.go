package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authCtrl "farmintel/pkg/auth/controller"
	cropCtrl "farmintel/pkg/crop/controller"
	finCtrl "farmintel/pkg/financial/controller"
	"farmintel/pkg/middleware"
	schemeCtrl "farmintel/pkg/scheme/controller"
	storeCtrl "farmintel/pkg/store/controller"
)

func New(
	e *echo.Echo,
	auth authCtrl.AuthController,
	crops cropCtrl.CropController,
	schemes schemeCtrl.SchemeController,
	financial finCtrl.FinancialController,
	store storeCtrl.StoreController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	farmer := middleware.RequireFarmer()
	admin := middleware.RequireAdmin()

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/farmer/login")
	})
	e.GET("/health", healthCtrl.Health)

	// Auth
	e.GET("/farmer/signup", auth.FarmerSignupForm)
	e.GET("/farmer/login", auth.FarmerLoginForm)
	e.GET("/admin/signup", auth.AdminSignupForm)
	e.GET("/admin/login", auth.AdminLoginForm)
	e.POST("/farmer/signup", auth.FarmerSignup)
	e.POST("/farmer/login", auth.FarmerLogin)
	e.POST("/admin/signup", auth.AdminSignup)
	e.POST("/admin/login", auth.AdminLogin)
	e.GET("/logout", auth.Logout)
	e.GET("/whoami", auth.WhoAmI)
	e.GET("/farmer/dashboard", auth.Dashboard, farmer)
	e.GET("/admin/dashboard", auth.Dashboard, admin)

	// Crops
	e.GET("/crops/", crops.List, farmer)
	e.GET("/crops/:id", crops.Detail, farmer)
	ca := e.Group("/crops/admin", admin)
	ca.GET("", crops.AdminList)
	ca.POST("/add", crops.AdminAdd)
	ca.GET("/edit/:id", crops.AdminGet)
	ca.POST("/edit/:id", crops.AdminEdit)
	ca.POST("/delete/:id", crops.AdminDelete)
	ca.POST("/toggle/:id", crops.AdminToggle)

	// Schemes
	e.GET("/schemes/", schemes.List, farmer)
	sa := e.Group("/schemes/admin", admin)
	sa.GET("", schemes.AdminList)
	sa.POST("/add", schemes.AdminAdd)
	sa.GET("/edit/:id", schemes.AdminGet)
	sa.POST("/edit/:id", schemes.AdminEdit)
	sa.POST("/delete/:id", schemes.AdminDelete)

	// Store
	e.GET("/store/", store.List, farmer)
	e.GET("/store/product/:id", store.Detail, farmer)
	e.POST("/store/cart/add", store.CartAdd, farmer)
	e.GET("/store/cart", store.CartView, farmer)
	e.POST("/store/cart/update", store.CartUpdate, farmer)
	e.GET("/store/checkout", store.CheckoutPreview, farmer)
	e.POST("/store/checkout", store.Checkout, farmer)
	e.GET("/store/orders", store.Orders, farmer)
	e.GET("/store/order/:id", store.Invoice, farmer)
	pa := e.Group("/store/admin", admin)
	pa.GET("", store.AdminList)
	pa.POST("/add", store.AdminAdd)
	pa.GET("/edit/:id", store.AdminGet)
	pa.POST("/edit/:id", store.AdminEdit)
	pa.POST("/delete/:id", store.AdminDelete)

	// Financial records
	fr := e.Group("/financial", farmer)
	fr.GET("/", financial.List)
	fr.GET("/summary", financial.Summary)
	fr.POST("/add", financial.Add)
	fr.GET("/edit/:id", financial.Get)
	fr.POST("/edit/:id", financial.Edit)
	fr.POST("/delete/:id", financial.Delete)
	fr.GET("/download/csv", financial.DownloadCSV)
	fr.GET("/download/xlsx", financial.DownloadXLSX)

	return e
}
