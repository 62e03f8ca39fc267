package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"farmintel/config"
	"farmintel/database"
	"farmintel/pkg/auth"
	"farmintel/pkg/middleware"
	"farmintel/pkg/upload"
	"farmintel/router"

	// Auth
	authCtrlImp "farmintel/pkg/auth/controllerImp"
	authRepoImp "farmintel/pkg/auth/repositoryImp"
	authSvcImp "farmintel/pkg/auth/serviceImp"

	// Crops
	cropCtrlImp "farmintel/pkg/crop/controllerImp"
	cropRepoImp "farmintel/pkg/crop/repositoryImp"
	cropSvcImp "farmintel/pkg/crop/serviceImp"

	// Schemes
	schemeCtrlImp "farmintel/pkg/scheme/controllerImp"
	schemeRepoImp "farmintel/pkg/scheme/repositoryImp"
	schemeSvcImp "farmintel/pkg/scheme/serviceImp"

	// Financial records
	finCtrlImp "farmintel/pkg/financial/controllerImp"
	finRepoImp "farmintel/pkg/financial/repositoryImp"
	finSvcImp "farmintel/pkg/financial/serviceImp"

	// Store
	storeCtrlImp "farmintel/pkg/store/controllerImp"
	storeRepoImp "farmintel/pkg/store/repositoryImp"
	storeSvcImp "farmintel/pkg/store/serviceImp"

	// Health
	healthCtrlImp "farmintel/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB + automigrate
	db := database.MustOpen(cfg.DBDriver, cfg.DBPath, cfg.DBDSN)

	// 3) Upload dirs
	images := upload.NewStore(cfg.UploadDir)
	if err := images.Ensure(); err != nil {
		log.Fatalf("[upload] %v", err)
	}

	// 4) Echo
	sessions := auth.NewSessions(cfg.SecretKey, cfg.SessionTTL, cfg.CookieSecure)
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			log.Printf("[http] %s %s %d %s id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit()))
	e.Use(middleware.LoadSession(sessions))
	e.Static("/static/uploads", cfg.UploadDir)

	// 5) Services/Controllers
	aCtrl := authCtrlImp.NewAuthController(authSvcImp.NewAuthService(authRepoImp.New(db)), sessions)
	cCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(cropRepoImp.New(db), images))
	sCtrl := schemeCtrlImp.New(schemeSvcImp.NewSchemeService(schemeRepoImp.New(db)))
	fCtrl := finCtrlImp.New(finSvcImp.NewFinancialService(finRepoImp.New(db)))
	stCtrl := storeCtrlImp.New(storeSvcImp.NewStoreService(storeRepoImp.New(db), images))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.UploadDir)

	// 6) Router
	r := router.New(e, aCtrl, cCtrl, sCtrl, fCtrl, stCtrl, hCtrl)

	// 7) Start
	log.Printf("[http] listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
