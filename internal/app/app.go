package app

import (
	"godown-backend/internal/accrual"
	"godown-backend/internal/auth"
	"godown-backend/internal/config"
	"godown-backend/internal/dashboard"
	"godown-backend/internal/database"
	"godown-backend/internal/health"
	"godown-backend/internal/ledger"
	"godown-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The DB and Redis clients are returned for startup checks.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	// CORS (before session)
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLSuffix,
	}))

	sessionHandler, rdb, err := middleware.Session(middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	})
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	healthHandlers := &health.Handlers{Rdb: rdb}
	if db != nil {
		if sqlDB, errDB := db.DB(); errDB == nil {
			healthHandlers.DB = sqlDB
		}
	}
	app.Get("/health/json", healthHandlers.JSON)

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}

	// Auth (no auth middleware)
	var sender auth.Sender = auth.NoopSender{}
	if cfg.OTPTestCode == "" && cfg.Fast2SMSAPIKey != "" {
		sender = auth.NewFast2SMSClient(cfg.Fast2SMSAPIKey)
	}
	authHandlers := &auth.Handlers{
		Service: &auth.Service{
			DB:       db,
			Rdb:      rdb,
			Sender:   sender,
			TestCode: cfg.OTPTestCode,
		},
		Rdb:    rdb,
		Config: sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/request-otp", authHandlers.RequestOTP)
	authGroup.Post("/verify-otp", authHandlers.VerifyOTP)
	authGroup.Post("/admin-login", authHandlers.AdminLogin)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// Dashboards (auth required)
	if db != nil {
		dashHandlers := &dashboard.Handlers{
			Service: &dashboard.Service{
				DB:     db,
				Ledger: &ledger.Store{DB: db},
				Engine: &accrual.Engine{
					Rates: accrual.NewRates(cfg.RentRatePerMTDay, cfg.AnnualInterestPct),
				},
			},
		}
		dashGroup := app.Group("/api/v1/dashboard", middleware.RequireAuth())
		dashGroup.Get("/home", dashHandlers.Home)
		dashGroup.Get("/seller", dashHandlers.Seller)
		dashGroup.Get("/stockist", dashHandlers.Stockist)
		dashGroup.Get("/company", middleware.RequireRole("admin"), dashHandlers.Company)
	}

	return app, db, rdb, nil
}
