package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"hostal/internal/config"
	"hostal/internal/database"
	"hostal/internal/domain"
	"hostal/internal/middleware"
	"hostal/internal/modules/auth"
	"hostal/internal/modules/cashier"
	"hostal/internal/modules/catalog"
	"hostal/internal/modules/customer"
	"hostal/internal/modules/guard"
	"hostal/internal/modules/ledger"
	"hostal/internal/modules/refund"
	"hostal/internal/notify"
	jwtsvc "hostal/internal/pkg/jwt"
	"hostal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	productRepo := repository.NewProductRepository(db)
	blacklistRepo := repository.NewBlacklistRepository(db)

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notify.NewHub(logger)

	authService := auth.NewService(userRepo, jwt, logger)
	guardService := guard.NewService(db, blacklistRepo, logger)
	ledgerService := ledger.NewService(db, bookingRepo, guardService, hub, logger)
	cashierService := cashier.NewService(db, logger)
	catalogService := catalog.NewService(roomRepo, productRepo, logger)
	customerService := customer.NewService(customerRepo)
	refundService := refund.NewService(db, authService, hub, logger)

	authHandler := auth.NewHandler(authService)
	guardHandler := guard.NewHandler(guardService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	cashierHandler := cashier.NewHandler(cashierService)
	catalogHandler := catalog.NewHandler(catalogService)
	customerHandler := customer.NewHandler(customerService)
	refundHandler := refund.NewHandler(refundService)
	notifyHandler := notify.NewHandler(hub)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		desk := v1.Group("/")
		desk.Use(middleware.Auth(jwt), middleware.RequireCashier())
		{
			ledgerHandler.RegisterRoutes(desk)
			cashierHandler.RegisterRoutes(desk)
			catalogHandler.RegisterRoutes(desk)
			customerHandler.RegisterRoutes(desk)
			refundHandler.RegisterRoutes(desk)
			notifyHandler.RegisterRoutes(desk)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(jwt), middleware.RequireRole(domain.RoleAdmin))
		guardHandler.RegisterRoutes(desk, admin)
	}

	logger.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("starting server")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
