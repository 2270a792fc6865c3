package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meu_delivery/internal/auth"
	"meu_delivery/internal/config"
	"meu_delivery/internal/handlers"
	"meu_delivery/internal/logger"
	"meu_delivery/internal/middleware"
	"meu_delivery/internal/repositories"
	"meu_delivery/internal/routes"
	"meu_delivery/internal/services"
	"meu_delivery/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	defer sqlDB.Close()
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database migrated")
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
}

// SetupRouter wires services, handlers and middleware on top of gormDB.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	tokens := auth.NewTokenManager(cfg.JWT.Secret)

	serviceContainer := initializeServices(cfg, tokens)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg, gormDB)

	var courierGuards []gin.HandlerFunc
	if cfg.Auth.ProtectCourierRoutes {
		courierGuards = append(courierGuards, middleware.CourierTokenMiddleware(tokens))
	}
	routes.RegisterRoutes(ginRouter, appHandlers, courierGuards)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenManager) *services.ServiceContainer {
	courierRepo := repositories.NewCourierRepository()
	vehicleRepo := repositories.NewVehicleRepository()

	return &services.ServiceContainer{
		AuthService:       services.NewAuthService(courierRepo, tokens),
		CourierService:    services.NewCourierService(courierRepo, cfg.Registration.VerifyDocument),
		UniquenessService: services.NewUniquenessService(courierRepo),
		VehicleService:    services.NewVehicleService(vehicleRepo, courierRepo, cfg.Vehicles.GlobalPlateUniqueness),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		CourierHandler: handlers.NewCourierHandler(baseHandler, services.CourierService, services.UniquenessService),
		VehicleHandler: handlers.NewVehicleHandler(baseHandler, services.VehicleService),
		HealthHandler:  handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
