package main

import (
	"log"
	"net/http"

	_ "dealhunt/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"dealhunt/internal/auth"
	"dealhunt/internal/cache"
	"dealhunt/internal/config"
	"dealhunt/internal/db"
	"dealhunt/internal/handler"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
	"dealhunt/internal/router"
	"dealhunt/internal/service"
)

// @title DealHunt API
// @version 1.0
// @description E-commerce offers aggregator with JWT authentication and admin-managed deals.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Offer{},
		&model.SavedOffer{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	offerRepo := repository.NewOfferRepository(gormDB)
	savedOfferRepo := repository.NewSavedOfferRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	offerService := service.NewOfferService(offerRepo, cacheClient)
	savedOfferService := service.NewSavedOfferService(savedOfferRepo, offerRepo)
	adminService := service.NewAdminService(userRepo, offerRepo, savedOfferRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	offerHandler := handler.NewOfferHandler(offerService)
	savedOfferHandler := handler.NewSavedOfferHandler(savedOfferService)
	adminHandler := handler.NewAdminHandler(adminService)
	metaHandler := handler.NewMetaHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		userRepo,
		authHandler,
		offerHandler,
		savedOfferHandler,
		adminHandler,
		metaHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
