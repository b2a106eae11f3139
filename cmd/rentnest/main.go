package main

import (
	"fmt"
	"os"

	"rentnest/internal/auth"
	"rentnest/internal/config"
	"rentnest/internal/db"
	"rentnest/internal/excel"
	httphandler "rentnest/internal/http"
	"rentnest/internal/http/middleware"
	"rentnest/internal/logger"
	"rentnest/internal/pdf"
	"rentnest/internal/repository"
	"rentnest/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	agreementRepo := repository.NewAgreementRepository(database)
	propertyRepo := repository.NewPropertyRepository(database)

	agreementService := service.NewAgreementService(
		agreementRepo,
		propertyRepo,
		pdf.NewGenerator(),
		excel.NewGenerator(),
		cfg,
	)
	propertyService := service.NewPropertyService(propertyRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(agreementService, propertyService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting rentnest api")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
