package main

import (
	"rimbest/config"
	"rimbest/di"
	"rimbest/helper"
	"rimbest/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title RimBest API
// @version 1.0
// @description Flight search, booking wizard and booking management for RimBest.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.Enable && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate the receipt ledger")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
