package main

import (
	"hotelbook/config"
	"hotelbook/di"
	"hotelbook/helper"
	"hotelbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotelbook API
// @version 1.0
// @description Direct booking, loyalty and channel sync for a single property.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
