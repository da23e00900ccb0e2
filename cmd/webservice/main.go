package main

import (
	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/app"
	"github.com/ecofinds/marketplace-service/internal/infrastructure/database/postgres"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.CreateNewConfig()

	db, err := postgres.ConnectToPostgreSQL(cfg.PostgreSQLConfig.DBUsername, cfg.PostgreSQLConfig.DBPassword, cfg.PostgreSQLConfig.DBHost, cfg.PostgreSQLConfig.DBPort, cfg.PostgreSQLConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer db.Close()

	application := app.App{
		DB:     db,
		Config: cfg,
	}

	application.Start()
}
