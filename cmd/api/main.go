package main

import (
	"context"
	"flag"
	"os"

	"github.com/sysgesco/backend/internal/bootstrap"
	"github.com/sysgesco/backend/internal/pkg/logger"
	"github.com/sysgesco/backend/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the SQL migrations directory")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(context.Background(), cfg, *migrationsDir)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up database")
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, database)
	router := bootstrap.SetupRouter(cfg, deps)

	if err := server.New(&cfg.Server, router).Run(); err != nil {
		logger.Error().Err(err).Msg("Server error")
		os.Exit(1)
	}
}
