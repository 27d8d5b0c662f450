package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/config"
	"github.com/elyvra/storefront/internal/stub"
)

func main() {
	cfg, err := config.LoadStub()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	server := stub.NewServer(logger)
	router := server.Router(cfg.Environment)

	logger.Info("Starting stub backend", zap.String("port", cfg.StubPort))
	if err := router.Run(":" + cfg.StubPort); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
