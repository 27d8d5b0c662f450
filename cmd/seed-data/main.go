package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/elyvra/storefront/internal/api"
	"github.com/elyvra/storefront/internal/config"
)

// Seeds the backend with sample catalog data and a default admin account.
// Intended for fresh development environments.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := api.NewClient(cfg.API, logger)
	ctx := context.Background()

	if err := client.InitSampleProducts(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed products: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Sample products seeded")

	result, err := client.InitDefaultAdmin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create default admin: %v\n", err)
		os.Exit(1)
	}
	if result.Existing {
		fmt.Println("Admin account already exists, skipping")
		return
	}

	fmt.Println("Default admin created. Save these credentials now:")
	fmt.Printf("  username: %s\n", result.Username)
	fmt.Printf("  password: %s\n", result.Password)
}
