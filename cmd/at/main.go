package main

import (
	"fmt"
	"os"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/cli"
	"attendance-tracker/internal/config"
	"attendance-tracker/internal/logging"
)

func main() {
	logger := logging.New()

	// Load configuration from .env file and environment variables
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create repository based on environment
	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Create API instance with configuration-driven validation
	apiInstance := api.NewWithConfig(repo, cfg)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		logger.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
