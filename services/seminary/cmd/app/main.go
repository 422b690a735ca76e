package main

import (
	"fmt"
	"os"

	"seminary/pkg/config"
	app "seminary/services/seminary/internal/app"

	_ "seminary/services/seminary/docs" // Swagger docs
)

// @title           Theological Seminary Lecture API
// @version         1.0
// @description     Lecture catalogue of the seminary: listing, detail and admin management of lectures with their materials.

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		os.Exit(1)
	}
}
