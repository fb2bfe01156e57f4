package main

import (
	"os"

	"github.com/unicourse/registra/internal/pkg/logger"
	"github.com/unicourse/registra/internal/server"
)

// @title Registra API
// @version 1.0
// @description REST API for academic administration: students, courses and enrollments.

// @contact.name API Support
// @contact.email support@registra.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	lgr := logger.WithField("component", "main")

	srv, err := server.NewServer()
	if err != nil {
		// Setup errors are logged in detail inside NewServer; this is the last word.
		lgr.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		lgr.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	lgr.Info().Msg("Application finished gracefully.")
}
