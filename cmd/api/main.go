package main

import (
	"os"

	"github.com/pharmahub/backend/internal/pkg/logger"
	"github.com/pharmahub/backend/internal/server"
)

// @title Pharmacy Department API
// @version 1.0
// @description Backend for the pharmacy department site, job board and Pharma Hub forum

// @host localhost:3001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
// @description Session JWT set by POST /api/auth/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
