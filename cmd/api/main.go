package main

import (
	"os"

	"github.com/tsiw/alumnet/internal/pkg/logger"
	"github.com/tsiw/alumnet/internal/server"
)

// @title AlumNet API
// @version 1.0
// @description REST API for the alumni networking platform: accounts, companies, employment associations and the social feed.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token obtained from /users/login

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
