// Package main runs the devbank API: the customer dashboards, the admin workflows and the
// read model analytics.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/devbank/cmd/httpserver"
	"github.com/go-petr/devbank/db"
	"github.com/go-petr/devbank/internal/middleware"
	"github.com/go-petr/devbank/pkg/configpkg"
	"github.com/go-petr/devbank/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	if err := db.Up(context.Background(), conn); err != nil {
		logger.Fatal().Err(err).Msg("cannot migrate database")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("DEVBANK API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
