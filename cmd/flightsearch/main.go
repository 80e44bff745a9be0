package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/api"
	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("TRAVIGO_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	logLevel := zerolog.InfoLevel
	if levelName := os.Getenv("TRAVIGO_LOG_LEVEL"); levelName != "" {
		parsed, err := util.ParseLogLevel(levelName)
		if err != nil {
			log.Fatal().Err(err).Str("level", levelName).Msg("Invalid TRAVIGO_LOG_LEVEL")
		}
		logLevel = parsed
	}

	if os.Getenv("TRAVIGO_DEBUG") == "YES" {
		logLevel = zerolog.DebugLevel
	}

	log.Logger = log.Logger.Level(logLevel)

	app := &cli.App{
		Name:        "flightsearch",
		Description: "Direct and one-stop flight journey search",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			catalog.RegisterCLI(),
			searchCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
