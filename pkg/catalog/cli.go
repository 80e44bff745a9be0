package catalog

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/flightsearch/pkg/database"
	"github.com/travigo/flightsearch/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Inspect and load flight catalogs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print every flight event in a catalog as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "catalog",
						Value:   "data/flight_events.json",
						Usage:   "flight catalog file, directory or mongodb:// URI",
						EnvVars: []string{"TRAVIGO_FLIGHT_CATALOG"},
					},
					&cli.StringFlag{
						Name:  "filter",
						Usage: "only print events matching this expression, eg. FromCity == \"HKG\"",
					},
				},
				Action: func(c *cli.Context) error {
					source := c.String("catalog")

					if IsMongoURI(source) {
						if err := database.ConnectURI(source); err != nil {
							return err
						}
						defer database.Disconnect()
					}

					provider, err := NewProvider(source)
					if err != nil {
						return err
					}

					events, err := provider.ListAll(c.Context)
					if err != nil {
						return err
					}

					if expression := c.String("filter"); expression != "" {
						filter, err := NewFilter(expression)
						if err != nil {
							return err
						}

						if events, err = filter.Apply(events); err != nil {
							return err
						}
					}

					encoder := json.NewEncoder(os.Stdout)
					encoder.SetIndent("", "  ")

					return encoder.Encode(events)
				},
			},
			{
				Name:  "import",
				Usage: "load a catalog file or directory into the MongoDB flight_events collection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "catalog file or directory to import",
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "invalidate-cache",
						Usage:   "drop cached journey searches from Redis once the import is done",
						EnvVars: []string{"TRAVIGO_INVALIDATE_SEARCH_CACHE"},
					},
				},
				Action: func(c *cli.Context) error {
					provider, err := NewProvider(c.String("file"))
					if err != nil {
						return err
					}

					events, err := provider.ListAll(c.Context)
					if err != nil {
						return err
					}

					if err := database.Connect(); err != nil {
						return err
					}
					defer database.Disconnect()

					mongoProvider := &MongoProvider{Collection: database.GetCollection(database.FlightEventsCollection)}

					count, err := mongoProvider.Import(c.Context, events)
					if err != nil {
						return err
					}

					log.Info().Str("file", c.String("file")).Int64("events", count).Msg("Catalog import complete")

					if c.Bool("invalidate-cache") {
						if err := redis_client.Connect(); err != nil {
							return err
						}

						resultsCache := &cachedresults.Cache{}
						resultsCache.Setup(redis_client.Client, 0)

						if err := resultsCache.Invalidate(c.Context); err != nil {
							return err
						}

						log.Info().Msg("Invalidated cached journey searches")
					}

					return nil
				},
			},
		},
	}
}
