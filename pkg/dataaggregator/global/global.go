package global

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source/flightcatalog"
	journeyplannersource "github.com/travigo/flightsearch/pkg/dataaggregator/source/journeyplanner"
	"github.com/travigo/flightsearch/pkg/database"
	"github.com/travigo/flightsearch/pkg/journeyplanner"
	"github.com/travigo/flightsearch/pkg/redis_client"
	"github.com/travigo/flightsearch/pkg/transforms"
	"github.com/travigo/flightsearch/pkg/util"
	"github.com/urfave/cli/v2"
)

type Options struct {
	// File, directory or mongodb:// URI
	CatalogSource string

	// Optional YAML file of catalog rewrite rules
	TransformsFile string

	MaxConnectionWait time.Duration
	MaxTotalDuration  time.Duration

	// Zero disables the Redis result cache
	CacheTTL time.Duration
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "catalog",
			Value:   "data/flight_events.json",
			Usage:   "flight catalog file, directory or mongodb:// URI",
			EnvVars: []string{"TRAVIGO_FLIGHT_CATALOG"},
		},
		&cli.StringFlag{
			Name:    "transforms",
			Usage:   "YAML file of rewrite rules applied to every flight event as it is loaded",
			EnvVars: []string{"TRAVIGO_CATALOG_TRANSFORMS"},
		},
		&cli.StringFlag{
			Name:    "max-connection-wait",
			Value:   "PT4H",
			Usage:   "longest allowed layover as an ISO-8601 duration",
			EnvVars: []string{"TRAVIGO_MAX_CONNECTION_WAIT"},
		},
		&cli.StringFlag{
			Name:    "max-total-duration",
			Value:   "P1D",
			Usage:   "longest allowed journey as an ISO-8601 duration",
			EnvVars: []string{"TRAVIGO_MAX_TOTAL_DURATION"},
		},
		&cli.StringFlag{
			Name:    "cache-ttl",
			Value:   "",
			Usage:   "cache search results in Redis for this ISO-8601 duration (eg. PT90M), disabled when empty",
			EnvVars: []string{"TRAVIGO_SEARCH_CACHE_TTL"},
		},
	}
}

func OptionsFromCLI(c *cli.Context) (Options, error) {
	options := Options{
		CatalogSource:  c.String("catalog"),
		TransformsFile: c.String("transforms"),
	}

	var err error

	if options.MaxConnectionWait, err = util.ParseISODuration(c.String("max-connection-wait")); err != nil {
		return options, fmt.Errorf("max-connection-wait: %w", err)
	}

	if options.MaxTotalDuration, err = util.ParseISODuration(c.String("max-total-duration")); err != nil {
		return options, fmt.Errorf("max-total-duration: %w", err)
	}

	if cacheTTL := c.String("cache-ttl"); cacheTTL != "" {
		if options.CacheTTL, err = util.ParseISODuration(cacheTTL); err != nil {
			return options, fmt.Errorf("cache-ttl: %w", err)
		}
	}

	return options, nil
}

// Setup connects whatever backing stores the options need and registers the data sources
func Setup(options Options) (*dataaggregator.Aggregator, error) {
	if catalog.IsMongoURI(options.CatalogSource) {
		if err := database.ConnectURI(options.CatalogSource); err != nil {
			return nil, err
		}
	}

	provider, err := catalog.NewProvider(options.CatalogSource)
	if err != nil {
		return nil, err
	}

	if options.TransformsFile != "" {
		rules, err := transforms.LoadFile(options.TransformsFile)
		if err != nil {
			return nil, err
		}

		provider = &transforms.Provider{Provider: provider, Rules: rules}
	}

	var plannerOptions []journeyplanner.Option
	if options.MaxConnectionWait > 0 {
		plannerOptions = append(plannerOptions, journeyplanner.WithMaxConnectionWait(options.MaxConnectionWait))
	}
	if options.MaxTotalDuration > 0 {
		plannerOptions = append(plannerOptions, journeyplanner.WithMaxTotalDuration(options.MaxTotalDuration))
	}

	planner := journeyplanner.New(provider, plannerOptions...)

	searchSource := journeyplannersource.Source{Planner: planner}

	if options.CacheTTL > 0 {
		if err := redis_client.Connect(); err != nil {
			return nil, err
		}

		searchSource.Cache = &cachedresults.Cache{}
		searchSource.Cache.Setup(redis_client.Client, options.CacheTTL)
	}

	log.Info().
		Str("catalog", options.CatalogSource).
		Str("max_connection_wait", planner.MaxConnectionWait().String()).
		Str("max_total_duration", planner.MaxTotalDuration().String()).
		Bool("cache", searchSource.Cache != nil).
		Msg("Journey search configured")

	return dataaggregator.New(
		searchSource,
		flightcatalog.Source{Provider: provider},
	), nil
}
