package main

import (
	"encoding/json"
	"os"

	"github.com/kr/pretty"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/global"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/database"
	"github.com/travigo/flightsearch/pkg/util"
	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "run a single journey search and print the ranked journeys",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "date",
				Usage:    "departure date of the first leg, YYYY-MM-DD",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "from",
				Usage:    "origin city code",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "to",
				Usage:    "destination city code",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "print Go values instead of JSON",
			},
		}, global.Flags()...),
		Action: func(c *cli.Context) error {
			date, err := util.ParseDate(c.String("date"))
			if err != nil {
				return err
			}

			options, err := global.OptionsFromCLI(c)
			if err != nil {
				return err
			}

			aggregator, err := global.Setup(options)
			if err != nil {
				return err
			}
			defer database.Disconnect()

			journeys, err := dataaggregator.Lookup[[]ctdf.Journey](aggregator, query.JourneySearch{
				SearchRequest: ctdf.SearchRequest{
					Date:     date,
					FromCity: c.String("from"),
					ToCity:   c.String("to"),
				},
			})
			if err != nil {
				return err
			}

			if c.Bool("pretty") {
				for _, journey := range journeys {
					pretty.Println(journey)
				}
				return nil
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			return encoder.Encode(journeys)
		},
	}
}
