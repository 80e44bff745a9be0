package api

import (
	"github.com/travigo/flightsearch/pkg/dataaggregator/global"
	"github.com/travigo/flightsearch/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "listen",
						Value:   ":8000",
						Usage:   "listen target for the web server",
						EnvVars: []string{"TRAVIGO_LISTEN"},
					},
					&cli.StringFlag{
						Name:    "prefix",
						Value:   "/api/v1",
						Usage:   "path prefix for all API routes",
						EnvVars: []string{"TRAVIGO_API_PREFIX"},
					},
					&cli.StringFlag{
						Name:    "environment",
						Value:   "development",
						Usage:   "deployment environment reported by the version endpoint",
						EnvVars: []string{"TRAVIGO_ENVIRONMENT"},
					},
					&cli.StringFlag{
						Name:    "cors-origins",
						Value:   "http://localhost:3000,http://localhost:8000",
						Usage:   "comma separated list of allowed CORS origins",
						EnvVars: []string{"TRAVIGO_CORS_ORIGINS"},
					},
				}, global.Flags()...),
				Action: func(c *cli.Context) error {
					options, err := global.OptionsFromCLI(c)
					if err != nil {
						return err
					}

					aggregator, err := global.Setup(options)
					if err != nil {
						return err
					}

					return SetupServer(aggregator, ServerOptions{
						Listen:      c.String("listen"),
						Prefix:      c.String("prefix"),
						Environment: c.String("environment"),
						CORSOrigins: util.SplitList(c.String("cors-origins")),
					})
				},
			},
		},
	}
}
