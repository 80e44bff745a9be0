package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/flightsearch/pkg/api/routes"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/stats"
)

type ServerOptions struct {
	Listen      string
	Prefix      string
	Environment string
	CORSOrigins []string
}

func NewApp(aggregator *dataaggregator.Aggregator, options ServerOptions) *fiber.App {
	webApp := fiber.New(fiber.Config{
		AppName:               routes.Name,
		DisableStartupMessage: true,
	})
	webApp.Use(recover.New())
	webApp.Use(NewLogger())

	if len(options.CORSOrigins) > 0 {
		origins := strings.Join(options.CORSOrigins, ",")

		webApp.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowCredentials: origins != "*",
		}))
	}

	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(stats.Registry, promhttp.HandlerOpts{})))

	group := webApp.Group(options.Prefix)

	group.Get("/version", routes.APIVersion(options.Environment))

	routes.FlightEventsRouter(group.Group("/flight-events"), aggregator)
	routes.JourneysRouter(group.Group("/journeys"), aggregator)
	routes.StatsRouter(group.Group("/stats"), aggregator)

	return webApp
}

func SetupServer(aggregator *dataaggregator.Aggregator, options ServerOptions) error {
	webApp := NewApp(aggregator, options)

	return webApp.Listen(options.Listen)
}
