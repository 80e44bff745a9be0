package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/stats/calculator"
)

func StatsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/catalog", func(c *fiber.Ctx) error {
		stats, err := dataaggregator.Lookup[*calculator.CatalogStats](aggregator, query.CatalogStats{})
		if err != nil {
			return sendLookupError(c, err)
		}

		return c.JSON(stats)
	})
}
