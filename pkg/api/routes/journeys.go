package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/util"
)

func JourneysRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/search", searchJourneys(aggregator))
}

func searchJourneys(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateString := c.Query("date")
		fromCity := c.Query("from_city")
		toCity := c.Query("to_city")

		if dateString == "" || fromCity == "" || toCity == "" {
			return sendError(c, fiber.StatusBadRequest, "Parameters date, from_city and to_city are required")
		}

		date, err := util.ParseDate(dateString)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error":    "Parameter date should be an ISO8601 date or datetime",
				"detailed": err.Error(),
			})
		}

		journeys, err := dataaggregator.Lookup[[]ctdf.Journey](aggregator, query.JourneySearch{
			SearchRequest: ctdf.SearchRequest{
				Date:     date,
				FromCity: fromCity,
				ToCity:   toCity,
			},
		})
		if err != nil {
			log.Error().Err(err).Str("from", fromCity).Str("to", toCity).Msg("Journey search failed")
			return sendLookupError(c, err)
		}

		if journeys == nil {
			journeys = []ctdf.Journey{}
		}

		return c.JSON(journeys)
	}
}
