package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
)

func FlightEventsRouter(router fiber.Router, aggregator *dataaggregator.Aggregator) {
	router.Get("/", listFlightEvents(aggregator))
}

func listFlightEvents(aggregator *dataaggregator.Aggregator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := dataaggregator.Lookup[[]*ctdf.FlightEvent](aggregator, query.FlightEvents{
			Filter: c.Query("filter"),
		})
		if err != nil {
			log.Error().Err(err).Msg("Failed to list flight events")
			return sendLookupError(c, err)
		}

		groups := []string{"basic"}
		if c.QueryBool("detailed", false) {
			groups = append(groups, "detailed")
		}

		if events == nil {
			events = []*ctdf.FlightEvent{}
		}

		eventsReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, events)
		if err != nil {
			return sendError(c, fiber.StatusInternalServerError, "Sherrif could not reduce FlightEvents")
		}

		return c.JSON(eventsReduced)
	}
}
