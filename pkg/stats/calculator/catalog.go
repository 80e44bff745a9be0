package calculator

import (
	"time"

	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/util"
)

type CatalogStats struct {
	Total int `json:"total"`

	Origins      map[string]int `json:"origins"`
	Destinations map[string]int `json:"destinations"`
	Dates        map[string]int `json:"dates"`

	FirstDeparture *time.Time `json:"first_departure,omitempty"`
	LastDeparture  *time.Time `json:"last_departure,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

func GetCatalogStats(events []*ctdf.FlightEvent) CatalogStats {
	stats := CatalogStats{
		Total:        len(events),
		Origins:      CountBy(events, func(e *ctdf.FlightEvent) string { return e.FromCity }),
		Destinations: CountBy(events, func(e *ctdf.FlightEvent) string { return e.ToCity }),
		Dates: CountBy(events, func(e *ctdf.FlightEvent) string {
			return util.StartOfDay(e.DepartureTime).Format(ctdf.SearchDateFormat)
		}),
		Timestamp: time.Now(),
	}

	for _, event := range events {
		departure := event.DepartureTime

		if stats.FirstDeparture == nil || departure.Before(*stats.FirstDeparture) {
			stats.FirstDeparture = &departure
		}
		if stats.LastDeparture == nil || departure.After(*stats.LastDeparture) {
			stats.LastDeparture = &departure
		}
	}

	return stats
}

func CountBy[T any](records []T, key func(T) string) map[string]int {
	countMap := map[string]int{}

	for _, record := range records {
		countMap[key(record)]++
	}

	return countMap
}
