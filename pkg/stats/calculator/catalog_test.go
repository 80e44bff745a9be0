package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/flightsearch/pkg/ctdf"
)

func TestGetCatalogStats(t *testing.T) {
	events := []*ctdf.FlightEvent{
		{FlightNumber: "LH100", FromCity: "FRA", ToCity: "CDG", DepartureTime: time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC)},
		{FlightNumber: "AF101", FromCity: "CDG", ToCity: "LHR", DepartureTime: time.Date(2025, 4, 10, 11, 0, 0, 0, time.UTC)},
		{FlightNumber: "AF102", FromCity: "CDG", ToCity: "LHR", DepartureTime: time.Date(2025, 4, 11, 9, 15, 0, 0, time.UTC)},
	}

	stats := GetCatalogStats(events)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"FRA": 1, "CDG": 2}, stats.Origins)
	assert.Equal(t, map[string]int{"CDG": 1, "LHR": 2}, stats.Destinations)
	assert.Equal(t, map[string]int{"2025-04-10": 2, "2025-04-11": 1}, stats.Dates)

	require.NotNil(t, stats.FirstDeparture)
	require.NotNil(t, stats.LastDeparture)
	assert.Equal(t, events[0].DepartureTime, *stats.FirstDeparture)
	assert.Equal(t, events[2].DepartureTime, *stats.LastDeparture)
}

func TestGetCatalogStatsEmpty(t *testing.T) {
	stats := GetCatalogStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.Origins)
	assert.Nil(t, stats.FirstDeparture)
}
