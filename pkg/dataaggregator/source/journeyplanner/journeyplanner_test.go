package journeyplanner

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/flightsearch/pkg/journeyplanner"
)

func testCatalog() *catalog.StaticProvider {
	return &catalog.StaticProvider{Events: []*ctdf.FlightEvent{
		{EventID: "1", FlightNumber: "AR1000", FromCity: "EZE", ToCity: "MIA", DepartureTime: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC), ArrivalTime: time.Date(2025, 2, 1, 16, 0, 0, 0, time.UTC)},
		{EventID: "4", FlightNumber: "LA3000", FromCity: "EZE", ToCity: "GRU", DepartureTime: time.Date(2025, 2, 1, 7, 0, 0, 0, time.UTC), ArrivalTime: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)},
		{EventID: "5", FlightNumber: "AA3001", FromCity: "GRU", ToCity: "MIA", DepartureTime: time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC), ArrivalTime: time.Date(2025, 2, 1, 18, 30, 0, 0, time.UTC)},
	}}
}

func searchQuery() query.JourneySearch {
	return query.JourneySearch{SearchRequest: ctdf.SearchRequest{
		Date:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		FromCity: "EZE",
		ToCity:   "MIA",
	}}
}

func TestJourneySearchThroughAggregator(t *testing.T) {
	aggregator := dataaggregator.New(Source{Planner: journeyplanner.New(testCatalog())})

	journeys, err := dataaggregator.Lookup[[]ctdf.Journey](aggregator, searchQuery())
	require.NoError(t, err)

	require.Len(t, journeys, 2)
	assert.Equal(t, []string{"AR1000"}, journeys[0].FlightNumbers())
	assert.Equal(t, []string{"LA3000", "AA3001"}, journeys[1].FlightNumbers())
}

func TestUnsupportedQuery(t *testing.T) {
	_, err := Source{Planner: journeyplanner.New(testCatalog())}.Lookup(query.FlightEvents{})
	assert.Error(t, err)
}

func TestJourneySearchCached(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	resultsCache := &cachedresults.Cache{}
	resultsCache.Setup(client, time.Minute)

	provider := testCatalog()
	searchSource := Source{Planner: journeyplanner.New(provider), Cache: resultsCache}

	first, err := searchSource.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	require.Len(t, first, 2)

	assert.True(t, server.Exists(searchSource.CacheKey(searchQuery())))

	// Served from the cache even though the catalog no longer has the flights
	provider.Events = nil

	second, err := searchSource.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, resultsCache.Invalidate(context.Background()))

	third, err := searchSource.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	assert.Empty(t, third)
}

func TestJourneySearchCacheExpiry(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	resultsCache := &cachedresults.Cache{}
	resultsCache.Setup(client, time.Minute)

	searchSource := Source{Planner: journeyplanner.New(testCatalog()), Cache: resultsCache}

	_, err := searchSource.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	require.True(t, server.Exists(searchSource.CacheKey(searchQuery())))

	server.FastForward(2 * time.Minute)

	assert.False(t, server.Exists(searchSource.CacheKey(searchQuery())))
}

func TestJourneySearchCacheSeparatesPlannerLimits(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	resultsCache := &cachedresults.Cache{}
	resultsCache.Setup(client, time.Minute)

	defaultLimits := Source{Planner: journeyplanner.New(testCatalog()), Cache: resultsCache}
	shortLayovers := Source{
		Planner: journeyplanner.New(testCatalog(), journeyplanner.WithMaxConnectionWait(time.Hour)),
		Cache:   resultsCache,
	}

	assert.NotEqual(t, defaultLimits.CacheKey(searchQuery()), shortLayovers.CacheKey(searchQuery()))

	journeys, err := defaultLimits.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	require.Len(t, journeys, 2)

	// LA3000+AA3001 has a two hour layover so only the direct flight fits a one hour limit
	journeys, err = shortLayovers.JourneySearchQuery(searchQuery())
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, []string{"AR1000"}, journeys[0].FlightNumbers())
}
