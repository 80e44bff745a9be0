package journeyplanner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/stats"
)

func (s Source) JourneySearchQuery(q query.JourneySearch) ([]ctdf.Journey, error) {
	ctx := context.Background()
	cacheKey := s.CacheKey(q)

	if s.Cache != nil {
		var cached []ctdf.Journey
		if hit, err := s.Cache.GetJSON(ctx, cacheKey, &cached); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to read cached journey search")
		} else if hit {
			stats.RecordCacheLookup(true)
			return cached, nil
		}

		stats.RecordCacheLookup(false)
	}

	timer := stats.StartSearchTimer()
	journeys, err := s.Planner.Search(ctx, q.SearchRequest)
	timer.ObserveDuration()

	if err != nil {
		stats.RecordSearch(stats.SearchOutcomeError, 0)
		return nil, err
	}

	stats.RecordSearch(stats.SearchOutcomeSuccess, len(journeys))

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, cacheKey, journeys); err != nil {
			log.Warn().Err(err).Str("key", cacheKey).Msg("Failed to cache journey search")
		}
	}

	return journeys, nil
}

// CacheKey includes the planner limits so deployments sharing a Redis with different limits never see each other's results
func (s Source) CacheKey(q query.JourneySearch) string {
	return fmt.Sprintf("%s/%s/%s", q.CacheKey(), s.Planner.MaxConnectionWait(), s.Planner.MaxTotalDuration())
}
