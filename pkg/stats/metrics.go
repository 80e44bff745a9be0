package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	SearchOutcomeSuccess = "success"
	SearchOutcomeError   = "error"
)

var Registry = prometheus.NewRegistry()

var (
	searchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flightsearch_journey_searches_total",
		Help: "Journey searches run against the planner by outcome",
	}, []string{"outcome"})

	journeysReturned = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightsearch_journeys_returned",
		Help:    "Number of journeys returned per successful search",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	searchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "flightsearch_journey_search_duration_seconds",
		Help:    "Time spent loading the catalog and planning journeys",
		Buckets: prometheus.DefBuckets,
	})

	cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flightsearch_search_cache_lookups_total",
		Help: "Journey search cache lookups by result",
	}, []string{"result"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flightsearch_http_requests_total",
		Help: "HTTP requests handled by status code",
	}, []string{"code"})
)

func init() {
	Registry.MustRegister(
		searchesTotal,
		journeysReturned,
		searchDuration,
		cacheLookups,
		httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func RecordSearch(outcome string, journeys int) {
	searchesTotal.WithLabelValues(outcome).Inc()

	if outcome == SearchOutcomeSuccess {
		journeysReturned.Observe(float64(journeys))
	}
}

func RecordCacheLookup(hit bool) {
	if hit {
		cacheLookups.WithLabelValues("hit").Inc()
	} else {
		cacheLookups.WithLabelValues("miss").Inc()
	}
}

func RecordHTTPRequest(code string) {
	httpRequests.WithLabelValues(code).Inc()
}

func StartSearchTimer() *prometheus.Timer {
	return prometheus.NewTimer(searchDuration)
}
