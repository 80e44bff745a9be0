package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSearch(t *testing.T) {
	successBefore := testutil.ToFloat64(searchesTotal.WithLabelValues(SearchOutcomeSuccess))
	errorBefore := testutil.ToFloat64(searchesTotal.WithLabelValues(SearchOutcomeError))

	RecordSearch(SearchOutcomeSuccess, 3)
	RecordSearch(SearchOutcomeError, 0)

	assert.Equal(t, successBefore+1, testutil.ToFloat64(searchesTotal.WithLabelValues(SearchOutcomeSuccess)))
	assert.Equal(t, errorBefore+1, testutil.ToFloat64(searchesTotal.WithLabelValues(SearchOutcomeError)))
}

func TestRecordCacheLookup(t *testing.T) {
	hitBefore := testutil.ToFloat64(cacheLookups.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(cacheLookups.WithLabelValues("miss"))

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	assert.Equal(t, hitBefore+1, testutil.ToFloat64(cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, missBefore+2, testutil.ToFloat64(cacheLookups.WithLabelValues("miss")))
}

func TestRegistryGathers(t *testing.T) {
	StartSearchTimer().ObserveDuration()
	RecordHTTPRequest("200")

	families, err := Registry.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, family := range families {
		names[family.GetName()] = true
	}

	assert.True(t, names["flightsearch_journey_search_duration_seconds"])
	assert.True(t, names["flightsearch_http_requests_total"])
}
