package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/flightsearch/pkg/ctdf"
)

const jsonCatalog = `[
  {"event_id": "1", "flight_number": "AR1000", "from": "EZE", "to": "MIA", "departure_time": "2025-02-01T08:00:00", "arrival_time": "2025-02-01T16:00:00"},
  {"event_id": "2", "flight_number": "IB2001", "from": "MAD", "to": "MIA", "departure_time": "2025-02-01T22:00:00", "arrival_time": "2025-02-02T05:00:00"}
]`

const yamlCatalog = `- event_id: "3"
  flight_number: LA3000
  from: EZE
  to: GRU
  departure_time: "2025-02-01T07:00:00"
  arrival_time: "2025-02-01T10:00:00"
`

const csvCatalog = `event_id,flight_number,from,to,departure_time,arrival_time
4,AA3001,GRU,MIA,2025-02-01T12:00:00,2025-02-01T18:30:00
5,AA9999,GRU,MIA,2025-02-01T16:00:00,2025-02-01T22:00:00
`

func writeFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func flightNumbers(events []*ctdf.FlightEvent) []string {
	var numbers []string
	for _, event := range events {
		numbers = append(numbers, event.FlightNumber)
	}
	sort.Strings(numbers)

	return numbers
}

func TestFileProviderJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flight_events.json", jsonCatalog)

	provider := FileProvider{Path: path}
	events, err := provider.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, &ctdf.FlightEvent{
		EventID:       "1",
		FlightNumber:  "AR1000",
		FromCity:      "EZE",
		ToCity:        "MIA",
		DepartureTime: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, 2, 1, 16, 0, 0, 0, time.UTC),
	}, events[0])
	assert.Equal(t, time.Date(2025, 2, 2, 5, 0, 0, 0, time.UTC), events[1].ArrivalTime)
}

func TestFileProviderYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flight_events.yaml", yamlCatalog)

	provider := FileProvider{Path: path}
	events, err := provider.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "LA3000", events[0].FlightNumber)
	assert.Equal(t, "GRU", events[0].ToCity)
}

func TestFileProviderCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flight_events.csv", csvCatalog)

	provider := FileProvider{Path: path}
	events, err := provider.ListAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"AA3001", "AA9999"}, flightNumbers(events))
	assert.Equal(t, time.Date(2025, 2, 1, 18, 30, 0, 0, time.UTC), events[0].ArrivalTime)
}

func TestFileProviderDataUnavailable(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", writeFile(t, dir, "broken.json", `[{"event_id": `)},
		{"bad timestamp", writeFile(t, dir, "bad_time.json", `[{"event_id": "1", "departure_time": "tomorrow", "arrival_time": "2025-02-01T10:00:00"}]`)},
		{"unsupported format", writeFile(t, dir, "catalog.xml", `<events/>`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			provider := FileProvider{Path: test.path}

			events, err := provider.ListAll(context.Background())
			assert.Nil(t, events)
			assert.ErrorIs(t, err, ErrDataUnavailable)
		})
	}
}

func TestParseRecordsEmptyDocuments(t *testing.T) {
	for _, format := range []string{"json", "yaml", "csv"} {
		input := ""
		if format == "json" {
			input = "[]"
		}

		events, err := ParseRecords(format, strings.NewReader(input))
		require.NoError(t, err, format)
		assert.Empty(t, events, format)
	}
}

func TestDirectoryProvider(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "south-america.json", jsonCatalog)
	writeFile(t, dir, "brazil/gru.yml", yamlCatalog)
	writeFile(t, dir, "brazil/gru-mia.csv", csvCatalog)
	writeFile(t, dir, "README.md", "not a catalog")

	provider := DirectoryProvider{Path: dir}
	events, err := provider.ListAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"AA3001", "AA9999", "AR1000", "IB2001", "LA3000"}, flightNumbers(events))
}

func TestDirectoryProviderPropagatesFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", jsonCatalog)
	writeFile(t, dir, "bad.json", `{`)

	provider := DirectoryProvider{Path: dir}
	_, err := provider.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestDirectoryProviderMissingDirectory(t *testing.T) {
	provider := DirectoryProvider{Path: filepath.Join(t.TempDir(), "nope")}

	_, err := provider.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestNewProvider(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "flight_events.json", jsonCatalog)

	provider, err := NewProvider(path)
	require.NoError(t, err)
	assert.IsType(t, &FileProvider{}, provider)

	provider, err = NewProvider(dir)
	require.NoError(t, err)
	assert.IsType(t, &DirectoryProvider{}, provider)

	_, err = NewProvider(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrDataUnavailable)

	_, err = NewProvider("")
	assert.Error(t, err)
}

func TestStaticProvider(t *testing.T) {
	events := []*ctdf.FlightEvent{{FlightNumber: "AR1000"}}
	provider := StaticProvider{Events: events}

	listed, err := provider.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, events, listed)
}

func TestMongoProviderImportNothing(t *testing.T) {
	provider := MongoProvider{}

	count, err := provider.Import(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
