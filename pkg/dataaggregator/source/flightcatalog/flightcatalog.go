package flightcatalog

import (
	"context"
	"reflect"

	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source"
	"github.com/travigo/flightsearch/pkg/stats/calculator"
)

type Source struct {
	Provider catalog.Provider
}

func (s Source) GetName() string {
	return "Flight Catalog"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.FlightEvent{}),
		reflect.TypeOf(calculator.CatalogStats{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.FlightEvents:
		return s.FlightEventsQuery(q)
	case query.CatalogStats:
		return s.CatalogStatsQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) FlightEventsQuery(q query.FlightEvents) ([]*ctdf.FlightEvent, error) {
	var filter *catalog.Filter
	if q.Filter != "" {
		var err error
		if filter, err = catalog.NewFilter(q.Filter); err != nil {
			return nil, err
		}
	}

	events, err := s.Provider.ListAll(context.Background())
	if err != nil {
		return nil, err
	}

	if filter == nil {
		return events, nil
	}

	return filter.Apply(events)
}

func (s Source) CatalogStatsQuery(q query.CatalogStats) (*calculator.CatalogStats, error) {
	events, err := s.Provider.ListAll(context.Background())
	if err != nil {
		return nil, err
	}

	stats := calculator.GetCatalogStats(events)

	return &stats, nil
}
