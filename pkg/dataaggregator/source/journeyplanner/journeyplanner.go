package journeyplanner

import (
	"reflect"

	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/dataaggregator/query"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source"
	"github.com/travigo/flightsearch/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/flightsearch/pkg/journeyplanner"
)

type Source struct {
	Planner *journeyplanner.Planner

	// Optional, searches go straight to the planner when nil
	Cache *cachedresults.Cache
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]ctdf.Journey{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q := q.(type) {
	case query.JourneySearch:
		return s.JourneySearchQuery(q)
	default:
		return nil, source.UnsupportedSourceError
	}
}
