package journeyplanner

import (
	"cmp"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"golang.org/x/exp/slices"
)

const (
	DefaultMaxConnectionWait = 4 * time.Hour
	DefaultMaxTotalDuration  = 24 * time.Hour
)

// Planner finds direct and single connection journeys between two cities using the
// events returned by a flight catalog. It holds no mutable state so a single Planner
// can serve concurrent searches.
type Planner struct {
	catalog catalog.Provider

	maxConnectionWait time.Duration
	maxTotalDuration  time.Duration
}

type Option func(*Planner)

// WithMaxConnectionWait sets the longest layover allowed between the two legs (inclusive)
func WithMaxConnectionWait(wait time.Duration) Option {
	return func(p *Planner) {
		p.maxConnectionWait = wait
	}
}

// WithMaxTotalDuration sets the longest first departure to last arrival span allowed (inclusive)
func WithMaxTotalDuration(duration time.Duration) Option {
	return func(p *Planner) {
		p.maxTotalDuration = duration
	}
}

func New(provider catalog.Provider, opts ...Option) *Planner {
	planner := &Planner{
		catalog:           provider,
		maxConnectionWait: DefaultMaxConnectionWait,
		maxTotalDuration:  DefaultMaxTotalDuration,
	}

	for _, opt := range opts {
		opt(planner)
	}

	return planner
}

func (p *Planner) MaxConnectionWait() time.Duration {
	return p.maxConnectionWait
}

func (p *Planner) MaxTotalDuration() time.Duration {
	return p.maxTotalDuration
}

// Search returns every direct and one-stop journey from FromCity to ToCity whose first leg
// departs on the requested date, ordered by number of connections and then total duration.
// Errors only come from the catalog and are returned unchanged.
func (p *Planner) Search(ctx context.Context, request ctdf.SearchRequest) ([]ctdf.Journey, error) {
	events, err := p.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	flightsByOrigin := indexByOrigin(events, request.Date)

	journeys := []ctdf.Journey{}

	for _, first := range flightsByOrigin[request.FromCity] {
		if first.ToCity == request.ToCity {
			journey, err := ctdf.NewJourney(first)
			if err != nil {
				return nil, err
			}

			journeys = append(journeys, journey)
		}

		for _, second := range flightsByOrigin[first.ToCity] {
			if !p.validConnection(first, second, request.ToCity) {
				continue
			}

			journey, err := ctdf.NewJourney(first, second)
			if err != nil {
				return nil, err
			}

			journeys = append(journeys, journey)
		}
	}

	rank(journeys)

	log.Debug().
		Str("date", request.Date.Format(ctdf.SearchDateFormat)).
		Str("from", request.FromCity).
		Str("to", request.ToCity).
		Int("catalog", len(events)).
		Int("journeys", len(journeys)).
		Msg("Journey search")

	return journeys, nil
}

// indexByOrigin groups the events departing on the date by their origin city.
// Events departing on other dates are dropped entirely, including potential second legs.
func indexByOrigin(events []*ctdf.FlightEvent, date time.Time) map[string][]*ctdf.FlightEvent {
	flightsByOrigin := map[string][]*ctdf.FlightEvent{}

	for _, event := range events {
		if !event.DepartsOn(date) {
			continue
		}

		flightsByOrigin[event.FromCity] = append(flightsByOrigin[event.FromCity], event)
	}

	return flightsByOrigin
}

func (p *Planner) validConnection(first *ctdf.FlightEvent, second *ctdf.FlightEvent, destination string) bool {
	if second.ToCity != destination {
		return false
	}

	// The connecting flight must leave strictly after the first leg lands
	if !second.DepartureTime.After(first.ArrivalTime) {
		return false
	}

	if second.DepartureTime.Sub(first.ArrivalTime) > p.maxConnectionWait {
		return false
	}

	if second.ArrivalTime.Sub(first.DepartureTime) > p.maxTotalDuration {
		return false
	}

	return true
}

// rank orders by connections then total duration. Stable so equal keys keep enumeration order.
func rank(journeys []ctdf.Journey) {
	slices.SortStableFunc(journeys, func(a, b ctdf.Journey) int {
		if c := cmp.Compare(a.Connections, b.Connections); c != 0 {
			return c
		}

		return cmp.Compare(a.TotalDuration(), b.TotalDuration())
	})
}
