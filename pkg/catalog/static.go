package catalog

import (
	"context"

	"github.com/travigo/flightsearch/pkg/ctdf"
)

type StaticProvider struct {
	Events []*ctdf.FlightEvent
}

func (s *StaticProvider) ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error) {
	return s.Events, nil
}
