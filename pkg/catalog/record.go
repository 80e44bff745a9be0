package catalog

import (
	"fmt"

	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/util"
)

// Record is the on-disk representation of a flight event
type Record struct {
	EventID       string `json:"event_id" yaml:"event_id" csv:"event_id"`
	FlightNumber  string `json:"flight_number" yaml:"flight_number" csv:"flight_number"`
	From          string `json:"from" yaml:"from" csv:"from"`
	To            string `json:"to" yaml:"to" csv:"to"`
	DepartureTime string `json:"departure_time" yaml:"departure_time" csv:"departure_time"`
	ArrivalTime   string `json:"arrival_time" yaml:"arrival_time" csv:"arrival_time"`
}

func (r *Record) ToFlightEvent() (*ctdf.FlightEvent, error) {
	departureTime, err := util.ParseNaiveTimestamp(r.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("event %s departure_time: %w", r.EventID, err)
	}

	arrivalTime, err := util.ParseNaiveTimestamp(r.ArrivalTime)
	if err != nil {
		return nil, fmt.Errorf("event %s arrival_time: %w", r.EventID, err)
	}

	return &ctdf.FlightEvent{
		EventID:       r.EventID,
		FlightNumber:  r.FlightNumber,
		FromCity:      r.From,
		ToCity:        r.To,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
	}, nil
}

func recordsToFlightEvents(records []*Record) ([]*ctdf.FlightEvent, error) {
	events := make([]*ctdf.FlightEvent, 0, len(records))

	for _, record := range records {
		event, err := record.ToFlightEvent()
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	return events, nil
}
