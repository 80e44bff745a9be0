package ctdf

import (
	"fmt"
	"time"
)

type FlightEvent struct {
	EventID      string `groups:"detailed" json:"event_id" bson:"eventid"`
	FlightNumber string `groups:"basic" json:"flight_number" bson:"flightnumber"`

	FromCity string `groups:"basic" json:"from_city" bson:"fromcity"`
	ToCity   string `groups:"basic" json:"to_city" bson:"tocity"`

	DepartureTime time.Time `groups:"basic" json:"departure_time" bson:"departuretime"`
	ArrivalTime   time.Time `groups:"basic" json:"arrival_time" bson:"arrivaltime"`
}

// DepartsOn reports whether the event departs on the calendar date of the given time.
// Only the year, month and day are compared, the clock reading of either side is ignored.
func (f *FlightEvent) DepartsOn(date time.Time) bool {
	y1, m1, d1 := f.DepartureTime.Date()
	y2, m2, d2 := date.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}

func (f *FlightEvent) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}

func (f *FlightEvent) String() string {
	return fmt.Sprintf("%s %s->%s %s", f.FlightNumber, f.FromCity, f.ToCity, f.DepartureTime.Format(time.RFC3339))
}
