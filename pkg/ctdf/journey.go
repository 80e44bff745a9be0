package ctdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

const (
	JourneyConnectionsDirect  = 1
	JourneyConnectionsOneStop = 2
)

type JourneySegment struct {
	FlightNumber string `json:"flight_number"`

	FromCity string `json:"from_city"`
	ToCity   string `json:"to_city"`

	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
}

// NewJourneySegment takes a value copy of the fields of the event so the resulting
// journey holds no reference back into the catalog
func NewJourneySegment(event *FlightEvent) (JourneySegment, error) {
	var segment JourneySegment

	if err := copier.Copy(&segment, event); err != nil {
		return JourneySegment{}, fmt.Errorf("copy flight event %s: %w", event.FlightNumber, err)
	}

	return segment, nil
}

type Journey struct {
	Connections int              `json:"connections"`
	Path        []JourneySegment `json:"path"`
}

func NewJourney(events ...*FlightEvent) (Journey, error) {
	journey := Journey{
		Connections: len(events),
		Path:        make([]JourneySegment, 0, len(events)),
	}

	for _, event := range events {
		segment, err := NewJourneySegment(event)
		if err != nil {
			return Journey{}, err
		}

		journey.Path = append(journey.Path, segment)
	}

	return journey, nil
}

func (j *Journey) Origin() string {
	if len(j.Path) == 0 {
		return ""
	}

	return j.Path[0].FromCity
}

func (j *Journey) Destination() string {
	if len(j.Path) == 0 {
		return ""
	}

	return j.Path[len(j.Path)-1].ToCity
}

// ConnectingCity is empty for direct journeys
func (j *Journey) ConnectingCity() string {
	if len(j.Path) < 2 {
		return ""
	}

	return j.Path[0].ToCity
}

// TotalDuration is the elapsed time from the first departure to the last arrival,
// layovers included
func (j *Journey) TotalDuration() time.Duration {
	if len(j.Path) == 0 {
		return 0
	}

	return j.Path[len(j.Path)-1].ArrivalTime.Sub(j.Path[0].DepartureTime)
}

func (j *Journey) FlightNumbers() []string {
	flightNumbers := make([]string, 0, len(j.Path))
	for _, segment := range j.Path {
		flightNumbers = append(flightNumbers, segment.FlightNumber)
	}

	return flightNumbers
}

func (j *Journey) String() string {
	return fmt.Sprintf("%s (%d, %s)", strings.Join(j.FlightNumbers(), "+"), j.Connections, j.TotalDuration())
}
