package transforms

import (
	"fmt"
	"reflect"

	"github.com/travigo/flightsearch/pkg/ctdf"
)

// TransformDefinition rewrites the Data fields of every flight event whose fields equal all of Match
type TransformDefinition struct {
	Match map[string]string `yaml:"match"`
	Data  map[string]string `yaml:"data"`
}

var flightEventType = reflect.TypeOf(ctdf.FlightEvent{})

// Validate checks every referenced field exists on a flight event and holds a string
func (t *TransformDefinition) Validate() error {
	if len(t.Match) == 0 {
		return fmt.Errorf("transform has no match fields")
	}

	for _, fields := range []map[string]string{t.Match, t.Data} {
		for key := range fields {
			field, ok := flightEventType.FieldByName(key)
			if !ok {
				return fmt.Errorf("unknown flight event field %q", key)
			}
			if field.Type.Kind() != reflect.String {
				return fmt.Errorf("flight event field %q is not a string", key)
			}
		}
	}

	return nil
}

func (t *TransformDefinition) Matches(event *ctdf.FlightEvent) bool {
	inputValue := reflect.ValueOf(event).Elem()

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || field.String() != value {
			return false
		}
	}

	return true
}

func (t *TransformDefinition) Transform(event *ctdf.FlightEvent) {
	if !t.Matches(event) {
		return
	}

	inputValue := reflect.ValueOf(event).Elem()

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if field.IsValid() && field.CanSet() {
			field.SetString(value)
		}
	}
}
