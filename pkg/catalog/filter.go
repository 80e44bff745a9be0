package catalog

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/util"
)

var ErrInvalidFilter = errors.New("invalid flight event filter")

// Filter is a compiled boolean expression evaluated against a single flight event,
// eg. `FromCity == "EZE" && DepartureTime.Hour() < 12`
type Filter struct {
	Expression string

	program *vm.Program
}

func NewFilter(expression string) (*Filter, error) {
	program, err := expr.Compile(expression, expr.Env(ctdf.FlightEvent{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrInvalidFilter, expression, err)
	}

	return &Filter{
		Expression: expression,
		program:    program,
	}, nil
}

func (f *Filter) Match(event *ctdf.FlightEvent) (bool, error) {
	output, err := expr.Run(f.program, *event)
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q on %s: %w", f.Expression, event.FlightNumber, err)
	}

	return output.(bool), nil
}

// Apply returns the events matching the filter. The input slice is left untouched.
func (f *Filter) Apply(events []*ctdf.FlightEvent) ([]*ctdf.FlightEvent, error) {
	filtered := make([]*ctdf.FlightEvent, len(events))
	copy(filtered, events)

	var matchErr error
	util.InPlaceFilter(&filtered, func(event *ctdf.FlightEvent) bool {
		if matchErr != nil {
			return false
		}

		matched, err := f.Match(event)
		if err != nil {
			matchErr = err
			return false
		}

		return matched
	})

	if matchErr != nil {
		return nil, matchErr
	}

	return filtered, nil
}
