package transforms

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/catalog"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

type Rules []*TransformDefinition

// LoadFile reads a YAML list of transform definitions, eg.
//
//	- match: {FromCity: HND}
//	  data: {FromCity: TYO}
func LoadFile(path string) (Rules, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules Rules
	if err := yaml.Unmarshal(contents, &rules); err != nil {
		return nil, fmt.Errorf("parse transforms %s: %w", path, err)
	}

	for i, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("transform %d in %s: %w", i, path, err)
		}
	}

	log.Info().Str("path", path).Int("rules", len(rules)).Msg("Loaded catalog transforms")

	return rules, nil
}

// Apply returns transformed copies of the events, rules run in order so later rules see earlier rewrites
func (r Rules) Apply(events []*ctdf.FlightEvent) []*ctdf.FlightEvent {
	transformed := make([]*ctdf.FlightEvent, 0, len(events))

	for _, event := range events {
		eventCopy := *event

		for _, rule := range r {
			rule.Transform(&eventCopy)
		}

		transformed = append(transformed, &eventCopy)
	}

	return transformed
}

// Provider applies the rules to everything the wrapped catalog lists
type Provider struct {
	Provider catalog.Provider
	Rules    Rules
}

func (p *Provider) ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error) {
	events, err := p.Provider.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return p.Rules.Apply(events), nil
}
