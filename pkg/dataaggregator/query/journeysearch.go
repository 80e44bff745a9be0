package query

import (
	"github.com/travigo/flightsearch/pkg/ctdf"
)

type JourneySearch struct {
	ctdf.SearchRequest
}
