package query

type FlightEvents struct {
	// Optional expr-lang expression, see catalog.NewFilter
	Filter string
}
