package ctdf

import (
	"fmt"
	"time"
)

const SearchDateFormat = "2006-01-02"

type SearchRequest struct {
	Date     time.Time
	FromCity string
	ToCity   string
}

func (r SearchRequest) CacheKey() string {
	return fmt.Sprintf("journeysearch/%s/%s/%s", r.Date.Format(SearchDateFormat), r.FromCity, r.ToCity)
}
