package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/travigo/flightsearch/pkg/ctdf"
	"github.com/travigo/flightsearch/pkg/database"
)

// ErrDataUnavailable is returned (wrapped) whenever the underlying catalog source cannot be read or parsed
var ErrDataUnavailable = errors.New("flight catalog data unavailable")

// Provider returns the complete set of known flight events. No filtering is applied
// and callers must not depend on the order of the returned events.
type Provider interface {
	ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error)
}

func unavailable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataUnavailable, fmt.Sprintf(format, args...))
}

// NewProvider picks a provider implementation for the configured catalog source.
// MongoDB URIs read from the flight_events collection of the connected database,
// directories are loaded file by file and anything else is treated as a single file.
func NewProvider(source string) (Provider, error) {
	if source == "" {
		return nil, errors.New("no flight catalog source configured")
	}

	if IsMongoURI(source) {
		if database.MongoGlobalInstance == nil {
			return nil, errors.New("flight catalog is stored in MongoDB but the database is not connected")
		}

		return &MongoProvider{Collection: database.GetCollection(database.FlightEventsCollection)}, nil
	}

	fileInfo, err := os.Stat(source)
	if err != nil {
		return nil, unavailable("stat %s: %s", source, err)
	}

	if fileInfo.IsDir() {
		return &DirectoryProvider{Path: source}, nil
	}

	return &FileProvider{Path: source}, nil
}

// IsMongoURI reports whether the catalog source names a MongoDB deployment
func IsMongoURI(source string) bool {
	return strings.HasPrefix(source, "mongodb://") || strings.HasPrefix(source, "mongodb+srv://")
}
