package catalog

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/flightsearch/pkg/ctdf"
)

const directoryLoadConcurrency = 8

// DirectoryProvider loads every supported catalog file below Path and concatenates the events
type DirectoryProvider struct {
	Path string
}

func (d *DirectoryProvider) ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error) {
	var paths []string

	err := filepath.WalkDir(d.Path, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		if !supportedFormat(fileFormat(path)) {
			log.Debug().Str("path", path).Msg("Skipping unsupported catalog file")
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, unavailable("walk %s: %s", d.Path, err)
	}

	p := pool.NewWithResults[[]*ctdf.FlightEvent]().WithContext(ctx).WithMaxGoroutines(directoryLoadConcurrency)

	for _, path := range paths {
		path := path
		p.Go(func(ctx context.Context) ([]*ctdf.FlightEvent, error) {
			fileProvider := FileProvider{Path: path}

			return fileProvider.ListAll(ctx)
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	var events []*ctdf.FlightEvent
	for _, fileEvents := range results {
		events = append(events, fileEvents...)
	}

	log.Debug().Str("path", d.Path).Int("files", len(paths)).Int("events", len(events)).Msg("Loaded flight catalog directory")

	return events, nil
}
