package catalog

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/flightsearch/pkg/ctdf"
	"gopkg.in/yaml.v3"
)

var errUnsupportedFormat = errors.New("unsupported catalog file format")

// FileProvider reads the catalog file on every call so edits to it show up on the next search
type FileProvider struct {
	Path string
}

func (f *FileProvider) ListAll(ctx context.Context) ([]*ctdf.FlightEvent, error) {
	contents, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, unavailable("read %s: %s", f.Path, err)
	}

	events, err := ParseRecords(fileFormat(f.Path), bytes.NewReader(contents))
	if err != nil {
		return nil, unavailable("parse %s: %s", f.Path, err)
	}

	log.Debug().Str("path", f.Path).Int("events", len(events)).Msg("Loaded flight catalog file")

	return events, nil
}

func fileFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func supportedFormat(format string) bool {
	switch format {
	case "json", "yaml", "yml", "csv":
		return true
	default:
		return false
	}
}

// ParseRecords decodes a catalog document in the given format (json, yaml/yml or csv)
func ParseRecords(format string, reader io.Reader) ([]*ctdf.FlightEvent, error) {
	var records []*Record

	switch format {
	case "json":
		if err := json.NewDecoder(reader).Decode(&records); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.NewDecoder(reader).Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case "csv":
		csvReader := csv.NewReader(reader)
		csvReader.TrimLeadingSpace = true

		if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, err
		}
	default:
		return nil, errUnsupportedFormat
	}

	return recordsToFlightEvents(records)
}
