package util

import (
	"strings"

	"github.com/rs/zerolog"
)

// ParseLogLevel accepts zerolog level names as well as WARNING and CRITICAL
func ParseLogLevel(value string) (zerolog.Level, error) {
	level := strings.ToLower(strings.TrimSpace(value))

	switch level {
	case "warning":
		level = "warn"
	case "critical":
		level = "fatal"
	}

	return zerolog.ParseLevel(level)
}
