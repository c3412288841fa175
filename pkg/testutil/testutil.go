// Package testutil holds helpers shared by the check package tests.
package testutil

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// LoggerContext returns a context carrying a zerolog logger that writes
// to w at debug level, so tests can assert on diagnostics.
func LoggerContext(w io.Writer) context.Context {
	logger := zerolog.New(w).Level(zerolog.DebugLevel)
	return logger.WithContext(context.Background())
}
