// Package logging configures the process-wide logger.
//
// All diagnostics go to stderr: when the native transport is active,
// stdout carries protocol frames and must stay clean.
package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr with the given prefix.
// Setting LEDGERVIEW_DEBUG enables debug-level output.
func New(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})

	if os.Getenv("LEDGERVIEW_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
