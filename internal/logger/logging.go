// Package logger provides the charmbracelet/log factory shared across the
// petserve packages so prefixes and levels stay consistent.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a prefixed logger that respects the global log level.
// Output goes to stderr so server mode keeps stdout clean for the protocol.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
