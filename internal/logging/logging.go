// Package logging holds the process-wide logger used by the command line
// and the interactive driver. The rotation engine itself never logs.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = log.NewWithOptions(os.Stderr, log.Options{
	Level: log.WarnLevel,
})

// Configure sets the level ("debug", "info", "warn", "error") and the
// output format ("text", "json" or "logfmt") of L.
func Configure(level, format string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	L.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		L.SetFormatter(log.TextFormatter)
	case "json":
		L.SetFormatter(log.JSONFormatter)
	case "logfmt":
		L.SetFormatter(log.LogfmtFormatter)
	default:
		return fmt.Errorf("log format %q: must be text, json or logfmt", format)
	}
	return nil
}

// SetOutput redirects L. Component loggers created earlier keep their
// old writer.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ForComponent returns a child of L tagged with the component name.
// Create component loggers after Configure so they pick up its level.
func ForComponent(component string) *log.Logger {
	return L.WithPrefix(component)
}
