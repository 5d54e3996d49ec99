// Package exchart compiles declarative chart specs over spreadsheet data into
// chart document models.
package exchart

import (
	"log/slog"

	"github.com/ukaji3/exchart-go/pkg/exchart/compiler"
)

// Options configures compilation.
type Options struct {
	// Logger receives debug output from the compiler.
	// If nil, log output is discarded.
	Logger *slog.Logger
	// Defaults overrides the compiler defaults (font size, gap widths, ...).
	// If nil, compiler.DefaultDefaults is used.
	Defaults *compiler.Defaults
}

// DefaultOptions returns default compile options.
func DefaultOptions() Options {
	return Options{}
}

// logger returns the configured logger or a discarding one.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// defaults returns the configured compiler defaults.
func (o Options) defaults() compiler.Defaults {
	if o.Defaults != nil {
		return *o.Defaults
	}
	return compiler.DefaultDefaults()
}
