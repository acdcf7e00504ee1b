// Package applog wires up this program's logging: a text handler to
// stderr always on, fanned out with an optional JSON handler via
// github.com/samber/slog-multi when structured logs are requested.
//
// The CLI layer is the only caller of this package. pkg/elf32,
// pkg/mbdecoder, and pkg/mbdisasm never log -- they report failure
// through return values, and success through the caller-supplied sink.
package applog

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	// JSON turns on a second, JSON-formatted handler alongside the
	// always-on stderr text handler.
	JSON bool
	// JSONWriter receives JSON records when JSON is set. Defaults to
	// os.Stderr if nil.
	JSONWriter io.Writer
	// Level is the minimum level logged by both handlers.
	Level slog.Level
}

// New builds the program's root logger per Options.
func New(opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	text := slog.NewTextHandler(os.Stderr, handlerOpts)

	if !opts.JSON {
		return slog.New(text)
	}

	jsonWriter := opts.JSONWriter
	if jsonWriter == nil {
		jsonWriter = os.Stderr
	}
	jsonHandler := slog.NewJSONHandler(jsonWriter, handlerOpts)

	return slog.New(slogmulti.Fanout(text, jsonHandler))
}
