package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup creates a zerolog logger writing to w.
//
// format "text" uses zerolog.ConsoleWriter, anything else writes JSON lines.
// An empty level defaults to info.
func Setup(w io.Writer, level, format string) (zerolog.Logger, error) {
	logLevel := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("parse log level: %w", err)
		}
		logLevel = parsed
	}

	if strings.EqualFold(format, "text") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).With().Timestamp()
	if logLevel <= zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	return ctx.Logger().Level(logLevel), nil
}
