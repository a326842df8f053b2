package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/meteomark/weather-agent/internal/config"
)

func newLogger(output io.Writer, level config.LogLevel) *slog.Logger {
	handler := tint.NewHandler(output, &tint.Options{
		Level:      level.Slog(),
		TimeFormat: "2006-01-02 15:04:05.000Z07:00",
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
	return slog.New(handler)
}
