package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, level string, noColor bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}

	console.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-5s|", i))
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(console).Level(lvl).With().Timestamp().Logger()
}
