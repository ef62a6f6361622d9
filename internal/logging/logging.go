package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger; verbose lowers the level to debug.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
