package log2

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure points the global zerolog logger at stderr with the given level.
// Unknown or empty levels fall back to info.
func Configure(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

func Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

func Tracing() bool {
	return zerolog.GlobalLevel() <= zerolog.TraceLevel
}
