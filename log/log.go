package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var logger = New(os.Stderr)
var guard sync.RWMutex

// New creates a console logger that formats the level as a fixed width column, e.g.
//
//	2024-04-07 10:15:32 INFO  Retrieved 3 columns from Sheet1!A1:B3
func New(w io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05",
		FormatLevel: func(i any) string {
			if l, ok := i.(string); ok {
				switch l {
				case "warn":
					return fmt.Sprintf("%-5s", "WARN")
				default:
					return fmt.Sprintf("%-5s", strings.ToUpper(l))
				}
			}

			return fmt.Sprintf("%-5v", i)
		},
	}

	return zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetLogger replaces the package logger, typically to redirect output in tests.
func SetLogger(l zerolog.Logger) {
	guard.Lock()
	defer guard.Unlock()

	logger = l
}

func SetDebug(enabled bool) {
	guard.Lock()
	defer guard.Unlock()

	if enabled {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

func Debugf(format string, args ...any) {
	get().Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	get().Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	get().Warn().Msgf(format, args...)
}

func Errorf(format string, args ...any) {
	get().Error().Msgf(format, args...)
}

func get() *zerolog.Logger {
	guard.RLock()
	defer guard.RUnlock()

	l := logger
	return &l
}
