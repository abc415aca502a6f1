// Package logger provides structured key/value logging for the application.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log = zerolog.Nop()

// Init configures the global logger. Unknown levels fall back to info.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().
		Logger()
}

func Debug(msg string, keysAndValues ...any) {
	emit(log.Debug(), msg, keysAndValues)
}

func Info(msg string, keysAndValues ...any) {
	emit(log.Info(), msg, keysAndValues)
}

func Warn(msg string, keysAndValues ...any) {
	emit(log.Warn(), msg, keysAndValues)
}

func Error(msg string, keysAndValues ...any) {
	emit(log.Error(), msg, keysAndValues)
}

// emit attaches alternating key/value pairs to the event. A trailing key
// without a value is dropped.
func emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}
