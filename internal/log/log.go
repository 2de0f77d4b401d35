// Package log wraps zerolog with the fields every part of this server
// wants on every line: a component name, and for connection/room scoped
// loggers, the room id or nickname they concern.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().
	Timestamp().
	Logger()

// For returns a logger tagged with a component name, e.g. "transport", "session".
func For(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// ForRoom returns a logger additionally tagged with a room id.
func ForRoom(component, roomID string) zerolog.Logger {
	return For(component).With().Str("room_id", roomID).Logger()
}

// ForConn returns a logger additionally tagged with a nickname, once known.
func ForConn(component, nickname string) zerolog.Logger {
	return For(component).With().Str("nickname", nickname).Logger()
}

// SetLevel adjusts the global minimum log level, e.g. from a --verbose flag.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
