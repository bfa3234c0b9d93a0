package utils

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development mode
// gets the pretty console writer, everything else stays JSON.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// PrintLogInfo records the outcome of a handler invocation: who hit
// the API, the resulting status and the operation name. Server errors
// keep the internal error detail in the log only.
func PrintLogInfo(actor string, statusCode int, operation string, err error) {
	if actor == "" {
		actor = "unknown"
	}

	ev := log.Info()
	switch {
	case statusCode >= http.StatusInternalServerError:
		ev = log.Error()
	case statusCode >= http.StatusBadRequest:
		ev = log.Warn()
	}
	if err != nil {
		ev = ev.Err(err)
	}

	ev.Str("actor", actor).
		Int("status", statusCode).
		Str("operation", operation).
		Msg("request handled")
}
