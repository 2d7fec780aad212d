package logging

import (
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewPgxTracer returns a pgx query tracer that writes through logger.
// Statements are logged at debug, so they only show up when the service
// runs with logging.level=debug or trace.
func NewPgxTracer(logger *zerolog.Logger) *tracelog.TraceLog {
	pgxLogger := logger.With().Str("component", "pgx").Logger()
	return &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(pgxLogger),
		LogLevel: TraceLogLevel(logger.GetLevel()),
	}
}

// TraceLogLevel maps a zerolog level to the pgx tracelog level.
func TraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
