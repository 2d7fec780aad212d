package service

import (
	"lightbnb/internal/domain"

	"github.com/rs/zerolog"
)

// publish hands payload to the bus. Failures are logged and never reach the
// caller: the row is already committed.
func publish(bus domain.EventPublisher, logger *zerolog.Logger, eventType string, payload interface{}) {
	if bus == nil {
		return
	}
	if err := bus.PublishJSON(eventType, payload); err != nil {
		logger.Error().Err(err).Str("event_type", eventType).Msg("publish event error")
	}
}
