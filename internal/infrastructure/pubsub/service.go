package logpubsub

import (
	log "github.com/sirupsen/logrus"

	"github.com/otcdex-network/otcdex-daemon/internal/core/ports"
)

type service struct{}

// NewService returns a SwapPublisher that logs swap events in a structured
// way. It stands in for any external notification collaborator, like a
// webhook dispatcher or a message broker.
func NewService() ports.SwapPublisher {
	return &service{}
}

func (s *service) Publish(event ports.SwapEvent) error {
	log.WithFields(log.Fields{
		"id":        event.Id,
		"swap_id":   event.SwapId,
		"timestamp": event.Timestamp,
	}).Info(event.Topic)
	return nil
}
