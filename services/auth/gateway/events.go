package gateway

import (
	"github.com/farmchain/backend/internal/pkg/logger"
	"github.com/farmchain/backend/internal/pkg/nsq"
)

// NSQEventsGW publishes domain events to NSQ
type NSQEventsGW struct {
	producer *nsq.Producer
}

// NewNSQEventsGW creates an NSQ-backed events gateway
func NewNSQEventsGW(producer *nsq.Producer) *NSQEventsGW {
	return &NSQEventsGW{producer: producer}
}

// Publish sends the payload to the topic
func (g *NSQEventsGW) Publish(topic string, payload interface{}) error {
	return g.producer.Publish(topic, payload)
}

// NoopEventsGW drops events. Used when no broker is configured so the
// rest of the wiring does not need nil checks.
type NoopEventsGW struct{}

// NewNoopEventsGW creates the no-op events gateway
func NewNoopEventsGW() *NoopEventsGW {
	return &NoopEventsGW{}
}

// Publish drops the event
func (g *NoopEventsGW) Publish(topic string, _ interface{}) error {
	logger.Debug("Event dropped, no broker configured", logger.String("topic", topic))
	return nil
}
