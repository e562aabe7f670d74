// Package events publishes domain events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estimate_agent/internal/infrastructure/metrics"
	"estimate_agent/internal/usecase/interfaces"
	"estimate_agent/pkg/logger"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	connectTimeout = 5 * time.Second
	clientName     = "estimate-agent"
)

// Envelope wraps every payload published on a subject.
type Envelope struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type NATSPublisher struct {
	nc      conn
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ interfaces.IEventPublisher = (*NATSPublisher)(nil)

// Connect dials url and keeps reconnecting in the background.
func Connect(url string, m *metrics.Metrics) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.Timeout(connectTimeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn(context.Background(), "nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info(context.Background(), "nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return newPublisher(nc, m), nil
}

func newPublisher(nc conn, m *metrics.Metrics) *NATSPublisher {
	return &NATSPublisher{nc: nc, metrics: m, now: time.Now}
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Envelope{
		ID:         uuid.NewString(),
		Subject:    subject,
		OccurredAt: p.now().UTC(),
		Payload:    payload,
	})
	if err == nil {
		err = p.nc.Publish(subject, data)
	}

	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(subject, metrics.Outcome(err)).Inc()
	}
	if err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}
