package nats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sandy3122/wedding-invitation-backend/internal/config"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes event payloads to the configured JetStream subject
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.NATSConfig
}

// NewNATSPublisher connects and makes sure the stream exists
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg, cfg.ConsumerName+"-publisher", logger)
	if err != nil {
		return nil, err
	}

	if err := ensureStream(ctx, js, cfg); err != nil {
		conn.Close()
		return nil, err
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Publish waits for the stream acknowledgement
func (p *Publisher) Publish(ctx context.Context, data []byte) error {
	ack, err := p.js.Publish(ctx, p.config.Subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.config.Subject, err)
	}
	p.logger.Debug("event published", "stream", ack.Stream, "sequence", ack.Sequence)
	return nil
}

// Ping reports whether the connection is up
func (p *Publisher) Ping() error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("NATS connection is %s", p.conn.Status())
	}
	return nil
}

// Close drains the connection
func (p *Publisher) Close() error {
	if p.conn != nil {
		return p.conn.Drain()
	}
	return nil
}
