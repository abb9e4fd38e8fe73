package nats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sandy3122/wedding-invitation-backend/internal/config"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamMaxAge = 7 * 24 * time.Hour

func connect(cfg config.NATSConfig, name string, logger *slog.Logger) (*nats.Conn, jetstream.JetStream, error) {
	opts := []nats.Option{
		nats.Name(name),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	return conn, js, nil
}

// ensureStream creates the event stream or updates its subjects
func ensureStream(ctx context.Context, js jetstream.JetStream, cfg config.NATSConfig) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject},
		MaxAge:   streamMaxAge,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}
	return nil
}
