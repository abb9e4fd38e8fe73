package nats_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	nats2 "github.com/Sandy3122/wedding-invitation-backend/internal/adapters/eventbroker/nats"
	"github.com/Sandy3122/wedding-invitation-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	return m.err
}

func (m *mockHandler) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func newConfig(natsURL string, name string) config.NATSConfig {
	return config.NATSConfig{
		URL:          natsURL,
		StreamName:   name + "-stream",
		Subject:      name + ".logged",
		ConsumerName: name + "-worker",
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPublisherConsumer_RoundTrip(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	cfg := newConfig(natsURL, "events")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, discardLogger)
	require.NoError(t, err)
	defer publisher.Close()

	consumer, err := nats2.NewNATSConsumer(cfg, discardLogger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{received: make(chan struct{}, 1)}
	payload := []byte(`{"eventType":"page_view","page":"home"}`)

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, publisher.Publish(ctx, payload))

	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("message not received")
	}

	// Assert
	require.Equal(t, 1, handler.count())
	assert.Equal(t, payload, handler.messages[0])
	assert.NoError(t, publisher.Ping())
}

func TestConsumer_Subscribe_HandlerError(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	cfg := newConfig(natsURL, "retry")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, discardLogger)
	require.NoError(t, err)
	defer publisher.Close()

	handler := &mockHandler{
		received: make(chan struct{}, 3),
		err:      fmt.Errorf("temporary failure"),
	}
	consumer, err := nats2.NewNATSConsumer(cfg, discardLogger)
	require.NoError(t, err)
	defer consumer.Close()

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, publisher.Publish(ctx, []byte("retry-data")))

	// Assert
	for i := 0; i < 3; i++ {
		select {
		case <-handler.received:
		case <-time.After(2 * time.Second):
			t.Fatalf("Retry %d not received", i)
		}
	}
	assert.GreaterOrEqual(t, handler.count(), 3)
}

func TestConsumer_GracefulShutdown(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()
	cfg := newConfig(natsURL, "shutdown")
	ctx := context.Background()

	publisher, err := nats2.NewNATSPublisher(ctx, cfg, discardLogger)
	require.NoError(t, err)
	defer publisher.Close()

	handler := &mockHandler{received: make(chan struct{}, 1)}
	consumer, err := nats2.NewNATSConsumer(cfg, discardLogger)
	require.NoError(t, err)

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))
	require.NoError(t, consumer.Close())
	require.NoError(t, publisher.Publish(ctx, []byte("late-data")))

	// Assert
	select {
	case <-handler.received:
		t.Fatal("Message should not have been processed after Close")
	case <-time.After(500 * time.Millisecond):
	}
}
