//go:build integration

package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/itsobank/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7.0.5",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	s, err := NewRedisStorage(&config.Redis{
		URL:       "redis://" + host + ":" + port.Port() + "/0",
		KeyPrefix: "test:session:",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	s := setupRedisStorage(t)

	val, err := s.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, s.Set("sid-1", []byte("payload"), time.Minute))
	val, err = s.Get("sid-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), val)

	require.NoError(t, s.Delete("sid-1"))
	val, err = s.Get("sid-1")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestRedisStorage_Expiry(t *testing.T) {
	s := setupRedisStorage(t)

	require.NoError(t, s.Set("sid-2", []byte("payload"), 500*time.Millisecond))
	assert.Eventually(t, func() bool {
		val, err := s.Get("sid-2")
		return err == nil && val == nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestRedisStorage_ResetOnlyClearsPrefix(t *testing.T) {
	s := setupRedisStorage(t)
	ctx := context.Background()
	require.NoError(t, s.client.Set(ctx, "other:key", "keep", 0).Err())
	require.NoError(t, s.Set("a", []byte("1"), 0))
	require.NoError(t, s.Set("b", []byte("2"), 0))

	require.NoError(t, s.Reset())

	val, err := s.Get("a")
	require.NoError(t, err)
	assert.Nil(t, val)
	kept, err := s.client.Get(ctx, "other:key").Result()
	require.NoError(t, err)
	assert.Equal(t, "keep", kept)
}
