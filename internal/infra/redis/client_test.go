package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-manager/backend/config"
)

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := Connect(context.Background(), &config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, HealthCheck(client)())

	server.Close()
	assert.False(t, HealthCheck(client)())
}

func TestConnectFailures(t *testing.T) {
	_, err := Connect(context.Background(), &config.RedisConfig{URL: "not a url"})
	assert.Error(t, err)

	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err = Connect(context.Background(), &config.RedisConfig{URL: "redis://" + addr})
	assert.Error(t, err)
}
