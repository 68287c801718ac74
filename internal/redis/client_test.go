package redis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berkingurcan/siglife-api/internal/redis"
	"github.com/berkingurcan/siglife-api/internal/testutils"
)

func TestNewClient_MissingEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)
}

func TestClient_RoundTrip(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", 0).Err())

	got, err := client.Get(ctx, "key").Result()
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	n, err := client.Exists(ctx, "missing").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
