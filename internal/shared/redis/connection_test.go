package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet-builder/internal/shared/config"
)

func TestConnectDisabled(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.NoError(t, client.Close())
}

func TestOptionsFromHost(t *testing.T) {
	opts, err := options(config.RedisConfig{Host: "cache", Port: "6380", Password: "pw", DB: 3})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 3, opts.DB)
}

func TestOptionsFromURL(t *testing.T) {
	opts, err := options(config.RedisConfig{URL: "redis://:secret@redis.internal:6379/2", Host: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "secret", opts.Password)

	_, err = options(config.RedisConfig{URL: "http://nope"})
	assert.Error(t, err)
}
