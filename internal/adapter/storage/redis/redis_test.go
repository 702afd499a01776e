package redis_test

import (
	"context"
	"testing"

	"dbprobe/config"
	"dbprobe/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: mr.Host(), Port: atoi(t, mr.Port())}

	client, err := redis.NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, mr.Addr(), client.Options().Addr)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Host: mr.Host(), Port: atoi(t, mr.Port())}
	mr.Close()

	_, err := redis.NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
