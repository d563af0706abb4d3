package app

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fuelform/internal/codec"
	"fuelform/internal/config"
	internalRedis "fuelform/internal/redis"
	"fuelform/internal/repository/postgres"
	"fuelform/internal/service"
	"fuelform/internal/webapp"
)

func TestNewEncoder(t *testing.T) {
	enc, err := NewEncoder(config.WebAppConfig{WireFormat: "legacy"})
	require.NoError(t, err)
	assert.IsType(t, codec.LegacyEncoder{}, enc)

	enc, err = NewEncoder(config.WebAppConfig{WireFormat: "json"})
	require.NoError(t, err)
	assert.IsType(t, codec.JSONEncoder{}, enc)

	_, err = NewEncoder(config.WebAppConfig{WireFormat: "xml"})
	assert.Error(t, err)
}

func TestNewBridge(t *testing.T) {
	logger := zap.NewNop()

	b, err := NewBridge(config.WebAppConfig{Bridge: BridgeLog}, nil, logger)
	require.NoError(t, err)
	assert.IsType(t, &webapp.LogBridge{}, b)

	_, err = NewBridge(config.WebAppConfig{Bridge: BridgeRedis}, nil, logger)
	assert.Error(t, err, "redis bridge needs a client")

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	b, err = NewBridge(config.WebAppConfig{Bridge: BridgeRedis, BridgeChannel: "c"}, client, logger)
	require.NoError(t, err)
	assert.IsType(t, &internalRedis.Bridge{}, b)

	_, err = NewBridge(config.WebAppConfig{Bridge: "carrier-pigeon"}, nil, logger)
	assert.Error(t, err)
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(config.WebAppConfig{RegistrySource: RegistryStatic}, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &service.StaticRegistry{}, r)

	_, err = NewRegistry(config.WebAppConfig{RegistrySource: RegistryPostgres}, nil, nil)
	assert.Error(t, err, "postgres registry needs a database")

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r, err = NewRegistry(config.WebAppConfig{RegistrySource: RegistryPostgres}, db, nil)
	require.NoError(t, err)
	assert.IsType(t, &postgres.VehicleRepository{}, r)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	r, err = NewRegistry(config.WebAppConfig{
		RegistrySource:   RegistryPostgres,
		RegistryCacheTTL: time.Minute,
	}, db, client)
	require.NoError(t, err)
	assert.IsType(t, &internalRedis.CachedRegistry{}, r)

	_, err = NewRegistry(config.WebAppConfig{RegistrySource: "csv"}, nil, nil)
	assert.Error(t, err)
}

func TestKeyNamespace(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		cmd  redis.Cmder
		want string
	}{
		{redis.NewCmd(ctx, "get", "cache:vehicles"), "cache"},
		{redis.NewCmd(ctx, "rpush", "webapp:container:s1:carsList", "А123ВМ"), "webapp"},
		{redis.NewCmd(ctx, "get", "plain"), "plain"},
		{redis.NewCmd(ctx, "ping"), "redis"},
		{redis.NewCmd(ctx, "get", 42), "redis"},
	}
	for _, tt := range tests {
		if got := keyNamespace(tt.cmd); got != tt.want {
			t.Errorf("keyNamespace(%v) = %q, want %q", tt.cmd.Args(), got, tt.want)
		}
	}
}

func TestNewContainerStore(t *testing.T) {
	assert.IsType(t, &webapp.MemoryContainerStore{}, NewContainerStore(nil))

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	assert.IsType(t, &internalRedis.ContainerStore{}, NewContainerStore(client))
}

func TestRedisRequired(t *testing.T) {
	assert.True(t, RedisRequired(config.WebAppConfig{Bridge: BridgeRedis}))
	assert.False(t, RedisRequired(config.WebAppConfig{Bridge: BridgeLog, RegistryCacheTTL: time.Minute}))
}
