package app

import (
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fuelform/internal/codec"
	"fuelform/internal/config"
	internalRedis "fuelform/internal/redis"
	"fuelform/internal/repository/postgres"
	"fuelform/internal/service"
	"fuelform/internal/webapp"
)

// Registry sources.
const (
	RegistryStatic   = "static"
	RegistryPostgres = "postgres"
)

// Bridge kinds.
const (
	BridgeRedis = "redis"
	BridgeLog   = "log"
)

// NewBridge selects the host bridge named in cfg.
func NewBridge(cfg config.WebAppConfig, client *redis.Client, logger *zap.Logger) (webapp.Bridge, error) {
	switch cfg.Bridge {
	case BridgeRedis:
		if client == nil {
			return nil, fmt.Errorf("bridge %q requires a redis client", cfg.Bridge)
		}
		return internalRedis.NewBridge(client, cfg.BridgeChannel), nil
	case BridgeLog:
		return webapp.NewLogBridge(logger), nil
	default:
		return nil, fmt.Errorf("unknown bridge %q", cfg.Bridge)
	}
}

// NewRegistry selects the vehicle registry named in cfg and wraps it in the
// Redis cache when a cache TTL is configured.
func NewRegistry(cfg config.WebAppConfig, db *sql.DB, client *redis.Client) (service.VehicleRegistry, error) {
	var source service.VehicleRegistry
	switch cfg.RegistrySource {
	case RegistryStatic:
		source = service.NewStaticRegistry()
	case RegistryPostgres:
		if db == nil {
			return nil, fmt.Errorf("registry %q requires a database", cfg.RegistrySource)
		}
		source = postgres.NewVehicleRepository(db)
	default:
		return nil, fmt.Errorf("unknown registry source %q", cfg.RegistrySource)
	}

	if cfg.RegistryCacheTTL > 0 && client != nil {
		return internalRedis.NewCachedRegistry(client, source, cfg.RegistryCacheTTL), nil
	}
	return source, nil
}

// NewContainerStore keeps session containers in Redis, or in process memory
// when no Redis client is available.
func NewContainerStore(client *redis.Client) webapp.ContainerStore {
	if client == nil {
		return webapp.NewMemoryContainerStore()
	}
	return internalRedis.NewContainerStore(client)
}

// RedisRequired reports whether cfg cannot run without Redis.
func RedisRequired(cfg config.WebAppConfig) bool {
	return cfg.Bridge == BridgeRedis
}

// NewEncoder selects the wire format named in cfg.
func NewEncoder(cfg config.WebAppConfig) (codec.Encoder, error) {
	switch codec.Format(cfg.WireFormat) {
	case codec.FormatLegacy, codec.FormatJSON:
		return codec.New(codec.Format(cfg.WireFormat)), nil
	default:
		return nil, fmt.Errorf("unknown wire format %q", cfg.WireFormat)
	}
}
