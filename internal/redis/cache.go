package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"fuelform/internal/domain"
	"fuelform/internal/repository"
)

// Cache defaults.
const (
	VehicleCacheTTL = 60 * time.Second
	vehicleCacheKey = "cache:vehicles"
)

// CachedVehicle represents a cached registry entry.
type CachedVehicle struct {
	RegistrationNumber string `json:"registration_number"`
}

// CachedRegistry is a read-through Redis cache over a vehicle source.
type CachedRegistry struct {
	client *redis.Client
	source repository.VehicleRepository
	ttl    time.Duration
}

// NewCachedRegistry creates a new CachedRegistry. A non-positive ttl uses
// VehicleCacheTTL.
func NewCachedRegistry(client *redis.Client, source repository.VehicleRepository, ttl time.Duration) *CachedRegistry {
	if ttl <= 0 {
		ttl = VehicleCacheTTL
	}
	return &CachedRegistry{client: client, source: source, ttl: ttl}
}

// List returns the cached list, loading it from the source on a miss.
// Cache errors fall through to the source.
func (r *CachedRegistry) List(ctx context.Context) ([]domain.Vehicle, error) {
	if cached, err := r.get(ctx); err == nil && cached != nil {
		return cached, nil
	}

	vehicles, err := r.source.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = r.set(ctx, vehicles)
	return vehicles, nil
}

func (r *CachedRegistry) get(ctx context.Context) ([]domain.Vehicle, error) {
	data, err := r.client.Get(ctx, vehicleCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var cached []CachedVehicle
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, len(cached))
	for i, c := range cached {
		vehicles[i] = domain.Vehicle{RegistrationNumber: c.RegistrationNumber}
	}
	return vehicles, nil
}

func (r *CachedRegistry) set(ctx context.Context, vehicles []domain.Vehicle) error {
	cached := make([]CachedVehicle, len(vehicles))
	for i, v := range vehicles {
		cached[i] = CachedVehicle{RegistrationNumber: v.RegistrationNumber}
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, vehicleCacheKey, data, r.ttl).Err()
}
