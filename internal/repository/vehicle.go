package repository

import (
	"context"

	"fuelform/internal/domain"
)

// VehicleRepository defines the read operations on registered vehicles.
type VehicleRepository interface {
	// List retrieves all vehicles in display order.
	List(ctx context.Context) ([]domain.Vehicle, error)
}
