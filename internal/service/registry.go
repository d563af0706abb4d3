package service

import (
	"context"

	"fuelform/internal/domain"
)

// VehicleRegistry lists the vehicles shown by view-cars.
type VehicleRegistry interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
}

// ExampleRegistrations is the placeholder vehicle list.
var ExampleRegistrations = []string{"А123ВМ", "Б456ГН", "В789ДЕ"}

// StaticRegistry is a VehicleRegistry over a fixed list.
type StaticRegistry struct {
	vehicles []domain.Vehicle
}

// NewStaticRegistry creates a registry over the given registration numbers.
// With no arguments it serves ExampleRegistrations.
func NewStaticRegistry(registrations ...string) *StaticRegistry {
	if len(registrations) == 0 {
		registrations = ExampleRegistrations
	}
	vehicles := make([]domain.Vehicle, len(registrations))
	for i, r := range registrations {
		vehicles[i] = domain.Vehicle{RegistrationNumber: r}
	}
	return &StaticRegistry{vehicles: vehicles}
}

// List returns a copy of the fixed list.
func (r *StaticRegistry) List(_ context.Context) ([]domain.Vehicle, error) {
	return append([]domain.Vehicle(nil), r.vehicles...), nil
}

var _ VehicleRegistry = (*StaticRegistry)(nil)
