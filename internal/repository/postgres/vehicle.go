package postgres

import (
	"context"
	"database/sql"

	"fuelform/internal/domain"
	"fuelform/internal/repository"
)

// VehicleRepository is a read-only PostgreSQL implementation of
// repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// List retrieves all vehicles ordered by display position.
func (r *VehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `
		SELECT registration_number
		FROM vehicles
		ORDER BY position, registration_number
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.RegistrationNumber); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// Ensure VehicleRepository implements repository.VehicleRepository.
var _ repository.VehicleRepository = (*VehicleRepository)(nil)
