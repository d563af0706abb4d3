package redis

import (
	"fuelform/internal/repository"
	"fuelform/internal/webapp"
)

// Ensure concrete types implement interfaces.
var (
	_ webapp.Bridge                = (*Bridge)(nil)
	_ webapp.StoredContainer       = (*Container)(nil)
	_ webapp.ContainerStore        = (*ContainerStore)(nil)
	_ repository.VehicleRepository = (*CachedRegistry)(nil)
)
