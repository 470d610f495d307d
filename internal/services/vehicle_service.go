package services

import (
	"time"

	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
)

// VehicleService adds the GPS location fast path on top of the generic
// CRUD contract.
type VehicleService struct {
	*ResourceService[models.Vehicle, *models.Vehicle]
	repo *repository.ResourceRepository[models.Vehicle]
}

func NewVehicleService(repo *repository.ResourceRepository[models.Vehicle]) *VehicleService {
	return &VehicleService{
		ResourceService: NewResourceService[models.Vehicle, *models.Vehicle](repo, "created_at DESC, id DESC"),
		repo:            repo,
	}
}

// UpdateLocation touches only the coordinates and the lastUpdate stamp.
// It skips full-record revalidation: this is the high-frequency
// telemetry write and the coordinates carry no declared bounds.
func (s *VehicleService) UpdateLocation(id uint, lat, lng float64) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}

	vehicle.CurrentLat = &lat
	vehicle.CurrentLng = &lng
	vehicle.LastUpdate = time.Now()

	if err := s.repo.Save(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}
