package services

import (
	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
)

type Stats struct {
	CropCount                   int64   `json:"cropCount"`
	EquipmentCount              int64   `json:"equipmentCount"`
	ProductionCount             int64   `json:"productionCount"`
	VehicleCount                int64   `json:"vehicleCount"`
	TotalCropQuantity           float64 `json:"totalCropQuantity"`
	ActiveVehicleCount          int64   `json:"activeVehicleCount"`
	EquipmentNeedingRepairCount int64   `json:"equipmentNeedingRepairCount"`
}

// StatsService composes read-only aggregates over the four resource
// repositories. It holds no state of its own; every call reflects the
// persisted records at call time.
type StatsService struct {
	crops      *repository.ResourceRepository[models.Crop]
	equipment  *repository.ResourceRepository[models.Equipment]
	production *repository.ResourceRepository[models.Production]
	vehicles   *repository.ResourceRepository[models.Vehicle]
}

func NewStatsService(
	crops *repository.ResourceRepository[models.Crop],
	equipment *repository.ResourceRepository[models.Equipment],
	production *repository.ResourceRepository[models.Production],
	vehicles *repository.ResourceRepository[models.Vehicle],
) *StatsService {
	return &StatsService{
		crops:      crops,
		equipment:  equipment,
		production: production,
		vehicles:   vehicles,
	}
}

func (s *StatsService) ComputeStats() (*Stats, error) {
	cropCount, err := s.crops.Count()
	if err != nil {
		return nil, err
	}
	equipmentCount, err := s.equipment.Count()
	if err != nil {
		return nil, err
	}
	productionCount, err := s.production.Count()
	if err != nil {
		return nil, err
	}
	vehicleCount, err := s.vehicles.Count()
	if err != nil {
		return nil, err
	}

	// Quantities are summed raw; units are not converted.
	totalCropQuantity, err := s.crops.Sum("quantity")
	if err != nil {
		return nil, err
	}

	activeVehicles, err := s.vehicles.Count("status = ?", models.VehicleStatusActive)
	if err != nil {
		return nil, err
	}

	needingRepair, err := s.equipment.Count("condition IN ?",
		[]string{models.ConditionNeedsRepair, models.ConditionBroken})
	if err != nil {
		return nil, err
	}

	return &Stats{
		CropCount:                   cropCount,
		EquipmentCount:              equipmentCount,
		ProductionCount:             productionCount,
		VehicleCount:                vehicleCount,
		TotalCropQuantity:           totalCropQuantity,
		ActiveVehicleCount:          activeVehicles,
		EquipmentNeedingRepairCount: needingRepair,
	}, nil
}
