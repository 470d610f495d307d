package services

import (
	"testing"

	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	crops      *repository.ResourceRepository[models.Crop]
	equipment  *repository.ResourceRepository[models.Equipment]
	production *repository.ResourceRepository[models.Production]
	vehicles   *repository.ResourceRepository[models.Vehicle]
	svc        *StatsService
}

func setupStatsService(t *testing.T) statsFixture {
	db := setupTestDB(t)
	f := statsFixture{
		crops:      repository.NewResourceRepository[models.Crop](db),
		equipment:  repository.NewResourceRepository[models.Equipment](db),
		production: repository.NewResourceRepository[models.Production](db),
		vehicles:   repository.NewResourceRepository[models.Vehicle](db),
	}
	f.svc = NewStatsService(f.crops, f.equipment, f.production, f.vehicles)
	return f
}

func (f statsFixture) addCrop(t *testing.T, quantity float64) {
	crop := &models.Crop{
		CropName: "Maize",
		Quantity: fptr(quantity),
		Unit:     models.CropUnitKg,
		Status:   models.CropStatusInStock,
	}
	require.NoError(t, f.crops.Create(crop))
}

func TestStatsService_EmptyDatabase(t *testing.T) {
	f := setupStatsService(t)

	stats, err := f.svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
}

func TestStatsService_CropTotals(t *testing.T) {
	f := setupStatsService(t)

	// Insertion order must not matter.
	f.addCrop(t, 5)
	f.addCrop(t, 2.5)
	f.addCrop(t, 10)

	stats, err := f.svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.CropCount)
	assert.Equal(t, 17.5, stats.TotalCropQuantity)
}

func TestStatsService_EquipmentNeedingRepair(t *testing.T) {
	f := setupStatsService(t)

	for _, condition := range []string{
		models.ConditionBroken,
		models.ConditionWorking,
		models.ConditionNeedsRepair,
		models.ConditionUnderMaintenance,
	} {
		eq := &models.Equipment{EquipmentName: "Pump", Condition: condition}
		require.NoError(t, f.equipment.Create(eq))
	}

	stats, err := f.svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.EquipmentCount)
	assert.Equal(t, int64(2), stats.EquipmentNeedingRepairCount)
}

func TestStatsService_ActiveVehicles(t *testing.T) {
	f := setupStatsService(t)

	for _, status := range []string{
		models.VehicleStatusActive,
		models.VehicleStatusIdle,
		models.VehicleStatusActive,
		models.VehicleStatusMaintenance,
	} {
		v := &models.Vehicle{VehicleName: "Truck", Status: status}
		v.ApplyDefaults()
		require.NoError(t, f.vehicles.Create(v))
	}

	stats, err := f.svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.VehicleCount)
	assert.Equal(t, int64(2), stats.ActiveVehicleCount)
}

func TestStatsService_ReflectsDeletions(t *testing.T) {
	f := setupStatsService(t)

	f.addCrop(t, 10)
	f.addCrop(t, 5)

	crops, err := f.crops.FindAll("id ASC")
	require.NoError(t, err)
	deleted, err := f.crops.Delete(crops[0].ID)
	require.NoError(t, err)
	require.True(t, deleted)

	stats, err := f.svc.ComputeStats()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.CropCount)
	assert.Equal(t, 5.0, stats.TotalCropQuantity)
}
