package services

import (
	"testing"
	"time"

	"github.com/kaard-farm/farm-api/internal/database"
	"github.com/kaard-farm/farm-api/internal/models"
	"github.com/kaard-farm/farm-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

func setupCropService(t *testing.T) (*repository.ResourceRepository[models.Crop], *ResourceService[models.Crop, *models.Crop]) {
	db := setupTestDB(t)
	repo := repository.NewResourceRepository[models.Crop](db)
	return repo, NewResourceService[models.Crop, *models.Crop](repo, "created_at DESC, id DESC")
}

func fptr(v float64) *float64 {
	return &v
}

func TestResourceService_CreateThenGet(t *testing.T) {
	_, svc := setupCropService(t)

	created, err := svc.Create([]byte(`{"cropName": "Maize", "quantity": 500, "storageLocation": "Silo A"}`))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Maize", created.CropName)
	assert.Equal(t, 500.0, *created.Quantity)
	assert.Equal(t, models.CropUnitKg, created.Unit)
	assert.Equal(t, models.CropStatusInStock, created.Status)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Maize", got.CropName)
	assert.Equal(t, 500.0, *got.Quantity)
	assert.Equal(t, "Silo A", got.StorageLocation)
}

func TestResourceService_CreateValidationFailure(t *testing.T) {
	repo, svc := setupCropService(t)

	_, err := svc.Create([]byte(`{"quantity": -5}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	assert.Contains(t, names, "cropName")
	assert.Contains(t, names, "quantity")

	// Fail fast: nothing was persisted.
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestResourceService_CreateIgnoresClientIdentity(t *testing.T) {
	_, svc := setupCropService(t)

	created, err := svc.Create([]byte(`{"id": 999, "cropName": "Maize", "quantity": 10}`))
	require.NoError(t, err)
	assert.NotEqual(t, uint(999), created.ID)
}

func TestResourceService_GetNotFound(t *testing.T) {
	_, svc := setupCropService(t)

	_, err := svc.Get(42)
	assert.Equal(t, ErrNotFound, err)
}

func TestResourceService_UpdateMergesPartialFields(t *testing.T) {
	_, svc := setupCropService(t)

	created, err := svc.Create([]byte(`{"cropName": "Maize", "quantity": 500, "storageLocation": "Silo A"}`))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, []byte(`{"status": "Low Stock"}`))
	require.NoError(t, err)

	assert.Equal(t, models.CropStatusLowStock, updated.Status)
	assert.Equal(t, "Maize", updated.CropName)
	assert.Equal(t, 500.0, *updated.Quantity)
	assert.Equal(t, "Silo A", updated.StorageLocation)
	assert.Equal(t, created.ID, updated.ID)
}

func TestResourceService_UpdateRevalidatesMergedRecord(t *testing.T) {
	_, svc := setupCropService(t)

	created, err := svc.Create([]byte(`{"cropName": "Maize", "quantity": 500}`))
	require.NoError(t, err)

	_, err = svc.Update(created.ID, []byte(`{"quantity": -10}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "quantity", verr.Fields[0].Field)

	// The stored record is untouched.
	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, *got.Quantity)
}

func TestResourceService_UpdateNotFound(t *testing.T) {
	_, svc := setupCropService(t)

	_, err := svc.Update(42, []byte(`{"status": "Sold"}`))
	assert.Equal(t, ErrNotFound, err)
}

func TestResourceService_DeleteThenGet(t *testing.T) {
	_, svc := setupCropService(t)

	created, err := svc.Create([]byte(`{"cropName": "Maize", "quantity": 500}`))
	require.NoError(t, err)

	err = svc.Delete(created.ID)
	require.NoError(t, err)

	_, err = svc.Get(created.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestResourceService_DeleteNotFound(t *testing.T) {
	_, svc := setupCropService(t)

	err := svc.Delete(42)
	assert.Equal(t, ErrNotFound, err)
}

func TestResourceService_ListNewestCreatedFirst(t *testing.T) {
	repo, svc := setupCropService(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"Oldest", "Middle", "Newest"} {
		crop := &models.Crop{
			CropName: name,
			Quantity: fptr(1),
			Unit:     models.CropUnitKg,
			Status:   models.CropStatusInStock,
		}
		crop.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(crop))
	}

	crops, err := svc.List()
	require.NoError(t, err)
	require.Len(t, crops, 3)
	assert.Equal(t, "Newest", crops[0].CropName)
	assert.Equal(t, "Middle", crops[1].CropName)
	assert.Equal(t, "Oldest", crops[2].CropName)
}

func TestResourceService_ProductionListsByPlantingDate(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewResourceRepository[models.Production](db)
	svc := NewResourceService[models.Production, *models.Production](repo, "planting_date DESC, id DESC")

	for _, record := range []struct {
		field string
		date  string
	}{
		{"F-1", "2026-01-10T00:00:00Z"},
		{"F-3", "2026-03-15T00:00:00Z"},
		{"F-2", "2026-02-20T00:00:00Z"},
	} {
		body := `{"fieldNumber": "` + record.field + `", "cropType": "Maize", "plantingDate": "` + record.date + `", "areaHectares": 2}`
		_, err := svc.Create([]byte(body))
		require.NoError(t, err)
	}

	records, err := svc.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "F-3", records[0].FieldNumber)
	assert.Equal(t, "F-2", records[1].FieldNumber)
	assert.Equal(t, "F-1", records[2].FieldNumber)
}
