package models

import (
	"strings"
	"time"
)

const (
	CropUnitKg    = "kg"
	CropUnitTons  = "tons"
	CropUnitBags  = "bags"
	CropUnitBales = "bales"

	CropStatusInStock  = "In Stock"
	CropStatusLowStock = "Low Stock"
	CropStatusSold     = "Sold"
	CropStatusReserved = "Reserved"
)

// Crop is a stored inventory lot. Quantity is a pointer so a missing
// quantity is distinguishable from an explicit zero.
type Crop struct {
	Model
	CropName        string     `gorm:"not null" json:"cropName" validate:"required"`
	Quantity        *float64   `gorm:"not null" json:"quantity" validate:"required,gte=0"`
	Unit            string     `json:"unit" validate:"oneof=kg tons bags bales"`
	StorageLocation string     `json:"storageLocation"`
	HarvestDate     *time.Time `json:"harvestDate,omitempty"`
	Status          string     `json:"status" validate:"oneof='In Stock' 'Low Stock' Sold Reserved"`
}

func (c *Crop) Normalize() {
	c.CropName = strings.TrimSpace(c.CropName)
	c.StorageLocation = strings.TrimSpace(c.StorageLocation)
}

func (c *Crop) ApplyDefaults() {
	if c.Unit == "" {
		c.Unit = CropUnitKg
	}
	if c.Status == "" {
		c.Status = CropStatusInStock
	}
}

func (c *Crop) Validate() FieldErrors {
	return checkStruct(c)
}
