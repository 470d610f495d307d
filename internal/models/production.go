package models

import (
	"strings"
	"time"
)

// Production is one field's planting-to-harvest record.
type Production struct {
	Model
	FieldNumber  string     `gorm:"not null" json:"fieldNumber" validate:"required"`
	CropType     string     `gorm:"not null" json:"cropType" validate:"required"`
	PlantingDate time.Time  `gorm:"not null" json:"plantingDate" validate:"required"`
	HarvestDate  *time.Time `json:"harvestDate,omitempty"`
	AreaHectares *float64   `gorm:"not null" json:"areaHectares" validate:"required,gte=0"`
	YieldAmount  *float64   `json:"yieldAmount,omitempty" validate:"omitempty,gte=0"`
	QualityGrade string     `json:"qualityGrade" validate:"omitempty,oneof=A B C D"`
	Notes        string     `json:"notes"`
}

func (p *Production) Normalize() {
	p.FieldNumber = strings.TrimSpace(p.FieldNumber)
	p.CropType = strings.TrimSpace(p.CropType)
}

func (p *Production) ApplyDefaults() {}

func (p *Production) Validate() FieldErrors {
	return checkStruct(p)
}
