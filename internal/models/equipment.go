package models

import (
	"strings"
	"time"
)

const (
	ConditionWorking          = "Working"
	ConditionNeedsRepair      = "Needs Repair"
	ConditionBroken           = "Broken"
	ConditionUnderMaintenance = "Under Maintenance"
)

type Equipment struct {
	Model
	EquipmentName   string     `gorm:"not null" json:"equipmentName" validate:"required"`
	EquipmentType   string     `json:"equipmentType" validate:"omitempty,oneof=Tractor Harvester Plow Irrigation Sprayer Other"`
	Condition       string     `json:"condition" validate:"oneof=Working 'Needs Repair' Broken 'Under Maintenance'"`
	LastMaintenance *time.Time `json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time `json:"nextMaintenance,omitempty"`
	Location        string     `json:"location"`
	SerialNumber    string     `json:"serialNumber"`
}

func (e *Equipment) Normalize() {
	e.EquipmentName = strings.TrimSpace(e.EquipmentName)
	e.Location = strings.TrimSpace(e.Location)
	e.SerialNumber = strings.TrimSpace(e.SerialNumber)
}

func (e *Equipment) ApplyDefaults() {
	if e.Condition == "" {
		e.Condition = ConditionWorking
	}
}

func (e *Equipment) Validate() FieldErrors {
	return checkStruct(e)
}
