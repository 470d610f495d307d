package models

import (
	"strings"
	"time"
)

const (
	VehicleStatusIdle         = "Idle"
	VehicleStatusActive       = "Active"
	VehicleStatusMaintenance  = "Maintenance"
	VehicleStatusOutOfService = "Out of Service"

	// Farm yard coordinates used until a vehicle reports a position.
	DefaultLatitude  = -18.9166
	DefaultLongitude = 29.8166

	defaultFuelLevel = 100.0
)

type Vehicle struct {
	Model
	VehicleName  string    `gorm:"not null" json:"vehicleName" validate:"required"`
	Registration string    `json:"registration"`
	Type         string    `json:"type" validate:"omitempty,oneof=Tractor Truck Van Pickup Other"`
	CurrentLat   *float64  `json:"currentLat"`
	CurrentLng   *float64  `json:"currentLng"`
	Status       string    `json:"status" validate:"oneof=Idle Active Maintenance 'Out of Service'"`
	FuelLevel    *float64  `json:"fuelLevel" validate:"omitempty,gte=0,lte=100"`
	DriverName   string    `json:"driverName"`
	LastUpdate   time.Time `json:"lastUpdate"`
}

func (v *Vehicle) Normalize() {
	v.VehicleName = strings.TrimSpace(v.VehicleName)
	v.Registration = strings.ToUpper(strings.TrimSpace(v.Registration))
	v.DriverName = strings.TrimSpace(v.DriverName)
}

func (v *Vehicle) ApplyDefaults() {
	if v.CurrentLat == nil {
		lat := DefaultLatitude
		v.CurrentLat = &lat
	}
	if v.CurrentLng == nil {
		lng := DefaultLongitude
		v.CurrentLng = &lng
	}
	if v.Status == "" {
		v.Status = VehicleStatusIdle
	}
	if v.FuelLevel == nil {
		fuel := defaultFuelLevel
		v.FuelLevel = &fuel
	}
	if v.LastUpdate.IsZero() {
		v.LastUpdate = time.Now()
	}
}

func (v *Vehicle) Validate() FieldErrors {
	return checkStruct(v)
}
