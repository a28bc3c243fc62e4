package toll

import "strings"

// Vehicle is anything that passes a toll gate
type Vehicle interface {
	// IsTollFree reports whether the vehicle class is exempt from toll altogether
	IsTollFree() bool
}

// VehicleType is a vehicle class known to the toll gates
type VehicleType string

const (
	Car       VehicleType = "car"
	Motorbike VehicleType = "motorbike"
	Tractor   VehicleType = "tractor"
	Emergency VehicleType = "emergency"
	Diplomat  VehicleType = "diplomat"
	Foreign   VehicleType = "foreign"
	Military  VehicleType = "military"
	Bus       VehicleType = "bus"
)

var tollFree = map[VehicleType]bool{
	Car:       false,
	Motorbike: true,
	Tractor:   true,
	Emergency: true,
	Diplomat:  true,
	Foreign:   true,
	Military:  true,
	Bus:       true,
}

// ParseVehicleType parses a vehicle class case-insensitively
func ParseVehicleType(raw string) (VehicleType, error) {
	v := VehicleType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := tollFree[v]; !ok {
		return "", UnknownVehicle.New("%q", raw)
	}
	return v, nil
}

func (v VehicleType) IsTollFree() bool {
	return tollFree[v]
}
