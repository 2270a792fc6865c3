package models

type VehicleType int
type VehicleStatus int
type CourierStatus int
type Availability int

const (
	VehicleTypeMoto  VehicleType = 0
	VehicleTypeCar   VehicleType = 1
	VehicleTypeOther VehicleType = 2

	VehicleStatusInactive VehicleStatus = 0
	VehicleStatusActive   VehicleStatus = 1

	CourierStatusInactive CourierStatus = 0
	CourierStatusActive   CourierStatus = 1

	Unavailable Availability = 0
	Available   Availability = 1
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTypeMoto, VehicleTypeCar, VehicleTypeOther:
		return true
	}
	return false
}

// Label is the name shown on the courier dashboard.
func (t VehicleType) Label() string {
	switch t {
	case VehicleTypeMoto:
		return "Moto"
	case VehicleTypeCar:
		return "Carro"
	default:
		return "Outro"
	}
}

func (a Availability) Valid() bool {
	return a == Unavailable || a == Available
}
