package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleTypeLabel(t *testing.T) {
	assert.Equal(t, "Moto", VehicleTypeMoto.Label())
	assert.Equal(t, "Carro", VehicleTypeCar.Label())
	assert.Equal(t, "Outro", VehicleTypeOther.Label())
	assert.Equal(t, "Outro", VehicleType(9).Label())

	assert.True(t, VehicleTypeOther.Valid())
	assert.False(t, VehicleType(3).Valid())
	assert.False(t, VehicleType(-1).Valid())
}

func TestAvailabilityValid(t *testing.T) {
	assert.True(t, Unavailable.Valid())
	assert.True(t, Available.Valid())
	assert.False(t, Availability(2).Valid())
}

func TestPlate(t *testing.T) {
	cases := []struct {
		plate string
		valid bool
	}{
		{"ABC1D23", true},
		{"abc1d23", true},
		{" ABC-1234 ", true},
		{"abc-1234", true},
		{"ABC1234", false},
		{"AB1D234", false},
		{"ABCD123", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.plate, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidPlate(tc.plate))
		})
	}

	assert.Equal(t, "ABC1D23", NormalizePlate(" abc1d23"))
}
