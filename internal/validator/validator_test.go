package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vehicleInput struct {
	CourierID *uint  `json:"codIdEntregador" validate:"required"`
	Plate     string `json:"placa" validate:"required,plate"`
	Type      *int   `json:"tipo" validate:"required,vehicle-type"`
}

type availabilityInput struct {
	Availability *int `json:"disponibilidade" validate:"required,availability"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate_VehicleRules(t *testing.T) {
	v := New()

	err := v.Validate(vehicleInput{CourierID: ptr(uint(1)), Plate: "abc1d23", Type: ptr(0)})
	assert.NoError(t, err)

	err = v.Validate(vehicleInput{CourierID: ptr(uint(1)), Plate: "ABC-1234", Type: ptr(2)})
	assert.NoError(t, err)

	err = v.Validate(vehicleInput{CourierID: ptr(uint(1)), Plate: "12345", Type: ptr(3)})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Has("placa"))
	assert.True(t, vErr.Has("tipo"))
	assert.False(t, vErr.Has("codIdEntregador"))

	err = v.Validate(vehicleInput{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "This field is required", vErr.Errors["codIdEntregador"])
	assert.Equal(t, "This field is required", vErr.Errors["placa"])
	assert.Equal(t, "This field is required", vErr.Errors["tipo"])
}

func TestValidate_Availability(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(availabilityInput{Availability: ptr(0)}))
	assert.NoError(t, v.Validate(availabilityInput{Availability: ptr(1)}))

	var vErr *ValidationError
	require.ErrorAs(t, v.Validate(availabilityInput{Availability: ptr(2)}), &vErr)
	assert.Equal(t, "Must be 0 or 1", vErr.Errors["disponibilidade"])
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"b": "x", "a": "y"}}
	assert.Equal(t, "Validation failed: field 'a': y; field 'b': x", err.Error())
}
