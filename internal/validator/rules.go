package validator

import (
	"log"
	"reflect"

	"github.com/go-playground/validator/v10"

	"meu_delivery/internal/models"
)

// registerCustomRules registers the domain tags on v.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'vehicle-type': 0 moto, 1 car, 2 other
	mustRegister("vehicle-type", validateVehicleType)

	// 'plate': Mercosul or old format, any case
	mustRegister("plate", validatePlate)

	// 'availability': 0 or 1
	mustRegister("availability", validateAvailability)
}

func intValue(fl validator.FieldLevel) (int64, bool) {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int(), true
	default:
		return 0, false
	}
}

func validateVehicleType(fl validator.FieldLevel) bool {
	n, ok := intValue(fl)
	return ok && models.VehicleType(n).Valid()
}

func validateAvailability(fl validator.FieldLevel) bool {
	n, ok := intValue(fl)
	return ok && models.Availability(n).Valid()
}

func validatePlate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return models.ValidPlate(value)
}
