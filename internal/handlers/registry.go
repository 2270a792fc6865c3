package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	CourierHandler *CourierHandler
	VehicleHandler *VehicleHandler
	HealthHandler  *HealthHandler
}
