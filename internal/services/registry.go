package services

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService       AuthService
	CourierService    CourierService
	UniquenessService UniquenessService
	VehicleService    VehicleService
}
