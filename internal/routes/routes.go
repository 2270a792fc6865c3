package routes

import (
	"meu_delivery/internal/handlers"
	"meu_delivery/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every HTTP route at the root, where the existing
// clients expect them. courierGuards protect the routes that change a
// courier's own state; empty means unprotected.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	courierGuards []gin.HandlerFunc,
) {
	root := ginRouter.Group("")
	{
		appHandlers.HealthHandler.RegisterRoutes(root)
		appHandlers.AuthHandler.RegisterRoutes(root)
		appHandlers.CourierHandler.RegisterRoutes(root, courierGuards...)
		appHandlers.VehicleHandler.RegisterRoutes(root, courierGuards...)
	}

	logger.Info("HTTP routes registered", "protected_courier_routes", len(courierGuards) > 0)
}
