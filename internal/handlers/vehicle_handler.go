package handlers

import (
	"net/http"

	"meu_delivery/internal/models"
	"meu_delivery/internal/services"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	*BaseHandler
	vehicleService services.VehicleService
}

func NewVehicleHandler(base *BaseHandler, vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		BaseHandler:    base,
		vehicleService: vehicleService,
	}
}

func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.GET("/veiculos", h.ListVehicles)
	rg.POST("/entregador_veiculo", h.RegisterVehicle)
	rg.GET("/entregadores/:id/veiculos", h.ListCourierVehicles)

	rg.PATCH("/entregadores/:id/veiculos/status", withGuards(guards, h.SetActiveVehicle)...)
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.ListVehicles(h.GetDB(c), c.Query("placa"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	var req dto.RegisterVehicleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.vehicleService.RegisterVehicle(h.GetDB(c), *req.CourierID, req.Plate, models.VehicleType(*req.Type))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Veículo cadastrado com sucesso",
	})
}

func (h *VehicleHandler) ListCourierVehicles(c *gin.Context) {
	courierID, ok := h.ParseParamUint(c, "id", apperrors.ErrNoVehicles)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.ListCourierVehicles(h.GetDB(c), courierID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNoVehicles) {
			// The dashboard reads this one from "message".
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: apperrors.ErrNoVehicles.Message})
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) SetActiveVehicle(c *gin.Context) {
	courierID, ok := h.ParseParamUint(c, "id", apperrors.ErrCourierNotFound)
	if !ok {
		return
	}

	var req dto.SetActiveVehicleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.vehicleService.SetActiveVehicle(h.GetDB(c), courierID, *req.VehicleID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Status do veículo atualizado."})
}
