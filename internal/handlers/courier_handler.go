package handlers

import (
	"net/http"

	"meu_delivery/internal/services"
	"meu_delivery/internal/services/dto"
	"meu_delivery/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CourierHandler struct {
	*BaseHandler
	courierService    services.CourierService
	uniquenessService services.UniquenessService
}

func NewCourierHandler(
	base *BaseHandler,
	courierService services.CourierService,
	uniquenessService services.UniquenessService,
) *CourierHandler {
	return &CourierHandler{
		BaseHandler:       base,
		courierService:    courierService,
		uniquenessService: uniquenessService,
	}
}

// RegisterRoutes mounts the courier routes. guards run before the routes a
// courier uses to change their own state.
func (h *CourierHandler) RegisterRoutes(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.GET("/", h.ListCouriers)
	rg.POST("/entregadores", h.Register)
	rg.POST("/verificar", h.CheckAvailability)
	rg.GET("/entregadores/:id", h.GetCourier)

	rg.PATCH("/entregadores/:id/disponibilidade", withGuards(guards, h.SetAvailability)...)
}

func (h *CourierHandler) ListCouriers(c *gin.Context) {
	couriers, err := h.courierService.ListCouriers(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, couriers)
}

func (h *CourierHandler) Register(c *gin.Context) {
	var req dto.RegisterCourierRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	id, err := h.courierService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatedResponse{
		ID:      id,
		Message: "Entregador criado com sucesso",
	})
}

func (h *CourierHandler) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.uniquenessService.CheckAvailability(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Dados disponíveis."})
}

func (h *CourierHandler) GetCourier(c *gin.Context) {
	courierID, ok := h.ParseParamUint(c, "id", apperrors.ErrCourierNotFound)
	if !ok {
		return
	}

	courier, err := h.courierService.GetCourier(h.GetDB(c), courierID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courier)
}

func (h *CourierHandler) SetAvailability(c *gin.Context) {
	courierID, ok := h.ParseParamUint(c, "id", apperrors.ErrCourierNotFound)
	if !ok {
		return
	}

	var req dto.SetAvailabilityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.courierService.SetAvailability(h.GetDB(c), courierID, *req.Availability); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Disponibilidade atualizada com sucesso."})
}
