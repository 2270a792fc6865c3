package dto

import (
	"meu_delivery/internal/validator"
	"meu_delivery/pkg/apperrors"
)

// RegisterVehicleRequest is the body of POST /entregador_veiculo.
type RegisterVehicleRequest struct {
	CourierID *uint  `json:"codIdEntregador" validate:"required,min=1"`
	Plate     string `json:"placa" validate:"required,plate"`
	Type      *int   `json:"tipo" validate:"required,vehicle-type"`
}

func (r *RegisterVehicleRequest) ValidationFailure(vErr *validator.ValidationError) *apperrors.AppError {
	switch {
	case r.Plate != "" && vErr.Has("placa"):
		return apperrors.ErrInvalidPlate
	case r.Type != nil && vErr.Has("tipo"):
		return apperrors.ErrInvalidVehicleType
	default:
		return apperrors.ErrMissingFields
	}
}

type SetActiveVehicleRequest struct {
	VehicleID *uint `json:"codIdVeiculo" validate:"required,min=1"`
}

func (r *SetActiveVehicleRequest) ValidationFailure(*validator.ValidationError) *apperrors.AppError {
	return apperrors.ErrVehicleIDRequired
}

// VehicleListItem is one item of GET /veiculos.
type VehicleListItem struct {
	ID    uint   `json:"idVeiculo"`
	Plate string `json:"placa"`
	Type  int    `json:"tipo"`
}

// CourierVehicle is one item of GET /entregadores/:id/veiculos.
type CourierVehicle struct {
	ID     uint   `json:"id"`
	Plate  string `json:"placa"`
	Type   string `json:"tipo"`
	Active bool   `json:"ativo"`
}
