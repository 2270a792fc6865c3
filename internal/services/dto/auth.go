package dto

import (
	"meu_delivery/internal/validator"
	"meu_delivery/pkg/apperrors"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

func (r *LoginRequest) ValidationFailure(*validator.ValidationError) *apperrors.AppError {
	return apperrors.ErrLoginFieldsRequired
}

type LoginCourier struct {
	ID    uint   `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Token   string       `json:"token"`
	Courier LoginCourier `json:"entregador"`
}
