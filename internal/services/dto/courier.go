package dto

import (
	"encoding/json"
	"errors"
	"strings"

	"meu_delivery/internal/validator"
	"meu_delivery/pkg/apperrors"
)

// AvailableDays accepts either a JSON array or the comma separated string
// sent by the registration form ("Seg, Ter, Qua").
type AvailableDays []string

func (d *AvailableDays) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*d = cleanDays(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("diasDisponivel must be a string or a list of strings")
	}
	*d = cleanDays(strings.Split(s, ","))
	return nil
}

func cleanDays(days []string) AvailableDays {
	out := make(AvailableDays, 0, len(days))
	for _, day := range days {
		if day = strings.TrimSpace(day); day != "" {
			out = append(out, day)
		}
	}
	return out
}

// RegisterCourierRequest is the body of POST /entregadores. Photos are base64,
// with or without a data URL prefix.
type RegisterCourierRequest struct {
	Name            string        `json:"nome" validate:"required"`
	Email           string        `json:"email" validate:"required"`
	Password        string        `json:"senha" validate:"required"`
	BirthDate       string        `json:"dataNascimento" validate:"required"`
	Phone           string        `json:"celular" validate:"required"`
	Document        string        `json:"cpfCnpj" validate:"required"`
	LicenseNumber   string        `json:"cnhNumero" validate:"required"`
	LicenseRegistry string        `json:"cnhRegistro" validate:"required"`
	PixKey          string        `json:"chavePix" validate:"required"`
	AvailableDays   AvailableDays `json:"diasDisponivel" validate:"required,min=1"`
	OperatingHours  string        `json:"horaFuncionamento" validate:"required"`
	LicensePhoto    string        `json:"imagemCNH" validate:"required"`
	Photo           string        `json:"imagemEntregador" validate:"required"`
}

func (r *RegisterCourierRequest) ValidationFailure(*validator.ValidationError) *apperrors.AppError {
	return apperrors.ErrMissingFields
}

// CheckAvailabilityRequest is the body of POST /verificar. At least one field is required.
type CheckAvailabilityRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"celular"`
	Document string `json:"cpfCnpj"`
}

func (r *CheckAvailabilityRequest) ValidationFailure(*validator.ValidationError) *apperrors.AppError {
	return apperrors.ErrNoFieldToCheck
}

type SetAvailabilityRequest struct {
	Availability *int `json:"disponibilidade" validate:"required,availability"`
}

func (r *SetAvailabilityRequest) ValidationFailure(*validator.ValidationError) *apperrors.AppError {
	return apperrors.ErrInvalidAvailability
}

type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// CourierSummary is one item of GET /.
type CourierSummary struct {
	ID                uint     `json:"id"`
	Name              string   `json:"nome"`
	Email             string   `json:"email"`
	BirthDate         string   `json:"dataNascimento"`
	Phone             string   `json:"celular"`
	Document          string   `json:"cpfCnpj"`
	LicenseNumber     string   `json:"cnhNumero"`
	LicenseRegistry   string   `json:"cnhRegistro"`
	PixKey            string   `json:"chavePix"`
	AvailableDays     []string `json:"diasDisponivel"`
	OperatingHours    string   `json:"horaFuncionamento"`
	Status            int      `json:"status"`
	Availability      int      `json:"disponivel"`
	ActiveVehicleType *int     `json:"tipoDeVeiculo"`
	CreatedAt         string   `json:"dataCadastro"`
}

// CourierDetail is GET /entregadores/:id. Keys keep the legacy column names
// the dashboard reads.
type CourierDetail struct {
	ID                uint   `json:"COD_ID_ENTREGADOR"`
	Name              string `json:"DSC_NOME"`
	Email             string `json:"DSC_EMAIL"`
	Photo             string `json:"IMG_ENTREGADOR"`
	Availability      int    `json:"NUM_DISPONIVEL"`
	ActiveVehicleType *int   `json:"TIPO_DE_VEICULO"`
}
