package models

import (
	"time"

	"gorm.io/datatypes"

	"meu_delivery/internal/document"
)

// Courier maps the legacy entregadores table.
type Courier struct {
	ID              uint           `gorm:"column:cod_id_entregador;primaryKey;autoIncrement"`
	Name            string         `gorm:"column:dsc_nome;size:255;not null"`
	Email           string         `gorm:"column:dsc_email;size:255;not null;uniqueIndex:uq_entregadores_email"`
	PasswordHash    string         `gorm:"column:dsc_senha;size:255;not null"`
	BirthDate       time.Time      `gorm:"column:dat_nascimento;not null"`
	Phone           string         `gorm:"column:dsc_celular;size:20;not null;uniqueIndex:uq_entregadores_celular"`
	Document        string         `gorm:"column:dsc_cpf_cnpj;size:14;not null;uniqueIndex:uq_entregadores_cpf_cnpj"`
	DocumentType    document.Type  `gorm:"column:num_tipo;not null"`
	LicenseNumber   string         `gorm:"column:dsc_cnh_numero;size:20;not null"`
	LicenseRegistry string         `gorm:"column:dsc_cnh_registro;size:20;not null"`
	PixKey          string         `gorm:"column:cod_chave_pix;size:255;not null"`
	AvailableDays   datatypes.JSON `gorm:"column:dat_dias_disponivel"`
	OperatingHours  string         `gorm:"column:dat_hora_funcionamento;size:255"`
	LicensePhoto    []byte         `gorm:"column:img_cnh"`
	Photo           []byte         `gorm:"column:img_entregador"`
	Status          CourierStatus  `gorm:"column:num_status;not null"`
	CreatedAt       time.Time      `gorm:"column:dat_cadastro;not null"`
	Availability    Availability   `gorm:"column:num_disponivel;not null"`

	// Type of the currently active vehicle, nil until the first vehicle is registered
	ActiveVehicleType *VehicleType `gorm:"column:tipo_de_veiculo"`

	Vehicles []Vehicle `gorm:"foreignKey:CourierID;references:ID"`
}

func (Courier) TableName() string {
	return "entregadores"
}
